package hours

import (
	"testing"

	"workhours/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestElapsed(t *testing.T) {
	tests := []struct {
		name     string
		start    domain.ClockValue
		end      domain.ClockValue
		expected domain.Duration
		ok       bool
	}{
		{name: "whole hours", start: domain.ClockValue{Hour: 8}, end: domain.ClockValue{Hour: 12}, expected: domain.Duration{Hours: 4}, ok: true},
		{name: "minute borrow", start: domain.ClockValue{Hour: 8, Minute: 45}, end: domain.ClockValue{Hour: 12}, expected: domain.Duration{Hours: 3, Minutes: 15}, ok: true},
		{name: "same minute", start: domain.ClockValue{Hour: 9, Minute: 10}, end: domain.ClockValue{Hour: 17, Minute: 10}, expected: domain.Duration{Hours: 8}, ok: true},
		{name: "zero length", start: domain.ClockValue{Hour: 9}, end: domain.ClockValue{Hour: 9}, expected: domain.Duration{}, ok: true},
		{name: "stop before start", start: domain.ClockValue{Hour: 12}, end: domain.ClockValue{Hour: 8}, expected: domain.Duration{}, ok: false},
		{name: "stop minutes before start in same hour", start: domain.ClockValue{Hour: 12, Minute: 30}, end: domain.ClockValue{Hour: 12, Minute: 10}, expected: domain.Duration{}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Elapsed(tt.start, tt.end)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}
