package domain

import (
	"testing"
	"time"

	"workhours/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodKey_Formatting(t *testing.T) {
	p := NewPeriodKey(2024, time.March)
	assert.Equal(t, PeriodKey{Year: 2024, Month: 2}, p)
	assert.Equal(t, "2024/2", p.String())
	assert.Equal(t, "2024-03", p.ISO())
	assert.Equal(t, "March 2024", p.Label())
}

func TestParsePeriodKey(t *testing.T) {
	tests := []struct {
		input     string
		expected  PeriodKey
		expectErr bool
	}{
		{input: "2024-03", expected: PeriodKey{Year: 2024, Month: 2}},
		{input: " 2024-12 ", expected: PeriodKey{Year: 2024, Month: 11}},
		{input: "2024/0", expected: PeriodKey{Year: 2024, Month: 0}},
		{input: "2024-13", expectErr: true},
		{input: "2024-00", expectErr: true},
		{input: "2024/12", expectErr: true},
		{input: "March", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePeriodKey(tt.input)
			if tt.expectErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPeriodKey_Navigation(t *testing.T) {
	jan := PeriodKey{Year: 2024, Month: 0}
	dec := PeriodKey{Year: 2023, Month: 11}

	assert.Equal(t, dec, jan.Previous())
	assert.Equal(t, jan, dec.Next())
	assert.True(t, dec.Before(jan))
	assert.False(t, jan.Before(dec))
	assert.False(t, jan.Before(jan))
}

func TestPeriodKey_Calendar(t *testing.T) {
	feb := NewPeriodKey(2024, time.February)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), feb.FirstDay())
	assert.Equal(t, 29, feb.DaysIn())
	assert.Equal(t, 28, NewPeriodKey(2023, time.February).DaysIn())
	assert.True(t, feb.Contains(time.Date(2024, 2, 29, 18, 0, 0, 0, time.UTC)))
	assert.False(t, feb.Contains(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, feb, PeriodOf(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)))
}
