package services

import (
	"sync"

	"workhours/internal/domain"
)

// periodLocks serialises work per reporting period.
type periodLocks struct {
	mu    sync.Mutex
	locks map[domain.PeriodKey]*sync.Mutex
}

func newPeriodLocks() *periodLocks {
	return &periodLocks{locks: make(map[domain.PeriodKey]*sync.Mutex)}
}

// lock acquires the mutex of p and returns its release func.
func (l *periodLocks) lock(p domain.PeriodKey) func() {
	l.mu.Lock()
	m, ok := l.locks[p]
	if !ok {
		m = &sync.Mutex{}
		l.locks[p] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
