package engine

import "sync"

// #region company-locks

// companyLocks serializes processing per company. Go mutexes hand the lock
// to waiters in arrival order under contention (starvation mode), which
// keeps per-company processing FIFO with event arrival.
type companyLocks struct {
	mu sync.Mutex
	m  map[string]*sync.Mutex
}

func newCompanyLocks() *companyLocks {
	return &companyLocks{m: make(map[string]*sync.Mutex)}
}

// acquire blocks until the company's lock is held and returns the release
// function. The lock is held for the duration of one Process call.
func (l *companyLocks) acquire(companyID string) func() {
	l.mu.Lock()
	lk, ok := l.m[companyID]
	if !ok {
		lk = &sync.Mutex{}
		l.m[companyID] = lk
	}
	l.mu.Unlock()

	lk.Lock()
	return lk.Unlock
}

// #endregion company-locks
