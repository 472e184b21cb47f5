// Package concurrency provides named locks shared by services that serialize
// work per guild.
package concurrency

import (
	"sync"
)

type namedLock struct {
	mu   sync.Mutex
	refs int
}

// LockManager hands out one mutex per key. Entries are dropped once no caller
// holds or waits on them.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*namedLock
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*namedLock)}
}

// Lock blocks until the key's lock is held and returns the function that releases it
func (lm *LockManager) Lock(key string) (unlock func()) {
	lm.mu.Lock()
	l, ok := lm.locks[key]
	if !ok {
		l = &namedLock{}
		lm.locks[key] = l
	}
	l.refs++
	lm.mu.Unlock()

	l.mu.Lock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Unlock()

			lm.mu.Lock()
			l.refs--
			if l.refs == 0 {
				delete(lm.locks, key)
			}
			lm.mu.Unlock()
		})
	}
}

// Len reports how many keys are currently held or awaited
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
