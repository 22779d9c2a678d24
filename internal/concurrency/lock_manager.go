package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per entity key
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key, creating it on first use
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// LockInOrder locks every key in the order given and returns a function
// that unlocks them in reverse. Callers that need several locks must always
// pass them in the same order. Duplicate keys are locked once.
func (lm *LockManager) LockInOrder(keys ...string) (unlock func()) {
	seen := make(map[string]struct{}, len(keys))
	held := make([]*sync.Mutex, 0, len(keys))
	for _, key := range keys {
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		lock := lm.GetLock(key)
		lock.Lock()
		held = append(held, lock)
	}
	return func() {
		for i := len(held) - 1; i >= 0; i-- {
			held[i].Unlock()
		}
	}
}
