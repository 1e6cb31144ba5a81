package variant

import "sync"

// variantLocks hands out one mutex per variant ID so every stock mutation on
// a variant is serialized in-process before it reaches the database row lock.
type variantLocks struct {
	mu    sync.RWMutex
	locks map[uint64]*sync.Mutex
}

func newVariantLocks() *variantLocks {
	return &variantLocks{locks: make(map[uint64]*sync.Mutex)}
}

func (l *variantLocks) get(variantID uint64) *sync.Mutex {
	l.mu.RLock()
	if lock, ok := l.locks[variantID]; ok {
		l.mu.RUnlock()
		return lock
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Re-check in case another goroutine created it
	if lock, ok := l.locks[variantID]; ok {
		return lock
	}
	lock := &sync.Mutex{}
	l.locks[variantID] = lock
	return lock
}
