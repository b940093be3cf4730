package service

import "sync"

// roomLocks serializes operations per room code, so a guess and a start
// racing on the same room cannot both act on stale state.
type roomLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newRoomLocks() *roomLocks {
	return &roomLocks{locks: make(map[string]*sync.Mutex)}
}

// acquire locks the mutex for code and returns its release func.
func (l *roomLocks) acquire(code string) func() {
	l.mu.Lock()
	m, ok := l.locks[code]
	if !ok {
		m = &sync.Mutex{}
		l.locks[code] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}

// forget drops the lock entry once its room is deleted. A stale entry
// recreated by a late caller is harmless: the room lookup fails anyway.
func (l *roomLocks) forget(code string) {
	l.mu.Lock()
	delete(l.locks, code)
	l.mu.Unlock()
}
