package approval

import (
	"context"
	"sync"
	"time"

	"github.com/Dhani2612/RPL-PupukKu/internal/domain"
)

// keyMutex provides mutual exclusion per string key with bounded acquisition.
// Callers holding different keys never block each other.
type keyMutex struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sem  chan struct{} // capacity 1: holding the token means holding the lock
	refs int
}

func newKeyMutex() *keyMutex {
	return &keyMutex{locks: make(map[string]*keyLock)}
}

// acquire blocks until the key's lock is held, the timeout elapses, or the
// context is done. On success it returns a release function that must be
// called exactly once; otherwise it returns domain.ErrBusy (timeout) or the
// context error.
func (m *keyMutex) acquire(ctx context.Context, key string, timeout time.Duration) (func(), error) {
	m.mu.Lock()
	l, ok := m.locks[key]
	if !ok {
		l = &keyLock{sem: make(chan struct{}, 1)}
		m.locks[key] = l
	}
	l.refs++
	m.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case l.sem <- struct{}{}:
		return func() {
			<-l.sem
			m.put(key, l)
		}, nil
	case <-timer.C:
		m.put(key, l)
		return nil, domain.ErrBusy
	case <-ctx.Done():
		m.put(key, l)
		return nil, ctx.Err()
	}
}

// put drops one reference and evicts the entry once nobody waits on it
func (m *keyMutex) put(key string, l *keyLock) {
	m.mu.Lock()
	l.refs--
	if l.refs == 0 {
		delete(m.locks, key)
	}
	m.mu.Unlock()
}
