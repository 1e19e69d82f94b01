// Package autolock is a non-reentrant lock with scoped acquisition.
//
// Acquiring a Lock twice from the same goroutine deadlocks, the same way a
// plain critical section does.
package autolock

import "sync"

type Lock struct {
	mutex sync.Mutex
}

// Acquire blocks until the lock is held.
func (l *Lock) Acquire() {
	l.mutex.Lock()
}

func (l *Lock) Release() {
	l.mutex.Unlock()
}

// TryAcquire takes the lock if it is free and reports whether it did.
func (l *Lock) TryAcquire() bool {
	return l.mutex.TryLock()
}

// Hold acquires the lock and returns the scope that owns it.
//
//	h := l.Hold()
//	defer h.Release()
func (l *Lock) Hold() *Held {
	l.Acquire()
	return &Held{lock: l}
}

// Do runs fn while holding the lock. The lock is released when fn returns
// or panics.
func (l *Lock) Do(fn func() error) error {
	h := l.Hold()
	defer h.Release()
	return fn()
}

// Held is one acquisition of a Lock.
type Held struct {
	lock *Lock
	once sync.Once
}

// Release gives the lock back. Only the first call releases; the rest are
// no-ops so an early Release can be paired with a deferred one.
func (h *Held) Release() {
	h.once.Do(h.lock.Release)
}
