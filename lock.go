package deferred

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Locking is a read/write lock abstraction. Implementations back
// [WithReadLock], [WithWriteLock], and [TryReadLock], and are the
// dependency-injected primitive behind [Protected].
type Locking interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
	TryRLock() bool
}

// WithReadLock executes body under a shared lock and returns its result.
func WithReadLock[T any](l Locking, body func() T) T {
	l.RLock()
	defer l.RUnlock()
	return body()
}

// WithWriteLock executes body under an exclusive lock and returns its
// result.
func WithWriteLock[T any](l Locking, body func() T) T {
	l.Lock()
	defer l.Unlock()
	return body()
}

// TryReadLock attempts to acquire the shared lock without blocking. If
// acquired, body runs and its result is returned with ok true; otherwise
// ok is false and the zero value of T is returned.
func TryReadLock[T any](l Locking, body func() T) (result T, ok bool) {
	if !l.TryRLock() {
		return result, false
	}
	defer l.RUnlock()
	return body(), true
}

// RWLock is a many-readers/one-writer [Locking] implementation backed by
// [sync.RWMutex]. Go's RWMutex blocks new readers behind a pending writer,
// giving writers priority and avoiding writer starvation under sustained
// read pressure.
type RWLock struct {
	mu sync.RWMutex
}

// NewRWLock constructs a ready-to-use RWLock.
func NewRWLock() *RWLock { return &RWLock{} }

func (l *RWLock) Lock()          { l.mu.Lock() }
func (l *RWLock) Unlock()        { l.mu.Unlock() }
func (l *RWLock) RLock()         { l.mu.RLock() }
func (l *RWLock) RUnlock()       { l.mu.RUnlock() }
func (l *RWLock) TryRLock() bool { return l.mu.TryRLock() }

var _ Locking = (*RWLock)(nil)

// BinarySemaphore is a [Locking] implementation where read and write
// access are both exclusive, backed by a weight-1
// [golang.org/x/sync/semaphore.Weighted]. Useful where readers must not
// observe a value concurrently with a writer's partial update, e.g. when
// V itself is not safely read-shared.
type BinarySemaphore struct {
	sem *semaphore.Weighted
}

// NewBinarySemaphore constructs a ready-to-use BinarySemaphore.
func NewBinarySemaphore() *BinarySemaphore {
	return &BinarySemaphore{sem: semaphore.NewWeighted(1)}
}

func (b *BinarySemaphore) Lock() { _ = b.sem.Acquire(context.Background(), 1) }
func (b *BinarySemaphore) Unlock() { b.sem.Release(1) }
func (b *BinarySemaphore) RLock()   { b.Lock() }
func (b *BinarySemaphore) RUnlock() { b.Unlock() }
func (b *BinarySemaphore) TryRLock() bool { return b.sem.TryAcquire(1) }

var _ Locking = (*BinarySemaphore)(nil)
