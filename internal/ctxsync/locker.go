package ctxsync

import (
	"context"
	"sync"
)

// CtxLocker is a wrapper of sync.Locker that can lock with context.
type CtxLocker struct {
	sync.Locker
}

// tryLocker is an interface for the TryLock method.
type tryLocker interface {
	TryLock() bool
}

// LockCtx tries to lock with context.
// If the context is done before the lock is acquired, it returns the context error
// and the lock is released as soon as it is acquired in background.
func (l *CtxLocker) LockCtx(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if tl, ok := l.Locker.(tryLocker); ok && tl.TryLock() {
		return nil
	}

	locked := make(chan struct{})
	go func() {
		defer close(locked)
		l.Locker.Lock()
	}()

	select {
	case <-locked:
		return nil
	case <-ctx.Done():
		go func() {
			<-locked
			l.Unlock()
		}()
		return ctx.Err()
	}
}
