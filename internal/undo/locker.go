package undo

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// UserLocker serializes Apply and Undo for one user.
type UserLocker interface {
	// Lock blocks until the caller owns userID's lock and returns the release func.
	Lock(ctx context.Context, userID uuid.UUID) (func(), error)
}

// Locker is an in-process mutex per user. Entries are dropped once nobody
// holds or waits on them.
type Locker struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

var _ UserLocker = (*Locker)(nil)

func NewLocker() *Locker {
	return &Locker{locks: make(map[uuid.UUID]*userLock)}
}

func (l *Locker) Lock(_ context.Context, userID uuid.UUID) (func(), error) {
	l.mu.Lock()
	ul, ok := l.locks[userID]
	if !ok {
		ul = &userLock{}
		l.locks[userID] = ul
	}
	ul.refs++
	l.mu.Unlock()

	ul.mu.Lock()

	return func() {
		ul.mu.Unlock()

		l.mu.Lock()
		ul.refs--
		if ul.refs == 0 {
			delete(l.locks, userID)
		}
		l.mu.Unlock()
	}, nil
}

func (l *Locker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
