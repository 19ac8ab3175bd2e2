// Package undo holds the single pending undo slot per user.
package undo

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/mmoldabe-dev/subkeep/internal/domain"
)

// Store keeps at most one PendingUndo per user.
type Store interface {
	// Put replaces whatever slot the user had.
	Put(ctx context.Context, p domain.PendingUndo) error
	// Take removes and returns the user's slot. It returns domain.ErrUndoUnavailable
	// when there is none. Expiry is left to the caller.
	Take(ctx context.Context, userID uuid.UUID) (domain.PendingUndo, error)
}

type MemoryStore struct {
	mu    sync.Mutex
	slots map[uuid.UUID]domain.PendingUndo
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: make(map[uuid.UUID]domain.PendingUndo)}
}

func (m *MemoryStore) Put(_ context.Context, p domain.PendingUndo) error {
	ids := make([]uuid.UUID, len(p.SubscriptionIDs))
	copy(ids, p.SubscriptionIDs)
	p.SubscriptionIDs = ids

	m.mu.Lock()
	m.slots[p.UserID] = p
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) Take(_ context.Context, userID uuid.UUID) (domain.PendingUndo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.slots[userID]
	if !ok {
		return domain.PendingUndo{}, domain.ErrUndoUnavailable
	}
	delete(m.slots, userID)
	return p, nil
}
