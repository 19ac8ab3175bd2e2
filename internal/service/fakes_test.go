package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mmoldabe-dev/subkeep/internal/domain"
	"github.com/mmoldabe-dev/subkeep/internal/repository"
	"github.com/mmoldabe-dev/subkeep/internal/undo"
)

var errStore = errors.New("store unavailable")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeSubs is an in-memory repository.SubscriptionInterface.
type fakeSubs struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]domain.Subscription
	order   []uuid.UUID
	failSet bool
	failGet bool

	// failSetAfter > 0 lets that many SetStatus calls through, then fails the rest.
	failSetAfter int
	setCalls     int
}

var _ repository.SubscriptionInterface = (*fakeSubs)(nil)

func newFakeSubs(subs ...domain.Subscription) *fakeSubs {
	f := &fakeSubs{byID: make(map[uuid.UUID]domain.Subscription)}
	for _, s := range subs {
		f.put(s)
	}
	return f
}

func (f *fakeSubs) put(s domain.Subscription) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if _, ok := f.byID[s.ID]; !ok {
		f.order = append(f.order, s.ID)
	}
	f.byID[s.ID] = s
}

func (f *fakeSubs) status(id uuid.UUID) domain.SubscriptionStatus {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byID[id].Status
}

func (f *fakeSubs) Create(_ context.Context, sub domain.Subscription) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	sub.ID = uuid.New()
	f.put(sub)
	return sub.ID, nil
}

func (f *fakeSubs) GetByID(_ context.Context, userID, id uuid.UUID) (*domain.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.byID[id]
	if !ok || s.UserID != userID {
		return nil, fmt.Errorf("fake: %w", domain.ErrNotFound)
	}
	return &s, nil
}

func (f *fakeSubs) Update(_ context.Context, sub domain.Subscription) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cur, ok := f.byID[sub.ID]
	if !ok || cur.UserID != sub.UserID {
		return domain.ErrNotFound
	}
	f.byID[sub.ID] = sub
	return nil
}

func (f *fakeSubs) Delete(_ context.Context, userID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.byID[id]
	if !ok || s.UserID != userID {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeSubs) List(_ context.Context, userID uuid.UUID, filter domain.SubscriptionFilter) ([]domain.Subscription, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Subscription
	for _, id := range f.order {
		s, ok := f.byID[id]
		if !ok || s.UserID != userID {
			continue
		}
		if filter.Status != "" && s.Status != filter.Status {
			continue
		}
		out = append(out, s)
	}
	return out, int64(len(out)), nil
}

func (f *fakeSubs) ListByStatus(_ context.Context, userID uuid.UUID, status domain.SubscriptionStatus) ([]domain.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet {
		return nil, errStore
	}
	var out []domain.Subscription
	for _, id := range f.order {
		s, ok := f.byID[id]
		if ok && s.UserID == userID && s.Status == status {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubs) Exists(_ context.Context, userID uuid.UUID, serviceName string, excludeID uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.byID {
		if s.UserID == userID && s.ServiceName == serviceName && s.Status != domain.StatusCancelled && s.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSubs) SetStatus(_ context.Context, userID uuid.UUID, ids []uuid.UUID, from, to domain.SubscriptionStatus) ([]uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setCalls++
	if f.failSet || (f.failSetAfter > 0 && f.setCalls > f.failSetAfter) {
		return nil, errStore
	}
	var moved []uuid.UUID
	for _, id := range ids {
		s, ok := f.byID[id]
		if !ok || s.UserID != userID || s.Status != from {
			continue
		}
		s.Status = to
		f.byID[id] = s
		moved = append(moved, id)
	}
	return moved, nil
}

// activeIDs returns the sorted ids of userID's active subscriptions.
func (f *fakeSubs) activeIDs(userID uuid.UUID) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var ids []string
	for id, s := range f.byID {
		if s.UserID == userID && s.Status == domain.StatusActive {
			ids = append(ids, id.String())
		}
	}
	sort.Strings(ids)
	return ids
}

type fakeCats struct {
	byID map[uuid.UUID]domain.Category
}

var _ repository.CategoryInterface = (*fakeCats)(nil)

func newFakeCats(cats ...domain.Category) *fakeCats {
	f := &fakeCats{byID: make(map[uuid.UUID]domain.Category)}
	for _, c := range cats {
		f.byID[c.ID] = c
	}
	return f
}

func (f *fakeCats) ListVisible(_ context.Context, userID uuid.UUID) ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range f.byID {
		if c.IsSystem || (c.UserID != nil && *c.UserID == userID) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCats) GetByID(_ context.Context, id uuid.UUID) (*domain.Category, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (f *fakeCats) Create(_ context.Context, c domain.Category) (uuid.UUID, error) {
	c.ID = uuid.New()
	f.byID[c.ID] = c
	return c.ID, nil
}

func (f *fakeCats) Delete(_ context.Context, userID, id uuid.UUID) error {
	c, ok := f.byID[id]
	if !ok || c.IsSystem || c.UserID == nil || *c.UserID != userID {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// clock is a manually advanced time source.
type clock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock() *clock {
	return &clock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// flakyUndo is an undo.Store whose Put can be made to fail.
type flakyUndo struct {
	*undo.MemoryStore
	failPut bool
}

func (f *flakyUndo) Put(ctx context.Context, p domain.PendingUndo) error {
	if f.failPut {
		return errStore
	}
	return f.MemoryStore.Put(ctx, p)
}
