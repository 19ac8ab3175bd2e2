package undo

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mmoldabe-dev/subkeep/internal/domain"
)

func pending(user uuid.UUID, ids ...uuid.UUID) domain.PendingUndo {
	now := time.Now()
	return domain.PendingUndo{
		UserID:          user,
		SubscriptionIDs: ids,
		AppliedAt:       now,
		ExpiresAt:       now.Add(domain.UndoWindow),
	}
}

func testStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()
	first, second := uuid.New(), uuid.New()

	if _, err := s.Take(ctx, alice); !errors.Is(err, domain.ErrUndoUnavailable) {
		t.Fatalf("Take(empty) error = %v, want ErrUndoUnavailable", err)
	}

	if err := s.Put(ctx, pending(alice, first)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := s.Put(ctx, pending(alice, second)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := s.Put(ctx, pending(bob, first)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := s.Take(ctx, alice)
	if err != nil {
		t.Fatalf("Take() error = %v", err)
	}
	if len(got.SubscriptionIDs) != 1 || got.SubscriptionIDs[0] != second {
		t.Errorf("Take() ids = %v, want only the latest batch", got.SubscriptionIDs)
	}

	if _, err := s.Take(ctx, alice); !errors.Is(err, domain.ErrUndoUnavailable) {
		t.Errorf("second Take() error = %v, want ErrUndoUnavailable", err)
	}

	got, err = s.Take(ctx, bob)
	if err != nil || got.UserID != bob {
		t.Errorf("Take(bob) = %+v, %v", got, err)
	}
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestMemoryStoreCopiesIDs(t *testing.T) {
	s := NewMemoryStore()
	user := uuid.New()
	ids := []uuid.UUID{uuid.New()}
	orig := ids[0]

	_ = s.Put(context.Background(), pending(user, ids...))
	ids[0] = uuid.New()

	got, _ := s.Take(context.Background(), user)
	if got.SubscriptionIDs[0] != orig {
		t.Error("stored slot aliases the caller's slice")
	}
}

func TestMemoryStoreConcurrentTakeIsSingleUse(t *testing.T) {
	s := NewMemoryStore()
	user := uuid.New()
	_ = s.Put(context.Background(), pending(user, uuid.New()))

	var wg sync.WaitGroup
	var mu sync.Mutex
	wins := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Take(context.Background(), user); err == nil {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Errorf("slot taken %d times, want 1", wins)
	}
}

func TestRedisStore(t *testing.T) {
	url := os.Getenv("TEST_REDIS_URL")
	if url == "" {
		t.Skip("TEST_REDIS_URL not set")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		t.Fatalf("ParseURL() error = %v", err)
	}
	client := redis.NewClient(opts)
	t.Cleanup(func() { client.Close() })

	testStore(t, NewRedisStore(client, "subkeep:test:"+uuid.NewString()))
}

func TestRedisStoreKey(t *testing.T) {
	user := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	s := NewRedisStore(nil, " app:undo: ")
	if got, want := s.key(user), "app:undo:"+user.String(); got != want {
		t.Errorf("key() = %q, want %q", got, want)
	}
	if NewRedisStore(nil, "").prefix != "subkeep:undo" {
		t.Error("empty prefix not defaulted")
	}
}
