package undo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/mmoldabe-dev/subkeep/internal/domain"
)

const DefaultPrefix = "subkeep:undo"

// RedisStore shares undo slots between server instances. Keys carry a TTL of
// the remaining window so abandoned slots disappear on their own.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: normalizePrefix(prefix), now: time.Now}
}

func normalizePrefix(prefix string) string {
	p := strings.TrimSuffix(strings.TrimSpace(prefix), ":")
	if p == "" {
		return DefaultPrefix
	}
	return p
}

func (r *RedisStore) key(userID uuid.UUID) string {
	return r.prefix + ":" + userID.String()
}

func (r *RedisStore) Put(ctx context.Context, p domain.PendingUndo) error {
	const op = "undo.RedisStore.Put"

	ttl := p.ExpiresAt.Sub(r.now())
	if ttl < time.Second {
		ttl = time.Second
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := r.client.Set(ctx, r.key(p.UserID), raw, ttl).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (r *RedisStore) Take(ctx context.Context, userID uuid.UUID) (domain.PendingUndo, error) {
	const op = "undo.RedisStore.Take"

	raw, err := r.client.GetDel(ctx, r.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.PendingUndo{}, domain.ErrUndoUnavailable
	}
	if err != nil {
		return domain.PendingUndo{}, fmt.Errorf("%s: %w", op, err)
	}

	var p domain.PendingUndo
	if err := json.Unmarshal(raw, &p); err != nil {
		return domain.PendingUndo{}, fmt.Errorf("%s: decode: %w", op, err)
	}
	return p, nil
}
