package undo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	lockExpiry     = 10 * time.Second
	lockTries      = 50
	lockRetryDelay = 100 * time.Millisecond
)

// RedisLocker serializes a user's Apply and Undo across server instances.
type RedisLocker struct {
	rs     *redsync.Redsync
	prefix string
	log    *slog.Logger
}

var _ UserLocker = (*RedisLocker)(nil)

func NewRedisLocker(client redis.UniversalClient, prefix string, log *slog.Logger) *RedisLocker {
	return &RedisLocker{
		rs:     redsync.New(goredis.NewPool(client)),
		prefix: normalizePrefix(prefix),
		log:    log.With(slog.String("component", "undo/lock")),
	}
}

func (l *RedisLocker) Lock(ctx context.Context, userID uuid.UUID) (func(), error) {
	const op = "undo.RedisLocker.Lock"

	m := l.rs.NewMutex(
		fmt.Sprintf("%s:lock:%s", l.prefix, userID),
		redsync.WithExpiry(lockExpiry),
		redsync.WithTries(lockTries),
		redsync.WithRetryDelay(lockRetryDelay),
	)
	if err := m.LockContext(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return func() {
		// ctx запроса может быть уже отменен, отпускаем лок в любом случае
		if _, err := m.UnlockContext(context.Background()); err != nil {
			l.log.Warn("failed to release lock",
				slog.String("user_id", userID.String()), slog.String("error", err.Error()))
		}
	}, nil
}
