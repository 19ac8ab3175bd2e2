package repository

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/mmoldabe-dev/subkeep/internal/domain"
)

// openTestDB needs TEST_DATABASE_DSN as a postgres:// URL of a disposable database.
func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		t.Fatalf("migrate.New() error = %v", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("migrate up error = %v", err)
	}
	m.Close()

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		t.Fatalf("sqlx.Connect() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSub(user uuid.UUID, name string, amount int64) domain.Subscription {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	return domain.Subscription{
		UserID:          user,
		ServiceName:     name,
		Amount:          amount,
		BillingCycle:    domain.BillingCycleMonthly,
		Currency:        domain.DefaultCurrency,
		NextBillingDate: day,
		AutoRenew:       true,
		Status:          domain.StatusActive,
		StartDate:       day,
	}
}

func TestSubscriptionLifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := NewSubscriptionRepository(db, testLogger())
	ctx := context.Background()
	user := uuid.New()

	ott := uuid.MustParse("00000000-0000-0000-0000-000000000101")
	sub := newSub(user, "Netflix", 17000)
	sub.CategoryID = &ott

	id, err := repo.Create(ctx, sub)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	got, err := repo.GetByID(ctx, user, id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Category == nil || !got.Category.IsSystem {
		t.Errorf("category not joined: %+v", got.Category)
	}
	if _, err := repo.GetByID(ctx, uuid.New(), id); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("foreign GetByID() error = %v, want ErrNotFound", err)
	}

	exists, err := repo.Exists(ctx, user, "Netflix", uuid.Nil)
	if err != nil || !exists {
		t.Errorf("Exists() = %v, %v", exists, err)
	}

	if err := repo.Delete(ctx, user, id); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := repo.Delete(ctx, user, id); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestAmountCapConstraint(t *testing.T) {
	db := openTestDB(t)
	repo := NewSubscriptionRepository(db, testLogger())
	ctx := context.Background()
	user := uuid.New()

	if _, err := repo.Create(ctx, newSub(user, "AtCap", domain.MaxAmount)); err != nil {
		t.Fatalf("Create(at cap) error = %v", err)
	}
	if _, err := repo.Create(ctx, newSub(user, "AboveCap", domain.MaxAmount+1)); err == nil {
		t.Error("Create(above cap) succeeded, want check violation")
	}
}

func TestSetStatusMovesOnlyMatching(t *testing.T) {
	db := openTestDB(t)
	repo := NewSubscriptionRepository(db, testLogger())
	ctx := context.Background()
	user := uuid.New()

	a, _ := repo.Create(ctx, newSub(user, "A", 15000))
	paused := newSub(user, "B", 1000)
	paused.Status = domain.StatusPaused
	b, _ := repo.Create(ctx, paused)
	foreign, _ := repo.Create(ctx, newSub(uuid.New(), "C", 500))

	moved, err := repo.SetStatus(ctx, user, []uuid.UUID{a, b, foreign, uuid.New()}, domain.StatusActive, domain.StatusCancelled)
	if err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	if len(moved) != 1 || moved[0] != a {
		t.Errorf("moved = %v, want [%v]", moved, a)
	}

	active, err := repo.ListByStatus(ctx, user, domain.StatusActive)
	if err != nil || len(active) != 0 {
		t.Errorf("active after cancel = %d, %v", len(active), err)
	}

	back, err := repo.SetStatus(ctx, user, moved, domain.StatusCancelled, domain.StatusActive)
	if err != nil || len(back) != 1 {
		t.Errorf("restore = %v, %v", back, err)
	}
}

func TestListFilterAndPaging(t *testing.T) {
	db := openTestDB(t)
	repo := NewSubscriptionRepository(db, testLogger())
	ctx := context.Background()
	user := uuid.New()

	for i, amount := range []int64{3000, 1000, 2000} {
		if _, err := repo.Create(ctx, newSub(user, string(rune('A'+i)), amount)); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	subs, total, err := repo.List(ctx, user, domain.SubscriptionFilter{SortBy: "amount", SortOrder: "asc", PerPage: 2, Page: 1})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 3 || len(subs) != 2 {
		t.Fatalf("List() = %d items of %d, want 2 of 3", len(subs), total)
	}
	if subs[0].Amount != 1000 || subs[1].Amount != 2000 {
		t.Errorf("amounts = %d, %d", subs[0].Amount, subs[1].Amount)
	}
}

func TestCategoryRules(t *testing.T) {
	db := openTestDB(t)
	repo := NewCategoryRepository(db, testLogger())
	ctx := context.Background()
	user := uuid.New()

	color := "#123456"
	id, err := repo.Create(ctx, domain.Category{UserID: &user, Name: "Mine", Color: &color})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	visible, err := repo.ListVisible(ctx, user)
	if err != nil {
		t.Fatalf("ListVisible() error = %v", err)
	}
	var own, system int
	for _, c := range visible {
		if c.IsSystem {
			system++
		} else if c.ID == id {
			own++
		}
	}
	if own != 1 || system < 6 {
		t.Errorf("visible own=%d system=%d", own, system)
	}

	if err := repo.Delete(ctx, uuid.New(), id); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("foreign Delete() error = %v", err)
	}
	ott := uuid.MustParse("00000000-0000-0000-0000-000000000101")
	if err := repo.Delete(ctx, user, ott); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("system Delete() error = %v", err)
	}
	if err := repo.Delete(ctx, user, id); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
}
