package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mmoldabe-dev/subkeep/internal/domain"
)

type SubscriptionInterface interface {
	Create(ctx context.Context, sub domain.Subscription) (uuid.UUID, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Subscription, error)
	Update(ctx context.Context, sub domain.Subscription) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.SubscriptionFilter) ([]domain.Subscription, int64, error)
	ListByStatus(ctx context.Context, userID uuid.UUID, status domain.SubscriptionStatus) ([]domain.Subscription, error)
	Exists(ctx context.Context, userID uuid.UUID, serviceName string, excludeID uuid.UUID) (bool, error)
	SetStatus(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, from, to domain.SubscriptionStatus) ([]uuid.UUID, error)
}

type SubscriptionRepository struct {
	db  *sqlx.DB
	log *slog.Logger
}

var _ SubscriptionInterface = (*SubscriptionRepository)(nil)

func NewSubscriptionRepository(db *sqlx.DB, log *slog.Logger) *SubscriptionRepository {
	return &SubscriptionRepository{
		db:  db,
		log: log.With(slog.String("component", "repository")),
	}
}

const subscriptionColumns = `s.id, s.user_id, s.service_name, s.amount, s.billing_cycle, s.currency,
	s.next_billing_date, s.auto_renew, s.status, s.satisfaction_score, s.category_id, s.note,
	s.service_url, s.start_date, s.created_at, s.updated_at,
	c.name AS category_name, c.color AS category_color, c.is_system AS category_is_system`

const subscriptionFrom = ` FROM subscriptions s LEFT JOIN categories c ON c.id = s.category_id`

// subscriptionRow is a subscription with its category columns joined in.
type subscriptionRow struct {
	domain.Subscription
	CategoryName     sql.NullString `db:"category_name"`
	CategoryColor    sql.NullString `db:"category_color"`
	CategoryIsSystem sql.NullBool   `db:"category_is_system"`
}

func (r subscriptionRow) toDomain() domain.Subscription {
	sub := r.Subscription
	if sub.CategoryID != nil && r.CategoryName.Valid {
		cat := &domain.Category{
			ID:       *sub.CategoryID,
			Name:     r.CategoryName.String,
			IsSystem: r.CategoryIsSystem.Bool,
		}
		if r.CategoryColor.Valid {
			color := r.CategoryColor.String
			cat.Color = &color
		}
		sub.Category = cat
	}
	return sub
}

func rowsToDomain(rows []subscriptionRow) []domain.Subscription {
	subs := make([]domain.Subscription, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, row.toDomain())
	}
	return subs
}

// Запись подписки
func (r *SubscriptionRepository) Create(ctx context.Context, sub domain.Subscription) (uuid.UUID, error) {
	const op = "repository.postgres.Create"
	query := `INSERT INTO subscriptions(user_id, service_name, amount, billing_cycle, currency,
		next_billing_date, auto_renew, status, satisfaction_score, category_id, note, service_url, start_date)
	VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRowxContext(ctx, query,
		sub.UserID, sub.ServiceName, sub.Amount, sub.BillingCycle, sub.Currency,
		sub.NextBillingDate, sub.AutoRenew, sub.Status, sub.SatisfactionScore, sub.CategoryID,
		sub.Note, sub.ServiceURL, sub.StartDate,
	).Scan(&id)
	if err != nil {
		r.log.Error("failed to create subscription", slog.String("op", op), slog.String("error", err.Error()))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// Вывести подписку по id
func (r *SubscriptionRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Subscription, error) {
	const op = "repository.postgres.GetByID"
	query := `SELECT ` + subscriptionColumns + subscriptionFrom + ` WHERE s.id = $1 AND s.user_id = $2`

	var row subscriptionRow
	if err := r.db.GetContext(ctx, &row, query, id, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: subscription %s: %w", op, id, domain.ErrNotFound)
		}

		r.log.Error("failed to get subscription",
			slog.String("op", op),
			slog.String("id", id.String()),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sub := row.toDomain()
	return &sub, nil
}

// Update overwrites the editable fields. Status goes through SetStatus.
func (r *SubscriptionRepository) Update(ctx context.Context, sub domain.Subscription) error {
	const op = "repository.postgres.Update"
	query := `UPDATE subscriptions SET service_name = $1, amount = $2, billing_cycle = $3, currency = $4,
		next_billing_date = $5, auto_renew = $6, satisfaction_score = $7, category_id = $8, note = $9,
		service_url = $10, start_date = $11, updated_at = NOW()
	WHERE id = $12 AND user_id = $13`

	res, err := r.db.ExecContext(ctx, query,
		sub.ServiceName, sub.Amount, sub.BillingCycle, sub.Currency, sub.NextBillingDate, sub.AutoRenew,
		sub.SatisfactionScore, sub.CategoryID, sub.Note, sub.ServiceURL, sub.StartDate,
		sub.ID, sub.UserID,
	)
	if err != nil {
		r.log.Error("failed to update subscription", slog.String("op", op), slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}
	return expectAffected(op, res, sub.ID)
}

// удалние подписки
func (r *SubscriptionRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const op = "repository.postgres.Delete"
	query := `DELETE FROM subscriptions WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		r.log.Error("failed to execute delete query",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := expectAffected(op, res, id); err != nil {
		return err
	}
	r.log.Info("subscription deleted successfully", slog.String("id", id.String()))
	return nil
}

var sortColumns = map[string]string{
	"amount":            "s.amount",
	"satisfaction":      "s.satisfaction_score",
	"next_billing_date": "s.next_billing_date",
	"created_at":        "s.created_at",
}

// фильтр
func (r *SubscriptionRepository) List(ctx context.Context, userID uuid.UUID, filter domain.SubscriptionFilter) ([]domain.Subscription, int64, error) {
	const op = "repository.postgres.List"
	filter.Defaults()

	where := ` WHERE s.user_id = $1`
	args := []interface{}{userID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND s.status = $%d", len(args))
	}

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		where += fmt.Sprintf(" AND s.category_id = $%d", len(args))
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM subscriptions s`+where, args...); err != nil {
		r.log.Error("failed to count list", slog.String("op", op), slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("%s: count: %w", op, err)
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = sortColumns["created_at"]
	}

	query := `SELECT ` + subscriptionColumns + subscriptionFrom + where +
		fmt.Sprintf(" ORDER BY %s %s NULLS LAST, s.id", column, filter.SortOrder)

	args = append(args, filter.PerPage)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, (filter.Page-1)*filter.PerPage)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	var rows []subscriptionRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.Error("failed to get list", slog.String("op", op), slog.String("error", err.Error()))
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return rowsToDomain(rows), total, nil
}

// ListByStatus returns every subscription of the user in status, category joined.
func (r *SubscriptionRepository) ListByStatus(ctx context.Context, userID uuid.UUID, status domain.SubscriptionStatus) ([]domain.Subscription, error) {
	const op = "repository.postgres.ListByStatus"
	query := `SELECT ` + subscriptionColumns + subscriptionFrom +
		` WHERE s.user_id = $1 AND s.status = $2 ORDER BY s.created_at, s.id`

	var rows []subscriptionRow
	if err := r.db.SelectContext(ctx, &rows, query, userID, status); err != nil {
		r.log.Error("failed to list by status", slog.String("op", op), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rowsToDomain(rows), nil
}

// Проверка на exists среди не отмененных подписок
func (r *SubscriptionRepository) Exists(ctx context.Context, userID uuid.UUID, serviceName string, excludeID uuid.UUID) (bool, error) {
	const op = "repository.postgres.Exists"
	query := `select exists(
    select 1 from subscriptions
    where user_id = $1
      and service_name = $2
      and status <> 'cancelled'
      and id <> $3
)`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID, serviceName, excludeID); err != nil {
		r.log.Error("failed to check subscription existence",
			slog.String("op", op), slog.String("error", err.Error()),
		)
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}

// SetStatus moves the user's subscriptions among ids that are currently in
// from to to, in one statement, and returns the ids that actually moved.
func (r *SubscriptionRepository) SetStatus(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, from, to domain.SubscriptionStatus) ([]uuid.UUID, error) {
	const op = "repository.postgres.SetStatus"
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}

	query := `UPDATE subscriptions SET status = $1, updated_at = NOW()
	WHERE user_id = $2 AND status = $3 AND id = ANY($4::uuid[])
	RETURNING id`

	var moved []uuid.UUID
	if err := r.db.SelectContext(ctx, &moved, query, to, userID, from, pq.Array(raw)); err != nil {
		r.log.Error("failed to set status",
			slog.String("op", op), slog.String("to", string(to)), slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return moved, nil
}

func expectAffected(op string, res sql.Result, id uuid.UUID) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get rows affected: %w", op, err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: subscription %s: %w", op, id, domain.ErrNotFound)
	}
	return nil
}
