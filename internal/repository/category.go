package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mmoldabe-dev/subkeep/internal/domain"
)

type CategoryInterface interface {
	ListVisible(ctx context.Context, userID uuid.UUID) ([]domain.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	Create(ctx context.Context, c domain.Category) (uuid.UUID, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type CategoryRepository struct {
	db  *sqlx.DB
	log *slog.Logger
}

var _ CategoryInterface = (*CategoryRepository)(nil)

func NewCategoryRepository(db *sqlx.DB, log *slog.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:  db,
		log: log.With(slog.String("component", "repository")),
	}
}

// ListVisible returns system categories followed by the user's own.
func (r *CategoryRepository) ListVisible(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	const op = "repository.postgres.ListVisible"
	query := `SELECT id, user_id, name, color, is_system, sort_order, created_at
	FROM categories
	WHERE is_system OR user_id = $1
	ORDER BY is_system DESC, sort_order, name`

	var cats []domain.Category
	if err := r.db.SelectContext(ctx, &cats, query, userID); err != nil {
		r.log.Error("failed to list categories", slog.String("op", op), slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cats, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	const op = "repository.postgres.GetCategory"
	query := `SELECT id, user_id, name, color, is_system, sort_order, created_at FROM categories WHERE id = $1`

	var c domain.Category
	if err := r.db.GetContext(ctx, &c, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: category %s: %w", op, id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c domain.Category) (uuid.UUID, error) {
	const op = "repository.postgres.CreateCategory"
	query := `INSERT INTO categories(user_id, name, color, is_system, sort_order)
	VALUES($1, $2, $3, FALSE, $4)
	RETURNING id`

	var id uuid.UUID
	if err := r.db.QueryRowxContext(ctx, query, c.UserID, c.Name, c.Color, c.SortOrder).Scan(&id); err != nil {
		r.log.Error("failed to create category", slog.String("op", op), slog.String("error", err.Error()))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

// Delete removes a user-owned category; subscriptions referencing it become uncategorized.
func (r *CategoryRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const op = "repository.postgres.DeleteCategory"
	query := `DELETE FROM categories WHERE id = $1 AND user_id = $2 AND NOT is_system`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		r.log.Error("failed to delete category", slog.String("op", op), slog.String("error", err.Error()))
		return fmt.Errorf("%s: %w", op, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: failed to get rows affected: %w", op, err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: category %s: %w", op, id, domain.ErrNotFound)
	}
	return nil
}
