package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/mmoldabe-dev/subkeep/internal/domain"
	"github.com/mmoldabe-dev/subkeep/internal/repository"
	"github.com/mmoldabe-dev/subkeep/internal/validation"
)

type CategoryServiceInterface interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Category, error)
	Create(ctx context.Context, userID uuid.UUID, req CreateCategoryRequest) (uuid.UUID, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type CategoryService struct {
	repo repository.CategoryInterface
	log  *slog.Logger
}

var _ CategoryServiceInterface = (*CategoryService)(nil)

func NewCategoryService(repo repository.CategoryInterface, log *slog.Logger) *CategoryService {
	return &CategoryService{
		repo: repo,
		log:  log.With(slog.String("component", "service")),
	}
}

func (s *CategoryService) List(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	const op = "service.Category.List"

	cats, err := s.repo.ListVisible(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if cats == nil {
		cats = []domain.Category{}
	}
	return cats, nil
}

func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, req CreateCategoryRequest) (uuid.UUID, error) {
	const op = "service.Category.Create"

	req.Name = strings.TrimSpace(req.Name)
	if err := validation.Struct(req); err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	owner := userID
	id, err := s.repo.Create(ctx, domain.Category{
		UserID:    &owner,
		Name:      req.Name,
		Color:     req.Color,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("category created", slog.String("id", id.String()))
	return id, nil
}

// Delete removes one of the user's categories. System categories are shared and immutable.
func (s *CategoryService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const op = "service.Category.Delete"

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if c.IsSystem {
		return fmt.Errorf("%s: system category: %w", op, domain.ErrForbidden)
	}
	if c.UserID == nil || *c.UserID != userID {
		return fmt.Errorf("%s: category %s: %w", op, id, domain.ErrNotFound)
	}

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
