package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/mmoldabe-dev/subkeep/internal/domain"
	"github.com/mmoldabe-dev/subkeep/internal/repository"
	"github.com/mmoldabe-dev/subkeep/internal/validation"
)

type SubscriptionServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, in SubscriptionInput) (uuid.UUID, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.SubscriptionView, error)
	Update(ctx context.Context, userID, id uuid.UUID, in SubscriptionInput) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.SubscriptionFilter) (*domain.SubscriptionPage, error)
	ChangeStatus(ctx context.Context, userID, id uuid.UUID, req ChangeStatusRequest) error
}

type SubscriptionService struct {
	repo repository.SubscriptionInterface
	cats repository.CategoryInterface
	log  *slog.Logger
}

var _ SubscriptionServiceInterface = (*SubscriptionService)(nil)

func NewSubscriptionService(repo repository.SubscriptionInterface, cats repository.CategoryInterface, log *slog.Logger) *SubscriptionService {
	return &SubscriptionService{
		repo: repo,
		cats: cats,
		log:  log.With(slog.String("component", "service")),
	}
}

func (s *SubscriptionService) Create(ctx context.Context, userID uuid.UUID, in SubscriptionInput) (uuid.UUID, error) {
	const op = "service.Subscription.Create"

	sub, err := s.fromInput(ctx, userID, in)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}
	sub.Status = domain.StatusActive

	exists, err := s.repo.Exists(ctx, userID, sub.ServiceName, uuid.Nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return uuid.Nil, fmt.Errorf("%s: subscription %q: %w", op, sub.ServiceName, domain.ErrAlreadyExists)
	}

	id, err := s.repo.Create(ctx, sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("subscription created successfully", slog.String("id", id.String()))
	return id, nil
}

func (s *SubscriptionService) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.SubscriptionView, error) {
	const op = "service.Subscription.GetByID"

	sub, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	view := toView(*sub)
	return &view, nil
}

func (s *SubscriptionService) Update(ctx context.Context, userID, id uuid.UUID, in SubscriptionInput) error {
	const op = "service.Subscription.Update"

	current, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	sub, err := s.fromInput(ctx, userID, in)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	sub.ID = current.ID
	sub.Status = current.Status

	if sub.ServiceName != current.ServiceName {
		exists, err := s.repo.Exists(ctx, userID, sub.ServiceName, id)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if exists {
			return fmt.Errorf("%s: subscription %q: %w", op, sub.ServiceName, domain.ErrAlreadyExists)
		}
	}

	if err := s.repo.Update(ctx, sub); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *SubscriptionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const op = "service.Subscription.Delete"

	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *SubscriptionService) List(ctx context.Context, userID uuid.UUID, filter domain.SubscriptionFilter) (*domain.SubscriptionPage, error) {
	const op = "service.Subscription.List"

	filter.Defaults()

	subs, total, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &domain.SubscriptionPage{
		Items:      toViews(subs),
		Page:       filter.Page,
		PerPage:    filter.PerPage,
		TotalItems: total,
	}, nil
}

// ChangeStatus applies a user-driven status transition. Cancelled is terminal here;
// only the simulation undo path can reactivate a cancelled subscription.
func (s *SubscriptionService) ChangeStatus(ctx context.Context, userID, id uuid.UUID, req ChangeStatusRequest) error {
	const op = "service.Subscription.ChangeStatus"

	if err := validation.Struct(req); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	sub, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !sub.Status.CanTransition(req.Status) {
		return fmt.Errorf("%s: %s -> %s: %w", op, sub.Status, req.Status, domain.ErrInvalidTransition)
	}

	moved, err := s.repo.SetStatus(ctx, userID, []uuid.UUID{id}, sub.Status, req.Status)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if len(moved) == 0 {
		// status changed underneath us
		return fmt.Errorf("%s: %w", op, domain.ErrInvalidTransition)
	}

	s.log.Info("subscription status changed",
		slog.String("id", id.String()),
		slog.String("from", string(sub.Status)),
		slog.String("to", string(req.Status)),
	)
	return nil
}

func (s *SubscriptionService) fromInput(ctx context.Context, userID uuid.UUID, in SubscriptionInput) (domain.Subscription, error) {
	in.ServiceName = strings.TrimSpace(in.ServiceName)
	if err := validation.Struct(in); err != nil {
		return domain.Subscription{}, err
	}

	next, err := parseDate("nextBillingDate", in.NextBillingDate)
	if err != nil {
		return domain.Subscription{}, err
	}
	start, err := parseDate("startDate", in.StartDate)
	if err != nil {
		return domain.Subscription{}, err
	}

	if in.CategoryID != nil {
		if err := s.checkCategory(ctx, userID, *in.CategoryID); err != nil {
			return domain.Subscription{}, err
		}
	}

	currency := strings.ToUpper(in.Currency)
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	autoRenew := true
	if in.AutoRenew != nil {
		autoRenew = *in.AutoRenew
	}

	return domain.Subscription{
		UserID:            userID,
		ServiceName:       in.ServiceName,
		Amount:            in.Amount,
		BillingCycle:      in.BillingCycle,
		Currency:          currency,
		NextBillingDate:   next,
		AutoRenew:         autoRenew,
		SatisfactionScore: in.SatisfactionScore,
		CategoryID:        in.CategoryID,
		Note:              in.Note,
		ServiceURL:        in.ServiceURL,
		StartDate:         start,
	}, nil
}

// checkCategory accepts system categories and the user's own.
func (s *SubscriptionService) checkCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	c, err := s.cats.GetByID(ctx, categoryID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewValidationError("categoryId", "unknown category")
	}
	if err != nil {
		return err
	}
	if !c.IsSystem && (c.UserID == nil || *c.UserID != userID) {
		return domain.NewValidationError("categoryId", "unknown category")
	}
	return nil
}
