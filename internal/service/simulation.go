package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mmoldabe-dev/subkeep/internal/domain"
	"github.com/mmoldabe-dev/subkeep/internal/repository"
	"github.com/mmoldabe-dev/subkeep/internal/simulation"
	"github.com/mmoldabe-dev/subkeep/internal/undo"
	"github.com/mmoldabe-dev/subkeep/internal/validation"
)

type SimulationServiceInterface interface {
	SimulateCancel(ctx context.Context, userID uuid.UUID, req CancelSimulationRequest) (*domain.SimulationResult, error)
	SimulateAdd(ctx context.Context, userID uuid.UUID, req AddSimulationRequest) (*domain.SimulationResult, error)
	SimulateCombined(ctx context.Context, userID uuid.UUID, req CombinedSimulationRequest) (*domain.SimulationResult, error)
	Apply(ctx context.Context, userID uuid.UUID, req ApplySimulationRequest) error
	Undo(ctx context.Context, userID uuid.UUID) error
}

// SimulationService runs read-only what-if projections and commits
// cancellations with a single undoable slot per user.
type SimulationService struct {
	subs  repository.SubscriptionInterface
	cats  repository.CategoryInterface
	undo  undo.Store
	locks undo.UserLocker
	now   func() time.Time
	log   *slog.Logger
}

var _ SimulationServiceInterface = (*SimulationService)(nil)

func NewSimulationService(
	subs repository.SubscriptionInterface,
	cats repository.CategoryInterface,
	store undo.Store,
	locks undo.UserLocker,
	log *slog.Logger,
) *SimulationService {
	return &SimulationService{
		subs:  subs,
		cats:  cats,
		undo:  store,
		locks: locks,
		now:   time.Now,
		log:   log.With(slog.String("component", "service")),
	}
}

func (s *SimulationService) SimulateCancel(ctx context.Context, userID uuid.UUID, req CancelSimulationRequest) (*domain.SimulationResult, error) {
	const op = "service.Simulation.SimulateCancel"

	res, err := s.run(ctx, userID, simulation.Scenario{CancelIDs: req.SubscriptionIDs})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

func (s *SimulationService) SimulateAdd(ctx context.Context, userID uuid.UUID, req AddSimulationRequest) (*domain.SimulationResult, error) {
	const op = "service.Simulation.SimulateAdd"

	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res, err := s.run(ctx, userID, simulation.Scenario{Adds: []domain.VirtualItem{req.item()}})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

func (s *SimulationService) SimulateCombined(ctx context.Context, userID uuid.UUID, req CombinedSimulationRequest) (*domain.SimulationResult, error) {
	const op = "service.Simulation.SimulateCombined"

	if err := validation.Struct(req); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	adds := make([]domain.VirtualItem, 0, len(req.AddItems))
	for _, a := range req.AddItems {
		adds = append(adds, a.item())
	}

	res, err := s.run(ctx, userID, simulation.Scenario{CancelIDs: req.CancelSubscriptionIDs, Adds: adds})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

func (s *SimulationService) run(ctx context.Context, userID uuid.UUID, sc simulation.Scenario) (*domain.SimulationResult, error) {
	active, err := s.subs.ListByStatus(ctx, userID, domain.StatusActive)
	if err != nil {
		s.log.Error("failed to load active subscriptions",
			slog.String("user_id", userID.String()), slog.String("error", err.Error()))
		return nil, err
	}

	var cats []domain.Category
	if needsCategories(sc.Adds) {
		cats, err = s.cats.ListVisible(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	res := simulation.Run(active, cats, sc)
	return &res, nil
}

func needsCategories(adds []domain.VirtualItem) bool {
	for _, a := range adds {
		if a.CategoryID != nil {
			return true
		}
	}
	return false
}

// Apply cancels the user's active subscriptions among req.SubscriptionIDs and
// makes that batch the user's only undoable change. Ids that are unknown,
// foreign or not active are skipped. If the undo slot cannot be saved the
// batch is reactivated and the error returned.
func (s *SimulationService) Apply(ctx context.Context, userID uuid.UUID, req ApplySimulationRequest) error {
	const op = "service.Simulation.Apply"

	if err := validation.Struct(req); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	unlock, err := s.locks.Lock(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer unlock()

	moved, err := s.subs.SetStatus(ctx, userID, req.SubscriptionIDs, domain.StatusActive, domain.StatusCancelled)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	now := s.now()
	pending := domain.PendingUndo{
		UserID:          userID,
		SubscriptionIDs: moved,
		AppliedAt:       now,
		ExpiresAt:       now.Add(domain.UndoWindow),
	}
	if err := s.undo.Put(ctx, pending); err != nil {
		// без слота отмену нельзя откатить, поэтому откатываем саму отмену
		if _, revertErr := s.subs.SetStatus(ctx, userID, moved, domain.StatusCancelled, domain.StatusActive); revertErr != nil {
			s.log.Error("undo slot not saved and cancellation not reverted",
				slog.String("user_id", userID.String()),
				slog.Int("cancelled", len(moved)),
				slog.String("error", revertErr.Error()))
			err = errors.Join(err, revertErr)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("simulation applied",
		slog.String("user_id", userID.String()),
		slog.String("action", req.Action),
		slog.Int("requested", len(req.SubscriptionIDs)),
		slog.Int("cancelled", len(moved)),
	)
	return nil
}

// Undo reactivates the subscriptions of the user's last Apply while its window is open.
func (s *SimulationService) Undo(ctx context.Context, userID uuid.UUID) error {
	const op = "service.Simulation.Undo"

	unlock, err := s.locks.Lock(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer unlock()

	pending, err := s.undo.Take(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if pending.Expired(s.now()) {
		return fmt.Errorf("%s: window closed at %s: %w", op, pending.ExpiresAt.Format(time.RFC3339), domain.ErrUndoUnavailable)
	}

	restored, err := s.subs.SetStatus(ctx, userID, pending.SubscriptionIDs, domain.StatusCancelled, domain.StatusActive)
	if err != nil {
		// give the slot back so the user can retry within the same window
		if putErr := s.undo.Put(ctx, pending); putErr != nil {
			err = errors.Join(err, putErr)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("simulation undone",
		slog.String("user_id", userID.String()),
		slog.Int("restored", len(restored)),
	)
	return nil
}
