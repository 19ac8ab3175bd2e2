package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/mmoldabe-dev/subkeep/internal/billing"
	"github.com/mmoldabe-dev/subkeep/internal/domain"
	"github.com/mmoldabe-dev/subkeep/internal/repository"
	"github.com/mmoldabe-dev/subkeep/internal/simulation"
)

const (
	defaultUpcomingDays = 30
	maxUpcomingDays     = 90
)

const (
	reasonLowSatisfaction = "low satisfaction"
	reasonHighCost        = "high cost for its satisfaction"
)

type DashboardServiceInterface interface {
	Summary(ctx context.Context, userID uuid.UUID) (*domain.DashboardSummary, error)
	Recommendations(ctx context.Context, userID uuid.UUID) ([]domain.CancelRecommendation, error)
	Upcoming(ctx context.Context, userID uuid.UUID, days int) ([]domain.UpcomingPayment, error)
}

type DashboardService struct {
	repo repository.SubscriptionInterface
	log  *slog.Logger
	now  func() time.Time
}

var _ DashboardServiceInterface = (*DashboardService)(nil)

func NewDashboardService(repo repository.SubscriptionInterface, log *slog.Logger) *DashboardService {
	return &DashboardService{
		repo: repo,
		log:  log.With(slog.String("component", "service")),
		now:  time.Now,
	}
}

func (s *DashboardService) Summary(ctx context.Context, userID uuid.UUID) (*domain.DashboardSummary, error) {
	const op = "service.Dashboard.Summary"

	active, err := s.repo.ListByStatus(ctx, userID, domain.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	paused, err := s.repo.ListByStatus(ctx, userID, domain.StatusPaused)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	total, breakdown := simulation.Breakdown(active)

	return &domain.DashboardSummary{
		MonthlyTotal:      total,
		AnnualTotal:       total * 12,
		ActiveCount:       len(active),
		PausedCount:       len(paused),
		CategoryBreakdown: breakdown,
	}, nil
}

// Recommendations lists active subscriptions worth cancelling: satisfaction of 2
// or less, or a monthly cost in the top 20% with satisfaction of 3 or less.
func (s *DashboardService) Recommendations(ctx context.Context, userID uuid.UUID) ([]domain.CancelRecommendation, error) {
	const op = "service.Dashboard.Recommendations"

	active, err := s.repo.ListByStatus(ctx, userID, domain.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := []domain.CancelRecommendation{}
	if len(active) == 0 {
		return out, nil
	}

	monthly := make([]int64, len(active))
	for i, sub := range active {
		monthly[i] = billing.MonthlyEquivalent(sub.Amount, sub.BillingCycle)
	}

	sorted := append([]int64(nil), monthly...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })
	threshold := sorted[int(math.Ceil(float64(len(sorted))*0.2))-1]

	for i, sub := range active {
		if sub.SatisfactionScore == nil {
			continue
		}
		score := *sub.SatisfactionScore

		var reason string
		switch {
		case score <= 2:
			reason = reasonLowSatisfaction
		case score <= 3 && monthly[i] >= threshold:
			reason = reasonHighCost
		default:
			continue
		}

		out = append(out, domain.CancelRecommendation{
			SubscriptionID:    sub.ID,
			ServiceName:       sub.ServiceName,
			MonthlyAmount:     monthly[i],
			AnnualSaving:      monthly[i] * 12,
			SatisfactionScore: sub.SatisfactionScore,
			Reason:            reason,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		si, sj := *out[i].SatisfactionScore, *out[j].SatisfactionScore
		if si != sj {
			return si < sj
		}
		return out[i].MonthlyAmount > out[j].MonthlyAmount
	})

	return out, nil
}

// Upcoming lists active subscriptions billed within the next days days,
// today included, ordered by billing date. days defaults to 30 and is capped at 90.
func (s *DashboardService) Upcoming(ctx context.Context, userID uuid.UUID, days int) ([]domain.UpcomingPayment, error) {
	const op = "service.Dashboard.Upcoming"

	if days <= 0 {
		days = defaultUpcomingDays
	}
	if days > maxUpcomingDays {
		days = maxUpcomingDays
	}

	active, err := s.repo.ListByStatus(ctx, userID, domain.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	today := s.now().UTC().Truncate(24 * time.Hour)
	deadline := today.AddDate(0, 0, days)

	out := []domain.UpcomingPayment{}
	for i := range active {
		sub := &active[i]
		due := sub.NextBillingDate.UTC().Truncate(24 * time.Hour)
		if due.Before(today) || due.After(deadline) {
			continue
		}

		name, color := simulation.CategoryLabel(sub)
		out = append(out, domain.UpcomingPayment{
			Date:           due.Format(time.DateOnly),
			DaysUntil:      int(due.Sub(today).Hours() / 24),
			SubscriptionID: sub.ID,
			ServiceName:    sub.ServiceName,
			Amount:         sub.Amount,
			MonthlyAmount:  billing.MonthlyEquivalent(sub.Amount, sub.BillingCycle),
			CategoryName:   name,
			CategoryColor:  color,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })

	return out, nil
}
