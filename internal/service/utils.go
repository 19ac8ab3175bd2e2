package service

import (
	"time"

	"github.com/mmoldabe-dev/subkeep/internal/billing"
	"github.com/mmoldabe-dev/subkeep/internal/domain"
)

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "must be a date in "+dateLayout+" format")
	}
	return t, nil
}

func toView(sub domain.Subscription) domain.SubscriptionView {
	return domain.SubscriptionView{
		Subscription:  sub,
		MonthlyAmount: billing.MonthlyEquivalent(sub.Amount, sub.BillingCycle),
		AnnualAmount:  billing.AnnualEquivalent(sub.Amount, sub.BillingCycle),
	}
}

func toViews(subs []domain.Subscription) []domain.SubscriptionView {
	views := make([]domain.SubscriptionView, 0, len(subs))
	for _, s := range subs {
		views = append(views, toView(s))
	}
	return views
}
