// Package simulation projects spend totals under hypothetical cancellations
// and additions. Everything here is a pure function of its inputs; callers
// own any request ordering (a stale response must be discarded by whoever
// issued the newer request).
package simulation

import (
	"sort"

	"github.com/google/uuid"

	"github.com/mmoldabe-dev/subkeep/internal/billing"
	"github.com/mmoldabe-dev/subkeep/internal/domain"
)

const (
	UncategorizedID    = "uncategorized"
	UncategorizedName  = "미분류"
	UncategorizedColor = "#9E9E9E"
)

// Scenario is one set of hypothetical changes. Cancel-only, add-only and
// combined simulations are all scenarios.
type Scenario struct {
	CancelIDs []uuid.UUID
	Adds      []domain.VirtualItem
}

// Run computes the simulation result for active subscriptions under s.
// categories resolves the name and color of virtual items; subscriptions
// carry their own joined category. Cancel ids that are not in active are ignored.
func Run(active []domain.Subscription, categories []domain.Category, s Scenario) domain.SimulationResult {
	cancel := make(map[uuid.UUID]struct{}, len(s.CancelIDs))
	for _, id := range s.CancelIDs {
		cancel[id] = struct{}{}
	}

	var current, simulated int64
	buckets := newBucketSet()

	for i := range active {
		sub := &active[i]
		monthly := billing.MonthlyEquivalent(sub.Amount, sub.BillingCycle)
		current += monthly

		if _, ok := cancel[sub.ID]; ok {
			continue
		}

		simulated += monthly
		buckets.add(subscriptionBucketKey(sub), monthly)
	}

	if len(s.Adds) > 0 {
		byID := make(map[uuid.UUID]domain.Category, len(categories))
		for _, c := range categories {
			byID[c.ID] = c
		}

		for _, item := range s.Adds {
			monthly := billing.MonthlyEquivalent(item.Amount, item.BillingCycle)
			simulated += monthly
			buckets.add(virtualBucketKey(item, byID), monthly)
		}
	}

	diff := simulated - current

	return domain.SimulationResult{
		CurrentMonthlyTotal:   current,
		SimulatedMonthlyTotal: simulated,
		MonthlyDifference:     diff,
		AnnualDifference:      diff * 12,
		CategoryBreakdown:     buckets.breakdown(simulated),
	}
}

// Breakdown groups subscriptions by category over their monthly equivalents.
// It returns the monthly total alongside the breakdown.
func Breakdown(subs []domain.Subscription) (int64, []domain.CategoryBreakdown) {
	var total int64
	buckets := newBucketSet()

	for i := range subs {
		monthly := billing.MonthlyEquivalent(subs[i].Amount, subs[i].BillingCycle)
		total += monthly
		buckets.add(subscriptionBucketKey(&subs[i]), monthly)
	}

	return total, buckets.breakdown(total)
}

type bucketKey struct {
	id, name, color string
}

type bucket struct {
	key    bucketKey
	amount int64
	count  int
}

type bucketSet struct {
	byID map[string]*bucket
}

func newBucketSet() *bucketSet {
	return &bucketSet{byID: make(map[string]*bucket)}
}

func (b *bucketSet) add(key bucketKey, monthly int64) {
	g, ok := b.byID[key.id]
	if !ok {
		g = &bucket{key: key}
		b.byID[key.id] = g
	}
	g.amount += monthly
	g.count++
}

func (b *bucketSet) breakdown(total int64) []domain.CategoryBreakdown {
	out := make([]domain.CategoryBreakdown, 0, len(b.byID))
	for _, g := range b.byID {
		out = append(out, domain.CategoryBreakdown{
			CategoryID:    g.key.id,
			CategoryName:  g.key.name,
			CategoryColor: g.key.color,
			Amount:        g.amount,
			Percentage:    billing.Percentage(g.amount, total),
			Count:         g.count,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount > out[j].Amount
		}
		if out[i].CategoryName != out[j].CategoryName {
			return out[i].CategoryName < out[j].CategoryName
		}
		return out[i].CategoryID < out[j].CategoryID
	})

	return out
}

func uncategorized() bucketKey {
	return bucketKey{id: UncategorizedID, name: UncategorizedName, color: UncategorizedColor}
}

func subscriptionBucketKey(sub *domain.Subscription) bucketKey {
	if sub.CategoryID == nil || sub.Category == nil {
		return uncategorized()
	}
	return categoryKey(*sub.Category)
}

func virtualBucketKey(item domain.VirtualItem, categories map[uuid.UUID]domain.Category) bucketKey {
	if item.CategoryID == nil {
		return uncategorized()
	}
	if c, ok := categories[*item.CategoryID]; ok {
		return categoryKey(c)
	}
	id := item.CategoryID.String()
	return bucketKey{id: id, name: id, color: UncategorizedColor}
}

// CategoryLabel returns the name and color a subscription is grouped under.
func CategoryLabel(sub *domain.Subscription) (name, color string) {
	k := subscriptionBucketKey(sub)
	return k.name, k.color
}

func categoryKey(c domain.Category) bucketKey {
	color := UncategorizedColor
	if c.Color != nil && *c.Color != "" {
		color = *c.Color
	}
	return bucketKey{id: c.ID.String(), name: c.Name, color: color}
}
