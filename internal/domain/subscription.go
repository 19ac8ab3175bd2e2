package domain

import (
	"time"

	"github.com/google/uuid"
)

type BillingCycle string

const (
	BillingCycleWeekly  BillingCycle = "weekly"
	BillingCycleMonthly BillingCycle = "monthly"
	BillingCycleYearly  BillingCycle = "yearly"
)

type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "active"
	StatusPaused    SubscriptionStatus = "paused"
	StatusCancelled SubscriptionStatus = "cancelled"
)

// CanTransition reports whether a subscription may move from s to next.
// Cancelled is terminal; the undo path bypasses this check on purpose.
func (s SubscriptionStatus) CanTransition(next SubscriptionStatus) bool {
	switch s {
	case StatusActive:
		return next == StatusPaused || next == StatusCancelled
	case StatusPaused:
		return next == StatusActive || next == StatusCancelled
	default:
		return false
	}
}

const DefaultCurrency = "KRW"

// MaxAmount caps a single charge. Keep in sync with the lte tags on request
// amounts and the subscriptions_amount_max_chk constraint.
const MaxAmount = 9_999_999

type Subscription struct {
	ID                uuid.UUID          `json:"id" db:"id"`
	UserID            uuid.UUID          `json:"userId" db:"user_id"`
	ServiceName       string             `json:"serviceName" db:"service_name"`
	Amount            int64              `json:"amount" db:"amount"`
	BillingCycle      BillingCycle       `json:"billingCycle" db:"billing_cycle"`
	Currency          string             `json:"currency" db:"currency"`
	NextBillingDate   time.Time          `json:"nextBillingDate" db:"next_billing_date"`
	AutoRenew         bool               `json:"autoRenew" db:"auto_renew"`
	Status            SubscriptionStatus `json:"status" db:"status"`
	SatisfactionScore *int               `json:"satisfactionScore" db:"satisfaction_score"`
	CategoryID        *uuid.UUID         `json:"categoryId" db:"category_id"`
	Note              *string            `json:"note" db:"note"`
	ServiceURL        *string            `json:"serviceUrl" db:"service_url"`
	StartDate         time.Time          `json:"startDate" db:"start_date"`
	CreatedAt         time.Time          `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time          `json:"updatedAt" db:"updated_at"`

	Category *Category `json:"category,omitempty" db:"-"`
}

// SubscriptionView is a subscription with its derived amounts, as returned by the API.
type SubscriptionView struct {
	Subscription
	MonthlyAmount int64 `json:"monthlyAmount"`
	AnnualAmount  int64 `json:"annualAmount"`
}

type SubscriptionFilter struct {
	Status     SubscriptionStatus
	CategoryID *uuid.UUID
	SortBy     string
	SortOrder  string
	Page       int
	PerPage    int
}

// Defaults clamps paging and sort values into their allowed ranges.
func (f *SubscriptionFilter) Defaults() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PerPage <= 0 {
		f.PerPage = 20
	}
	if f.PerPage > 100 {
		f.PerPage = 100
	}
	if f.SortOrder != "asc" && f.SortOrder != "desc" {
		f.SortOrder = "desc"
	}
}

// SubscriptionPage is one page of a filtered list.
type SubscriptionPage struct {
	Items      []SubscriptionView `json:"items"`
	Page       int                `json:"page"`
	PerPage    int                `json:"perPage"`
	TotalItems int64              `json:"totalItems"`
}

type Category struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    *uuid.UUID `json:"userId" db:"user_id"`
	Name      string     `json:"name" db:"name"`
	Color     *string    `json:"color" db:"color"`
	IsSystem  bool       `json:"isSystem" db:"is_system"`
	SortOrder int        `json:"sortOrder" db:"sort_order"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

// VirtualItem is a hypothetical subscription that only lives inside one simulation request.
type VirtualItem struct {
	ServiceName  string       `json:"serviceName"`
	Amount       int64        `json:"amount"`
	BillingCycle BillingCycle `json:"billingCycle"`
	CategoryID   *uuid.UUID   `json:"categoryId,omitempty"`
}

type CategoryBreakdown struct {
	CategoryID    string  `json:"categoryId"`
	CategoryName  string  `json:"categoryName"`
	CategoryColor string  `json:"categoryColor"`
	Amount        int64   `json:"amount"`
	Percentage    float64 `json:"percentage"`
	Count         int     `json:"count"`
}

type SimulationResult struct {
	CurrentMonthlyTotal   int64               `json:"currentMonthlyTotal"`
	SimulatedMonthlyTotal int64               `json:"simulatedMonthlyTotal"`
	MonthlyDifference     int64               `json:"monthlyDifference"`
	AnnualDifference      int64               `json:"annualDifference"`
	CategoryBreakdown     []CategoryBreakdown `json:"categoryBreakdown"`
}

type DashboardSummary struct {
	MonthlyTotal      int64               `json:"monthlyTotal"`
	AnnualTotal       int64               `json:"annualTotal"`
	ActiveCount       int                 `json:"activeCount"`
	PausedCount       int                 `json:"pausedCount"`
	CategoryBreakdown []CategoryBreakdown `json:"categoryBreakdown"`
}

type CancelRecommendation struct {
	SubscriptionID    uuid.UUID `json:"subscriptionId"`
	ServiceName       string    `json:"serviceName"`
	MonthlyAmount     int64     `json:"monthlyAmount"`
	AnnualSaving      int64     `json:"annualSaving"`
	SatisfactionScore *int      `json:"satisfactionScore"`
	Reason            string    `json:"reason"`
}

// UpcomingPayment is one charge due within the requested window.
type UpcomingPayment struct {
	Date           string    `json:"date"`
	DaysUntil      int       `json:"daysUntil"`
	SubscriptionID uuid.UUID `json:"subscriptionId"`
	ServiceName    string    `json:"serviceName"`
	Amount         int64     `json:"amount"`
	MonthlyAmount  int64     `json:"monthlyAmount"`
	CategoryName   string    `json:"categoryName"`
	CategoryColor  string    `json:"categoryColor"`
}

// UndoWindow is how long an applied cancellation stays reversible.
const UndoWindow = 30 * time.Second

// PendingUndo is the single undoable apply for one user.
type PendingUndo struct {
	UserID          uuid.UUID   `json:"userId"`
	SubscriptionIDs []uuid.UUID `json:"subscriptionIds"`
	AppliedAt       time.Time   `json:"appliedAt"`
	ExpiresAt       time.Time   `json:"expiresAt"`
}

func (p PendingUndo) Expired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}
