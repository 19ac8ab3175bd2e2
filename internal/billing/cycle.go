// Package billing normalizes subscription amounts across billing cycles.
//
// All amounts are whole currency units. Conversions round half up, so every
// aggregate built on top of them is already an integer.
package billing

import (
	"math"

	"github.com/mmoldabe-dev/subkeep/internal/domain"
)

const (
	monthsPerYear = 12
	weeksPerYear  = 52
)

// MonthlyEquivalent converts amount billed every cycle into a per-month amount.
// Unknown cycles are treated as monthly.
func MonthlyEquivalent(amount int64, cycle domain.BillingCycle) int64 {
	switch cycle {
	case domain.BillingCycleMonthly:
		return amount
	case domain.BillingCycleYearly:
		return roundDiv(amount, monthsPerYear)
	case domain.BillingCycleWeekly:
		// делим до умножения, чтобы amount*52 не переполнил int64
		q, r := amount/monthsPerYear, amount%monthsPerYear
		return q*weeksPerYear + roundDiv(r*weeksPerYear, monthsPerYear)
	default:
		return amount
	}
}

// AnnualEquivalent annualizes the monthly equivalent. For yearly cycles the
// result can differ from amount by up to 11 units because of the first rounding.
func AnnualEquivalent(amount int64, cycle domain.BillingCycle) int64 {
	return MonthlyEquivalent(amount, cycle) * monthsPerYear
}

// ValidCycle reports whether cycle is one of the enumerated billing cycles.
func ValidCycle(cycle domain.BillingCycle) bool {
	switch cycle {
	case domain.BillingCycleWeekly, domain.BillingCycleMonthly, domain.BillingCycleYearly:
		return true
	}
	return false
}

// Percentage returns part/total*100 rounded half up to one decimal, or 0 when total is 0.
func Percentage(part, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Floor(float64(part)*1000/float64(total)+0.5) / 10
}

func roundDiv(n, d int64) int64 {
	if n < 0 {
		return -roundDiv(-n, d)
	}
	return (n + d/2) / d
}
