package billing

import (
	"testing"

	"github.com/mmoldabe-dev/subkeep/internal/domain"
)

func TestMonthlyEquivalent(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		cycle  domain.BillingCycle
		want   int64
	}{
		{"monthly unchanged", 15000, domain.BillingCycleMonthly, 15000},
		{"yearly exact", 12000, domain.BillingCycleYearly, 1000},
		{"yearly rounds down", 10000, domain.BillingCycleYearly, 833},
		{"yearly rounds half up", 18, domain.BillingCycleYearly, 2},
		{"yearly 15000", 15000, domain.BillingCycleYearly, 1250},
		{"weekly", 1000, domain.BillingCycleWeekly, 4333},
		{"weekly rounds up", 1, domain.BillingCycleWeekly, 4},
		{"unknown cycle", 7000, "daily", 7000},
		{"empty cycle", 7000, "", 7000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthlyEquivalent(tt.amount, tt.cycle); got != tt.want {
				t.Errorf("MonthlyEquivalent(%d, %q) = %d, want %d", tt.amount, tt.cycle, got, tt.want)
			}
		})
	}
}

func TestWeeklyAtLargeAmounts(t *testing.T) {
	tests := []struct {
		name          string
		amount        int64
		monthly, year int64
	}{
		{"at cap", domain.MaxAmount, 43333329, 43333329 * 12},
		{"far above cap", 1 << 58, 1248998296657417557, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyEquivalent(tt.amount, domain.BillingCycleWeekly)
			if got != tt.monthly {
				t.Errorf("MonthlyEquivalent(%d, weekly) = %d, want %d", tt.amount, got, tt.monthly)
			}
			if tt.year >= 0 {
				if got := AnnualEquivalent(tt.amount, domain.BillingCycleWeekly); got != tt.year {
					t.Errorf("AnnualEquivalent(%d, weekly) = %d, want %d", tt.amount, got, tt.year)
				}
			}
		})
	}
}

func TestWeeklyMatchesDirectFormula(t *testing.T) {
	for amount := int64(0); amount < 5000; amount++ {
		want := (amount*52 + 6) / 12
		if got := MonthlyEquivalent(amount, domain.BillingCycleWeekly); got != want {
			t.Fatalf("MonthlyEquivalent(%d, weekly) = %d, want %d", amount, got, want)
		}
	}
}

func TestZeroAmountAllCycles(t *testing.T) {
	for _, c := range []domain.BillingCycle{domain.BillingCycleWeekly, domain.BillingCycleMonthly, domain.BillingCycleYearly, "bogus"} {
		if got := MonthlyEquivalent(0, c); got != 0 {
			t.Errorf("MonthlyEquivalent(0, %q) = %d", c, got)
		}
		if got := AnnualEquivalent(0, c); got != 0 {
			t.Errorf("AnnualEquivalent(0, %q) = %d", c, got)
		}
	}
}

func TestMonthlyIdentity(t *testing.T) {
	for _, amount := range []int64{0, 1, 999, 15000, 9999999} {
		if got := MonthlyEquivalent(amount, domain.BillingCycleMonthly); got != amount {
			t.Errorf("MonthlyEquivalent(%d, monthly) = %d", amount, got)
		}
		if got := AnnualEquivalent(amount, domain.BillingCycleMonthly); got != amount*12 {
			t.Errorf("AnnualEquivalent(%d, monthly) = %d", amount, got)
		}
	}
}

func TestAnnualEquivalentTwoStepRounding(t *testing.T) {
	// 10000/12 rounds to 833, so the annual figure is 9996, not 10000.
	if got := AnnualEquivalent(10000, domain.BillingCycleYearly); got != 9996 {
		t.Errorf("AnnualEquivalent(10000, yearly) = %d, want 9996", got)
	}
	if got := AnnualEquivalent(1000, domain.BillingCycleWeekly); got != 4333*12 {
		t.Errorf("AnnualEquivalent(1000, weekly) = %d", got)
	}
}

func TestValidCycle(t *testing.T) {
	if !ValidCycle(domain.BillingCycleWeekly) || !ValidCycle(domain.BillingCycleYearly) {
		t.Error("enumerated cycle rejected")
	}
	if ValidCycle("quarterly") {
		t.Error("quarterly accepted")
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		part, total int64
		want        float64
	}{
		{1, 3, 33.3},
		{2, 3, 66.7},
		{1, 8, 12.5},
		{1, 16, 6.3},
		{5, 5, 100},
		{5, 0, 0},
		{0, 10, 0},
	}

	for _, tt := range tests {
		if got := Percentage(tt.part, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %v, want %v", tt.part, tt.total, got, tt.want)
		}
	}
}
