package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/retirekit/income-engine/internal/domain"
)

// Retirement spending phase bands. Lower bounds are inclusive; the bands are
// contiguous and exhaustive, so every age maps to exactly one phase.
const (
	slowGoStartAge = 75
	noGoStartAge   = 85
)

// SpendingCalculator computes expected annual spending at a given age,
// blending a phase multiplier, compounding healthcare costs, and one-time
// major expenses.
type SpendingCalculator struct {
	Logger Logger
}

// NewSpendingCalculator creates a new spending calculator.
func NewSpendingCalculator() *SpendingCalculator {
	return &SpendingCalculator{Logger: NopLogger{}}
}

// PhaseMultiplier selects the go-go, slow-go, or no-go multiplier for an age.
func PhaseMultiplier(age int, pattern domain.SpendingPattern) decimal.Decimal {
	switch {
	case age >= noGoStartAge:
		return pattern.NoGoMultiplier
	case age >= slowGoStartAge:
		return pattern.SlowGoMultiplier
	default:
		return pattern.GoGoMultiplier
	}
}

// ProjectedSpending computes total spending at the given age, yearsElapsed
// years into the projection. Healthcare compounds at its own growth rate
// relative to the projection's starting year. Major expenses land in full on
// the projection year they are tagged with (Year is 1-based, matching
// ProjectionRow.Year) and contribute nothing to any other year.
func (sc *SpendingCalculator) ProjectedSpending(age int, pattern domain.SpendingPattern, yearsElapsed int) decimal.Decimal {
	healthcare := pattern.HealthcareAnnual
	if yearsElapsed > 0 {
		growthFactor := decimal.NewFromInt(1).Add(pattern.HealthcareGrowthRate).
			Pow(decimal.NewFromInt(int64(yearsElapsed)))
		healthcare = healthcare.Mul(growthFactor)
	}

	spending := pattern.BaseAnnualSpending.Mul(PhaseMultiplier(age, pattern)).Add(healthcare)

	for _, expense := range pattern.MajorExpenses {
		if expense.Year == yearsElapsed+1 {
			spending = spending.Add(expense.Amount)
		}
	}

	return spending
}
