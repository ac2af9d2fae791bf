package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/retirekit/income-engine/internal/domain"
)

const (
	// Benefit adjustment per year relative to FRA: 6.67% reduction per year
	// early (uncapped), 8% delayed credit per year late, capped at 24% (no
	// more than 3 credited years however late filing is requested).
	earlyReductionPctPerYear = 6.67
	delayedCreditPctPerYear  = 8
	delayedCreditCapPct      = 24

	// Fixed breakeven heuristic: FRA + 12 years, independent of the chosen
	// filing age. CalculateCumulativeBreakeven gives the exact crossover.
	breakevenYearsAfterFRA = 12
)

// FullRetirementAge returns the Social Security FRA for a birth year: 66 for
// 1954 and earlier, 67 for 1960 and later. The 1955-1959 transitional band,
// which SSA phases in with two-month increments, is collapsed to a flat 66.
func FullRetirementAge(birthYear int) int {
	if birthYear >= 1960 {
		return 67
	}
	return 66
}

// BenefitCalculator converts a filing choice into a benefit relative to the
// Primary Insurance Amount. Filing ages outside 62-70 are accepted
// numerically; constraining the input range is the caller's job.
type BenefitCalculator struct {
	Logger Logger
}

// NewBenefitCalculator creates a new Social Security benefit calculator.
func NewBenefitCalculator() *BenefitCalculator {
	return &BenefitCalculator{Logger: NopLogger{}}
}

// Calculate computes the benefit for the given filing parameters.
func (bc *BenefitCalculator) Calculate(params domain.BenefitParameters) domain.BenefitResult {
	fra := FullRetirementAge(params.BirthYear)
	ageDiff := params.FilingAge - fra

	one := decimal.NewFromInt(1)
	hundred := decimal.NewFromInt(100)

	monthly := params.PIAMonthly
	reduction := decimal.Zero
	increase := decimal.Zero

	switch {
	case ageDiff < 0:
		reduction = decimal.NewFromFloat(earlyReductionPctPerYear).
			Mul(decimal.NewFromInt(int64(-ageDiff)))
		monthly = params.PIAMonthly.Mul(one.Sub(reduction.Div(hundred)))
	case ageDiff > 0:
		increase = decimal.NewFromInt(delayedCreditPctPerYear).
			Mul(decimal.NewFromInt(int64(ageDiff)))
		if cap := decimal.NewFromInt(delayedCreditCapPct); increase.GreaterThan(cap) {
			increase = cap
		}
		monthly = params.PIAMonthly.Mul(one.Add(increase.Div(hundred)))
	}

	bc.Logger.Debugf("benefit at filing age %d (FRA %d): %s monthly", params.FilingAge, fra, monthly.StringFixed(2))

	return domain.BenefitResult{
		MonthlyBenefit:      monthly,
		AnnualBenefit:       monthly.Mul(decimal.NewFromInt(12)),
		FullRetirementAge:   fra,
		ReductionPercentage: reduction,
		IncreasePercentage:  increase,
		BreakevenAge:        fra + breakevenYearsAfterFRA,
		FilingAge:           params.FilingAge,
		COLARate:            params.COLARate,
	}
}

// ApplyCOLA applies one year of cost-of-living adjustment to a benefit.
func ApplyCOLA(currentBenefit decimal.Decimal, colaRate decimal.Decimal) decimal.Decimal {
	return currentBenefit.Mul(decimal.NewFromInt(1).Add(colaRate))
}
