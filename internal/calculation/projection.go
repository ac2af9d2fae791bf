package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/retirekit/income-engine/internal/domain"
)

// IncomeProjector produces the year-by-year projection table from current age
// to planning age, combining Social Security, pension, externally supplied
// portfolio withdrawals, and other income against phased spending. It is a
// pure forward simulation: there is no feedback and no dynamic withdrawal
// policy; a negative net cash flow is reported, never corrected.
type IncomeProjector struct {
	Spending *SpendingCalculator
	Logger   Logger
}

// NewIncomeProjector creates a projector with a default spending calculator.
func NewIncomeProjector() *IncomeProjector {
	return &IncomeProjector{
		Spending: NewSpendingCalculator(),
		Logger:   NopLogger{},
	}
}

// ProjectIncome builds one row per year from currentAge through planningAge.
// Rows before the filing age carry zero Social Security; from the filing year
// onward the annual benefit is escalated by (1+COLA)^i, i being years since
// the projection start. Per-year slices shorter than the horizon contribute
// zero beyond their end. A planning age at or below the current age yields an
// empty table; that is a defined boundary, not a fault.
func (ip *IncomeProjector) ProjectIncome(
	currentAge, planningAge int,
	benefit domain.BenefitResult,
	pattern domain.SpendingPattern,
	pensionAnnual decimal.Decimal,
	withdrawalsByYear []decimal.Decimal,
	otherIncomeByYear []decimal.Decimal,
) []domain.ProjectionRow {
	if planningAge <= currentAge {
		return []domain.ProjectionRow{}
	}

	horizonYears := planningAge - currentAge
	one := decimal.NewFromInt(1)
	rows := make([]domain.ProjectionRow, 0, horizonYears+1)

	for i := 0; i <= horizonYears; i++ {
		age := currentAge + i
		row := domain.ProjectionRow{
			Year:    i + 1,
			Age:     age,
			Pension: pensionAnnual,
		}

		if age >= benefit.FilingAge {
			colaFactor := one.Add(benefit.COLARate).Pow(decimal.NewFromInt(int64(i)))
			row.SocialSecurity = benefit.AnnualBenefit.Mul(colaFactor)
		} else {
			row.SocialSecurity = decimal.Zero
		}

		if i < len(withdrawalsByYear) {
			row.PortfolioWithdrawal = withdrawalsByYear[i]
		} else {
			row.PortfolioWithdrawal = decimal.Zero
		}
		if i < len(otherIncomeByYear) {
			row.OtherIncome = otherIncomeByYear[i]
		} else {
			row.OtherIncome = decimal.Zero
		}

		row.TotalExpenses = ip.Spending.ProjectedSpending(age, pattern, i)

		// Totals are always recomputed from components.
		row.TotalIncome = row.CalculateTotalIncome()
		row.NetCashFlow = row.CalculateNetCashFlow()

		rows = append(rows, row)
	}

	return rows
}
