package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/retirekit/income-engine/internal/domain"
)

// CumulativeBreakevenResult describes the crossover point where the
// cumulative net cash flow of two projections is equal. This is the exact
// counterpart of the fixed FRA+12 BreakevenAge heuristic on BenefitResult,
// which is preserved untouched because downstream display text depends on it.
type CumulativeBreakevenResult struct {
	// Index of the later year in the projection where the crossover occurs
	// (1-based, matching ProjectionRow.Year)
	YearIndex int `json:"year_index"`

	// Age (fractional) at which the crossover occurs, e.g. 78.25
	CrossoverAge float64 `json:"crossover_age"`

	// Fraction (0..1) of the crossing year where the crossover happens
	Fraction decimal.Decimal `json:"fraction_of_year"`

	// Cumulative net cash flow at the crossover (equal for both projections)
	CumulativeAmount decimal.Decimal `json:"cumulative_amount"`

	// Bookkeeping: whole ages bracketing the crossover
	PrevAge int `json:"prev_age"`
	NextAge int `json:"next_age"`
}

// CalculateCumulativeBreakeven finds the first crossover (if any) between the
// cumulative net cash flow of projection A and projection B. Projections must
// be aligned by index (same start age). An exact equality at the very first
// index is ignored as trivial. If no crossover is found, returns nil, nil.
func CalculateCumulativeBreakeven(projA, projB []domain.ProjectionRow) (*CumulativeBreakevenResult, error) {
	if len(projA) == 0 || len(projB) == 0 {
		return nil, fmt.Errorf("one or both projections are empty")
	}

	n := len(projA)
	if len(projB) < n {
		n = len(projB)
	}

	cumA := decimal.Zero
	cumB := decimal.Zero
	tolerance := decimal.NewFromFloat(0.01) // 1 cent

	var prevDiff decimal.Decimal
	for i := 0; i < n; i++ {
		yearNetA := projA[i].NetCashFlow
		yearNetB := projB[i].NetCashFlow

		prevDiff = cumA.Sub(cumB)

		cumA = cumA.Add(yearNetA)
		cumB = cumB.Add(yearNetB)

		currDiff := cumA.Sub(cumB)

		if currDiff.Abs().LessThan(tolerance) {
			if i == 0 {
				continue // identical first rows, keep searching
			}
			// Crossover lands exactly at the end of year i.
			return &CumulativeBreakevenResult{
				YearIndex:        projA[i].Year,
				CrossoverAge:     float64(projA[i].Age) + 1,
				Fraction:         decimal.NewFromInt(1),
				CumulativeAmount: cumA,
				PrevAge:          projA[i].Age,
				NextAge:          projA[i].Age + 1,
			}, nil
		}

		// A sign change between prevDiff and currDiff means the cumulative
		// totals crossed inside this year; interpolate linearly.
		if i > 0 && prevDiff.Mul(currDiff).LessThan(decimal.Zero) {
			denom := currDiff.Sub(prevDiff)
			t := decimal.NewFromFloat(0.5)
			if !denom.IsZero() {
				t = prevDiff.Neg().Div(denom)
				if t.LessThan(decimal.Zero) {
					t = decimal.Zero
				} else if t.GreaterThan(decimal.NewFromInt(1)) {
					t = decimal.NewFromInt(1)
				}
			}

			cumAtCrossover := cumA.Sub(yearNetA).Add(yearNetA.Mul(t))

			return &CumulativeBreakevenResult{
				YearIndex:        projA[i].Year,
				CrossoverAge:     float64(projA[i].Age) + t.InexactFloat64(),
				Fraction:         t,
				CumulativeAmount: cumAtCrossover,
				PrevAge:          projA[i].Age,
				NextAge:          projA[i].Age + 1,
			}, nil
		}
	}

	return nil, nil
}
