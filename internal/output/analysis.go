package output

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/retirekit/income-engine/internal/domain"
)

// Recommendation encapsulates the selection result of the best filing scenario.
type Recommendation struct {
	ScenarioName    string
	FilingAge       int
	LifetimeNetPV   decimal.Decimal
	PVChange        decimal.Decimal
	PVChangePercent decimal.Decimal
}

// AnalyzePlan determines the scenario with the highest discounted lifetime
// net cash flow. Change figures are relative to the lowest-ranked scenario.
// Extracted from embedded console logic for testability.
func AnalyzePlan(results *domain.PlanComparison) Recommendation {
	if len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	ranks := append([]domain.PlanSummary(nil), results.Scenarios...)
	sort.Slice(ranks, func(i, j int) bool { return ranks[i].LifetimeNetPV.GreaterThan(ranks[j].LifetimeNetPV) })
	best := ranks[0]
	worst := ranks[len(ranks)-1]
	delta := best.LifetimeNetPV.Sub(worst.LifetimeNetPV)
	pct := decimal.Zero
	if !worst.LifetimeNetPV.IsZero() {
		pct = delta.Div(worst.LifetimeNetPV.Abs()).Mul(decimal.NewFromInt(100))
	}
	return Recommendation{
		ScenarioName:    best.Name,
		FilingAge:       best.FilingAge,
		LifetimeNetPV:   best.LifetimeNetPV,
		PVChange:        delta,
		PVChangePercent: pct,
	}
}
