package calculation

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/retirekit/income-engine/internal/domain"
	"github.com/retirekit/income-engine/pkg/dateutil"
)

// nowFunc is swapped in tests to pin the projection start date.
var nowFunc = time.Now

// CalculationEngine orchestrates the benefit, longevity, spending, and
// projection calculators over a plan's filing scenarios. Every calculation is
// pure and per-invocation; engines are safe to share across goroutines.
type CalculationEngine struct {
	Benefits     *BenefitCalculator
	Longevity    *LongevityCalculator
	Projector    *IncomeProjector
	DiscountRate decimal.Decimal // for lifetime present-value totals
	Debug        bool
	Logger       Logger
}

// NewCalculationEngine creates a new calculation engine.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{
		Benefits:     NewBenefitCalculator(),
		Longevity:    NewLongevityCalculator(),
		Projector:    NewIncomeProjector(),
		DiscountRate: decimal.NewFromFloat(0.03),
		Logger:       NopLogger{},
	}
}

// SetLogger sets the logger for the engine and its calculators. If nil is
// provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	ce.Logger = l
	ce.Benefits.Logger = l
	ce.Longevity.Logger = l
	ce.Projector.Logger = l
	ce.Projector.Spending.Logger = l
}

// RunPlan projects every scenario in the plan and assembles the comparison.
// A plan without explicit scenarios runs the planned filing age as a single
// scenario.
func (ce *CalculationEngine) RunPlan(plan *domain.Plan) (*domain.PlanComparison, error) {
	if plan == nil {
		return nil, fmt.Errorf("plan is required")
	}
	if plan.Participant.BirthDate.IsZero() {
		return nil, fmt.Errorf("participant birth date is required")
	}

	// Ages are assessed at the end of the current year, so a birthday later
	// in the year still counts for the first projection row.
	asOf := dateutil.EndOfYear(nowFunc())
	assumptions := plan.LongevityAssumptions(asOf)
	longevity := ce.Longevity.Calculate(assumptions)

	scenarios := plan.Scenarios
	if len(scenarios) == 0 {
		scenarios = []domain.PlanScenario{{Name: "Planned filing", FilingAge: plan.SocialSecurity.FilingAge}}
	}

	summaries := make([]domain.PlanSummary, len(scenarios))
	for i, scenario := range scenarios {
		summary, err := ce.RunScenario(plan, scenario, assumptions, longevity)
		if err != nil {
			return nil, fmt.Errorf("scenario %q failed: %w", scenario.Name, err)
		}
		summaries[i] = *summary
	}

	return &domain.PlanComparison{
		Scenarios:     summaries,
		SurvivalCurve: ce.Longevity.SurvivalCurve(assumptions, longevity.AdjustedLifeExpectancy),
		Crossover:     filingCrossover(summaries),
		Assumptions:   plan.GenerateAssumptions(),
	}, nil
}

// filingCrossover locates the cumulative crossover between the earliest and
// latest filing scenarios. Returns nil when there is nothing to compare or
// the projections never cross.
func filingCrossover(summaries []domain.PlanSummary) *domain.FilingCrossover {
	if len(summaries) < 2 {
		return nil
	}
	early, late := summaries[0], summaries[0]
	for _, s := range summaries[1:] {
		if s.FilingAge < early.FilingAge {
			early = s
		}
		if s.FilingAge > late.FilingAge {
			late = s
		}
	}
	if early.FilingAge == late.FilingAge {
		return nil
	}
	result, err := CalculateCumulativeBreakeven(early.Projection, late.Projection)
	if err != nil || result == nil {
		return nil
	}
	return &domain.FilingCrossover{
		EarlyScenario:    early.Name,
		LateScenario:     late.Name,
		YearIndex:        result.YearIndex,
		CrossoverAge:     result.CrossoverAge,
		CumulativeAmount: result.CumulativeAmount,
	}
}

// RunScenario projects a single filing-age scenario and summarizes it.
func (ce *CalculationEngine) RunScenario(plan *domain.Plan, scenario domain.PlanScenario, assumptions domain.LongevityAssumptions, longevity domain.LongevityResult) (*domain.PlanSummary, error) {
	if scenario.Name == "" {
		return nil, fmt.Errorf("scenario name is required")
	}

	benefit := ce.Benefits.Calculate(plan.BenefitParameters(scenario.FilingAge))

	horizonRows := 0
	if assumptions.PlanningAge > assumptions.CurrentAge {
		horizonRows = assumptions.PlanningAge - assumptions.CurrentAge + 1
	}

	projection := ce.Projector.ProjectIncome(
		assumptions.CurrentAge,
		assumptions.PlanningAge,
		benefit,
		plan.Spending,
		plan.Income.PensionAnnual,
		plan.Income.WithdrawalSchedule(horizonRows),
		plan.Income.OtherIncomeSchedule(horizonRows),
	)

	summary := &domain.PlanSummary{
		Name:       scenario.Name,
		FilingAge:  scenario.FilingAge,
		Benefit:    benefit,
		Longevity:  longevity,
		Projection: projection,
	}

	if len(projection) > 0 {
		summary.FirstYearNetCashFlow = projection[0].NetCashFlow
	}
	if len(projection) > 4 {
		summary.Year5NetCashFlow = projection[4].NetCashFlow
	}
	if len(projection) > 9 {
		summary.Year10NetCashFlow = projection[9].NetCashFlow
	}

	one := decimal.NewFromInt(1)
	for i, row := range projection {
		summary.CumulativeNetCashFlow = summary.CumulativeNetCashFlow.Add(row.NetCashFlow)
		if row.IsShortfallYear() {
			summary.ShortfallYears++
		}
		discountFactor := one.Add(ce.DiscountRate).Pow(decimal.NewFromInt(int64(i)))
		summary.LifetimeNetPV = summary.LifetimeNetPV.Add(row.NetCashFlow.Div(discountFactor))
	}

	if ce.Debug {
		ce.logScenarioBreakdown(summary)
	}

	return summary, nil
}

func (ce *CalculationEngine) logScenarioBreakdown(summary *domain.PlanSummary) {
	ce.Logger.Debugf("SCENARIO %s (filing at %d):", summary.Name, summary.FilingAge)
	ce.Logger.Debugf("  Monthly benefit:     $%s", summary.Benefit.MonthlyBenefit.StringFixed(2))
	ce.Logger.Debugf("  Annual benefit:      $%s", summary.Benefit.AnnualBenefit.StringFixed(2))
	ce.Logger.Debugf("  First-year net:      $%s", summary.FirstYearNetCashFlow.StringFixed(2))
	ce.Logger.Debugf("  Cumulative net:      $%s", summary.CumulativeNetCashFlow.StringFixed(2))
	ce.Logger.Debugf("  Shortfall years:     %d of %d", summary.ShortfallYears, len(summary.Projection))
}
