package output

import (
	"bytes"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/retirekit/income-engine/internal/domain"
)

// ConsoleFormatter renders a human-readable plan comparison: a per-scenario
// benefit summary, the annual projection table, and a recommendation.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results *domain.PlanComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "RETIREMENT INCOME PROJECTION")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintln(&buf)

	scenarios := append([]domain.PlanSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].FilingAge < scenarios[j].FilingAge })

	for _, sc := range scenarios {
		fmt.Fprintf(&buf, "Scenario: %s (file at %d)\n", sc.Name, sc.FilingAge)
		fmt.Fprintf(&buf, "  Full retirement age: %d\n", sc.Benefit.FullRetirementAge)
		switch {
		case sc.Benefit.FiledEarly():
			fmt.Fprintf(&buf, "  Early filing reduction: %s\n", FormatPercentage(sc.Benefit.ReductionPercentage))
		case sc.Benefit.FiledLate():
			fmt.Fprintf(&buf, "  Delayed filing credit: %s\n", FormatPercentage(sc.Benefit.IncreasePercentage))
		}
		fmt.Fprintf(&buf, "  Monthly benefit: %s  Annual: %s\n",
			FormatCurrency(sc.Benefit.MonthlyBenefit), FormatCurrency(sc.Benefit.AnnualBenefit))
		fmt.Fprintf(&buf, "  Breakeven age: %d\n", sc.Benefit.BreakevenAge)
		fmt.Fprintf(&buf, "  FirstYear=%s Year5=%s Year10=%s\n",
			FormatCurrency(sc.FirstYearNetCashFlow),
			FormatCurrency(sc.Year5NetCashFlow),
			FormatCurrency(sc.Year10NetCashFlow))
		fmt.Fprintf(&buf, "  Cumulative=%s LifetimePV=%s ShortfallYears=%d\n",
			FormatCurrency(sc.CumulativeNetCashFlow),
			FormatCurrency(sc.LifetimeNetPV),
			sc.ShortfallYears)
		fmt.Fprintln(&buf)

		writeProjectionTable(&buf, sc.Projection)
		fmt.Fprintln(&buf)
	}

	if len(results.SurvivalCurve) > 0 {
		first := results.SurvivalCurve[0]
		last := results.SurvivalCurve[len(results.SurvivalCurve)-1]
		fmt.Fprintf(&buf, "Survival: %s at age %d, %s at age %d\n",
			FormatProbability(first.Probability), first.Age,
			FormatProbability(last.Probability), last.Age)
		fmt.Fprintln(&buf)
	}

	if cx := results.Crossover; cx != nil {
		fmt.Fprintf(&buf, "Crossover: %q overtakes %q at age %.1f (cumulative %s)\n",
			cx.LateScenario, cx.EarlyScenario, cx.CrossoverAge, FormatCurrency(cx.CumulativeAmount))
		fmt.Fprintln(&buf)
	}

	rec := AnalyzePlan(results)
	if rec.ScenarioName != "" {
		fmt.Fprintf(&buf, "Recommended: %s (lifetime PV %s)\n", rec.ScenarioName, FormatCurrency(rec.LifetimeNetPV))
	}

	for _, a := range results.Assumptions {
		fmt.Fprintf(&buf, "* %s\n", a)
	}

	return buf.Bytes(), nil
}

func writeProjectionTable(buf *bytes.Buffer, projection []domain.ProjectionRow) {
	if len(projection) == 0 {
		fmt.Fprintln(buf, "  (no projection years)")
		return
	}
	w := tabwriter.NewWriter(buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "  Year\tAge\tSocSec\tPension\tWithdrawal\tOther\tIncome\tExpenses\tNet")
	for _, row := range projection {
		fmt.Fprintf(w, "  %d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Year, row.Age,
			row.SocialSecurity.StringFixed(2),
			row.Pension.StringFixed(2),
			row.PortfolioWithdrawal.StringFixed(2),
			row.OtherIncome.StringFixed(2),
			row.TotalIncome.StringFixed(2),
			row.TotalExpenses.StringFixed(2),
			row.NetCashFlow.StringFixed(2))
	}
	w.Flush()
}
