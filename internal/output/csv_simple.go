package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/retirekit/income-engine/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "FilingAge", "MonthlyBenefit", "AnnualBenefit", "BreakevenAge", "FirstYearNetCashFlow", "Year5NetCashFlow", "Year10NetCashFlow", "CumulativeNetCashFlow", "LifetimeNetPV", "ShortfallYears"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.PlanSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		row := []string{
			sc.Name,
			intToString(sc.FilingAge),
			sc.Benefit.MonthlyBenefit.StringFixed(2),
			sc.Benefit.AnnualBenefit.StringFixed(2),
			intToString(sc.Benefit.BreakevenAge),
			sc.FirstYearNetCashFlow.StringFixed(2),
			sc.Year5NetCashFlow.StringFixed(2),
			sc.Year10NetCashFlow.StringFixed(2),
			sc.CumulativeNetCashFlow.StringFixed(2),
			sc.LifetimeNetPV.StringFixed(2),
			intToString(sc.ShortfallYears),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), nil
}
