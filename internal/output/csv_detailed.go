package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/retirekit/income-engine/internal/domain"
)

// CSVDetailedExporter provides raw annual projection detail per scenario/year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.PlanComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "Age", "SocialSecurity", "Pension", "PortfolioWithdrawal", "OtherIncome", "TotalIncome", "TotalExpenses", "NetCashFlow", "Shortfall"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.PlanSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		for _, yr := range sc.Projection {
			row := []string{
				sc.Name,
				intToString(yr.Year),
				intToString(yr.Age),
				yr.SocialSecurity.StringFixed(2),
				yr.Pension.StringFixed(2),
				yr.PortfolioWithdrawal.StringFixed(2),
				yr.OtherIncome.StringFixed(2),
				yr.TotalIncome.StringFixed(2),
				yr.TotalExpenses.StringFixed(2),
				yr.NetCashFlow.StringFixed(2),
				boolToString(yr.IsShortfallYear()),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), nil
}
