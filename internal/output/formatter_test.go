package output

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retirekit/income-engine/internal/domain"
)

func buildTestComparison() *domain.PlanComparison {
	row := func(year, age int, net int64) domain.ProjectionRow {
		r := domain.ProjectionRow{
			Year:                year,
			Age:                 age,
			SocialSecurity:      decimal.NewFromInt(30000),
			Pension:             decimal.NewFromInt(12000),
			PortfolioWithdrawal: decimal.NewFromInt(20000),
			OtherIncome:         decimal.Zero,
			TotalExpenses:       decimal.NewFromInt(62000 - net),
		}
		r.TotalIncome = r.CalculateTotalIncome()
		r.NetCashFlow = r.CalculateNetCashFlow()
		return r
	}
	return &domain.PlanComparison{
		Scenarios: []domain.PlanSummary{
			{
				Name:      "File at 70",
				FilingAge: 70,
				Benefit: domain.BenefitResult{
					MonthlyBenefit:     decimal.NewFromInt(3720),
					AnnualBenefit:      decimal.NewFromInt(44640),
					FullRetirementAge:  67,
					IncreasePercentage: decimal.NewFromInt(24),
					BreakevenAge:       79,
					FilingAge:          70,
				},
				FirstYearNetCashFlow:  decimal.NewFromInt(-2000),
				Year5NetCashFlow:      decimal.NewFromInt(5000),
				Year10NetCashFlow:     decimal.NewFromInt(6000),
				CumulativeNetCashFlow: decimal.NewFromInt(130000),
				LifetimeNetPV:         decimal.NewFromInt(98000),
				ShortfallYears:        3,
				Projection:            []domain.ProjectionRow{row(1, 65, -2000), row(2, 66, 5000)},
			},
			{
				Name:      "File at 62",
				FilingAge: 62,
				Benefit: domain.BenefitResult{
					MonthlyBenefit:      decimal.NewFromFloat(1999.50),
					AnnualBenefit:       decimal.NewFromInt(23994),
					FullRetirementAge:   67,
					ReductionPercentage: decimal.NewFromFloat(33.35),
					BreakevenAge:        79,
					FilingAge:           62,
				},
				FirstYearNetCashFlow:  decimal.NewFromInt(4000),
				Year5NetCashFlow:      decimal.NewFromInt(4500),
				Year10NetCashFlow:     decimal.NewFromInt(4800),
				CumulativeNetCashFlow: decimal.NewFromInt(110000),
				LifetimeNetPV:         decimal.NewFromInt(91000),
				ShortfallYears:        0,
				Projection:            []domain.ProjectionRow{row(1, 62, 4000)},
			},
		},
		SurvivalCurve: []domain.SurvivalPoint{
			{Age: 65, Probability: 1.0},
			{Age: 95, Probability: 0.21},
		},
		Crossover: &domain.FilingCrossover{
			EarlyScenario:    "File at 62",
			LateScenario:     "File at 70",
			YearIndex:        11,
			CrossoverAge:     75.4,
			CumulativeAmount: decimal.NewFromInt(88000),
		},
		Assumptions: []string{"Benefit amounts grow with the configured COLA."},
	}
}

func TestConsoleFormatter(t *testing.T) {
	out, err := ConsoleFormatter{}.Format(buildTestComparison())
	require.NoError(t, err)
	content := string(out)

	assert.Contains(t, content, "RETIREMENT INCOME PROJECTION")
	// Scenarios print in filing-age order.
	assert.Less(t, strings.Index(content, "File at 62"), strings.Index(content, "File at 70"))
	assert.Contains(t, content, "Early filing reduction: 33.35%")
	assert.Contains(t, content, "Delayed filing credit: 24.00%")
	assert.Contains(t, content, "Breakeven age: 79")
	assert.Contains(t, content, `Crossover: "File at 70" overtakes "File at 62" at age 75.4`)
	assert.Contains(t, content, "Recommended: File at 70")
	assert.Contains(t, content, "Survival: 1.0000 at age 65, 0.2100 at age 95")
	assert.Contains(t, content, "* Benefit amounts grow with the configured COLA.")
}

func TestConsoleFormatterEmptyProjection(t *testing.T) {
	comparison := buildTestComparison()
	comparison.Scenarios[0].Projection = nil
	out, err := ConsoleFormatter{}.Format(comparison)
	require.NoError(t, err)
	assert.Contains(t, string(out), "(no projection years)")
}

func TestJSONFormatterRoundTrip(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestComparison())
	require.NoError(t, err)

	var decoded domain.PlanComparison
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded.Scenarios, 2)
	assert.Equal(t, "File at 70", decoded.Scenarios[0].Name)
	assert.True(t, decoded.Scenarios[0].Benefit.MonthlyBenefit.Equal(decimal.NewFromInt(3720)))
	assert.Len(t, decoded.SurvivalCurve, 2)
}

func TestCSVSummarizerDeterministicOrder(t *testing.T) {
	out, err := CSVSummarizer{}.Format(buildTestComparison())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 3, "header plus one row per scenario")
	assert.True(t, strings.HasPrefix(lines[0], "Scenario,FilingAge,MonthlyBenefit"))
	// Sorted by name regardless of input order.
	assert.True(t, strings.HasPrefix(lines[1], "File at 62,62,1999.50"))
	assert.True(t, strings.HasPrefix(lines[2], "File at 70,70,3720.00"))
}

func TestCSVDetailedExporterRowPerYear(t *testing.T) {
	out, err := CSVDetailedExporter{}.Format(buildTestComparison())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	require.Len(t, lines, 4, "header plus three projection years")
	assert.Contains(t, lines[2], "File at 70,1,65")
	assert.True(t, strings.HasSuffix(lines[2], ",true"), "shortfall year flagged: %s", lines[2])
	assert.True(t, strings.HasSuffix(lines[3], ",false"))
}

func TestAnalyzePlan(t *testing.T) {
	rec := AnalyzePlan(buildTestComparison())
	assert.Equal(t, "File at 70", rec.ScenarioName)
	assert.Equal(t, 70, rec.FilingAge)
	assert.True(t, rec.PVChange.Equal(decimal.NewFromInt(7000)))
	assert.True(t, rec.LifetimeNetPV.Equal(decimal.NewFromInt(98000)))
}

func TestAnalyzePlanEmpty(t *testing.T) {
	rec := AnalyzePlan(&domain.PlanComparison{})
	assert.Empty(t, rec.ScenarioName)
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"console", "console"},
		{"", "console"},
		{"text", "console"},
		{"JSON", "json"},
		{"csv", "csv"},
		{"csv-summary", "csv"},
		{"csv-detailed", "detailed-csv"},
		{"detailed-csv", "detailed-csv"},
	}
	for _, tt := range tests {
		f := GetFormatterByName(tt.name)
		require.NotNil(t, f, "formatter for %q", tt.name)
		assert.Equal(t, tt.want, f.Name())
	}
	assert.Nil(t, GetFormatterByName("xml"))
}
