package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectionRow represents the complete cash flow for a single projected year.
type ProjectionRow struct {
	Year int `yaml:"year" json:"year"` // sequence index from 1
	Age  int `yaml:"age" json:"age"`

	// Income sources
	SocialSecurity      decimal.Decimal `yaml:"social_security" json:"social_security"`
	Pension             decimal.Decimal `yaml:"pension" json:"pension"`
	PortfolioWithdrawal decimal.Decimal `yaml:"portfolio_withdrawal" json:"portfolio_withdrawal"`
	OtherIncome         decimal.Decimal `yaml:"other_income" json:"other_income"`
	TotalIncome         decimal.Decimal `yaml:"total_income" json:"total_income"`

	TotalExpenses decimal.Decimal `yaml:"total_expenses" json:"total_expenses"`
	NetCashFlow   decimal.Decimal `yaml:"net_cash_flow" json:"net_cash_flow"`
}

// CalculateTotalIncome sums the four income components. TotalIncome is always
// set from this, never independently, so it cannot drift from its parts.
func (pr *ProjectionRow) CalculateTotalIncome() decimal.Decimal {
	return pr.SocialSecurity.Add(pr.Pension).
		Add(pr.PortfolioWithdrawal).Add(pr.OtherIncome)
}

// CalculateNetCashFlow recomputes income minus expenses from components.
func (pr *ProjectionRow) CalculateNetCashFlow() decimal.Decimal {
	return pr.CalculateTotalIncome().Sub(pr.TotalExpenses)
}

// IsShortfallYear reports whether expenses exceed income for the year.
func (pr *ProjectionRow) IsShortfallYear() bool {
	return pr.NetCashFlow.LessThan(decimal.Zero)
}

// PlanSummary provides key metrics for a single filing scenario.
type PlanSummary struct {
	Name                  string          `json:"name"`
	FilingAge             int             `json:"filing_age"`
	Benefit               BenefitResult   `json:"benefit"`
	Longevity             LongevityResult `json:"longevity"`
	FirstYearNetCashFlow  decimal.Decimal `json:"first_year_net_cash_flow"`
	Year5NetCashFlow      decimal.Decimal `json:"year_5_net_cash_flow"`
	Year10NetCashFlow     decimal.Decimal `json:"year_10_net_cash_flow"`
	CumulativeNetCashFlow decimal.Decimal `json:"cumulative_net_cash_flow"`
	LifetimeNetPV         decimal.Decimal `json:"lifetime_net_pv"` // discounted at the engine's rate
	ShortfallYears        int             `json:"shortfall_years"`
	Projection            []ProjectionRow `json:"projection"`
}

// FilingCrossover records where the cumulative net cash flow of the latest
// filing scenario overtakes the earliest one. Absent when the plan has fewer
// than two distinct filing ages or the curves never cross inside the horizon.
type FilingCrossover struct {
	EarlyScenario    string          `json:"early_scenario"`
	LateScenario     string          `json:"late_scenario"`
	YearIndex        int             `json:"year_index"`
	CrossoverAge     float64         `json:"crossover_age"`
	CumulativeAmount decimal.Decimal `json:"cumulative_amount"`
}

// PlanComparison holds all scenario summaries for a plan plus the survival
// curve shared by every scenario.
type PlanComparison struct {
	Scenarios     []PlanSummary    `json:"scenarios"`
	SurvivalCurve []SurvivalPoint  `json:"survival_curve"`
	Crossover     *FilingCrossover `json:"crossover,omitempty"`
	Assumptions   []string         `json:"assumptions"`
}
