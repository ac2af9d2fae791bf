package domain

import (
	"github.com/shopspring/decimal"
)

// MajorExpense is a one-time expense landing in full on a single projection
// year. Year matches ProjectionRow.Year (1-based). Duplicate years are
// allowed; order is insertion order and only matters for display.
type MajorExpense struct {
	Year        int             `yaml:"year" json:"year"`
	Amount      decimal.Decimal `yaml:"amount" json:"amount"`
	Description string          `yaml:"description" json:"description"`
}

// SpendingPattern describes phased retirement spending: a base amount scaled
// by an age-band multiplier, healthcare with its own growth rate, and sparse
// one-time expenses. Exotic inputs (e.g. a no-go multiplier above the go-go
// multiplier) are legitimate caller policy and are not rejected.
type SpendingPattern struct {
	BaseAnnualSpending   decimal.Decimal `yaml:"base_annual" json:"base_annual"`
	GoGoMultiplier       decimal.Decimal `yaml:"go_go_multiplier" json:"go_go_multiplier"`
	SlowGoMultiplier     decimal.Decimal `yaml:"slow_go_multiplier" json:"slow_go_multiplier"`
	NoGoMultiplier       decimal.Decimal `yaml:"no_go_multiplier" json:"no_go_multiplier"`
	HealthcareAnnual     decimal.Decimal `yaml:"healthcare_annual" json:"healthcare_annual"`
	HealthcareGrowthRate decimal.Decimal `yaml:"healthcare_growth_rate" json:"healthcare_growth_rate"`
	MajorExpenses        []MajorExpense  `yaml:"major_expenses,omitempty" json:"major_expenses,omitempty"`
}
