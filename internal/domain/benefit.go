package domain

import (
	"github.com/shopspring/decimal"
)

// BenefitParameters describes a Social Security filing choice for one person.
// PIAMonthly is the monthly benefit payable at full retirement age.
type BenefitParameters struct {
	PIAMonthly decimal.Decimal `yaml:"pia_monthly" json:"pia_monthly"`
	BirthYear  int             `yaml:"birth_year" json:"birth_year"`
	FilingAge  int             `yaml:"filing_age" json:"filing_age"` // 62-70; range enforced by the config layer
	COLARate   decimal.Decimal `yaml:"cola_rate" json:"cola_rate"`   // annual fraction, e.g. 0.025
}

// BenefitResult is the computed benefit under the chosen filing age.
// Exactly one of ReductionPercentage/IncreasePercentage is nonzero, or both
// are zero when filing exactly at FRA. FilingAge and COLARate are echoed so a
// result can drive a projection without carrying the parameters alongside it.
type BenefitResult struct {
	MonthlyBenefit      decimal.Decimal `yaml:"monthly_benefit" json:"monthly_benefit"`
	AnnualBenefit       decimal.Decimal `yaml:"annual_benefit" json:"annual_benefit"`
	FullRetirementAge   int             `yaml:"full_retirement_age" json:"full_retirement_age"`
	ReductionPercentage decimal.Decimal `yaml:"reduction_percentage" json:"reduction_percentage"`
	IncreasePercentage  decimal.Decimal `yaml:"increase_percentage" json:"increase_percentage"`
	BreakevenAge        int             `yaml:"breakeven_age" json:"breakeven_age"`
	FilingAge           int             `yaml:"filing_age" json:"filing_age"`
	COLARate            decimal.Decimal `yaml:"cola_rate" json:"cola_rate"`
}

// FiledEarly reports whether the result reflects a pre-FRA filing.
func (br *BenefitResult) FiledEarly() bool {
	return br.ReductionPercentage.GreaterThan(decimal.Zero)
}

// FiledLate reports whether the result reflects a post-FRA filing.
func (br *BenefitResult) FiledLate() bool {
	return br.IncreasePercentage.GreaterThan(decimal.Zero)
}
