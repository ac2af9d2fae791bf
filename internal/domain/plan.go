package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/retirekit/income-engine/pkg/dateutil"
)

// Participant is the person the plan is projected for.
type Participant struct {
	Name         string       `yaml:"name" json:"name"`
	BirthDate    time.Time    `yaml:"birth_date" json:"birth_date"`
	Sex          Sex          `yaml:"sex" json:"sex"`
	HealthStatus HealthStatus `yaml:"health_status" json:"health_status"`
	PlanningAge  int          `yaml:"planning_age" json:"planning_age"`
}

// Age returns the participant's age at the given date.
func (p *Participant) Age(at time.Time) int {
	return dateutil.Age(p.BirthDate, at)
}

// SocialSecurityInput is the filing choice carried by the plan file. The
// birth year feeding the FRA rule is derived from the participant's birth
// date, never stored redundantly.
type SocialSecurityInput struct {
	PIAMonthly decimal.Decimal `yaml:"pia_monthly" json:"pia_monthly"`
	FilingAge  int             `yaml:"filing_age" json:"filing_age"`
	COLARate   decimal.Decimal `yaml:"cola_rate" json:"cola_rate"`
}

// IncomeSources holds the non-Social-Security income figures. Portfolio
// withdrawals come from an external recommendation service: either a flat
// annual figure or an explicit per-year schedule, which wins when present.
type IncomeSources struct {
	PensionAnnual              decimal.Decimal   `yaml:"pension_annual" json:"pension_annual"`
	OtherAnnual                decimal.Decimal   `yaml:"other_annual" json:"other_annual"`
	PortfolioWithdrawalAnnual  decimal.Decimal   `yaml:"portfolio_withdrawal_annual" json:"portfolio_withdrawal_annual"`
	PortfolioWithdrawalsByYear []decimal.Decimal `yaml:"portfolio_withdrawals_by_year,omitempty" json:"portfolio_withdrawals_by_year,omitempty"`
}

// WithdrawalSchedule expands the withdrawal figures to one entry per
// projection year. An explicit schedule shorter than the horizon contributes
// zero beyond its end.
func (is *IncomeSources) WithdrawalSchedule(horizonYears int) []decimal.Decimal {
	schedule := make([]decimal.Decimal, horizonYears)
	for i := range schedule {
		if is.PortfolioWithdrawalsByYear != nil {
			if i < len(is.PortfolioWithdrawalsByYear) {
				schedule[i] = is.PortfolioWithdrawalsByYear[i]
			} else {
				schedule[i] = decimal.Zero
			}
			continue
		}
		schedule[i] = is.PortfolioWithdrawalAnnual
	}
	return schedule
}

// OtherIncomeSchedule expands the flat other-income figure per year.
func (is *IncomeSources) OtherIncomeSchedule(horizonYears int) []decimal.Decimal {
	schedule := make([]decimal.Decimal, horizonYears)
	for i := range schedule {
		schedule[i] = is.OtherAnnual
	}
	return schedule
}

// PlanScenario is a named filing-age variant to project.
type PlanScenario struct {
	Name      string `yaml:"name" json:"name"`
	FilingAge int    `yaml:"filing_age" json:"filing_age"`
}

// Plan is the full input document for a projection run.
type Plan struct {
	Participant    Participant         `yaml:"participant" json:"participant"`
	SocialSecurity SocialSecurityInput `yaml:"social_security" json:"social_security"`
	Spending       SpendingPattern     `yaml:"spending" json:"spending"`
	Income         IncomeSources       `yaml:"income" json:"income"`
	Scenarios      []PlanScenario      `yaml:"scenarios" json:"scenarios"`
}

// BenefitParameters assembles calculator inputs for a filing age, deriving
// the birth year from the participant's birth date.
func (p *Plan) BenefitParameters(filingAge int) BenefitParameters {
	return BenefitParameters{
		PIAMonthly: p.SocialSecurity.PIAMonthly,
		BirthYear:  p.Participant.BirthDate.Year(),
		FilingAge:  filingAge,
		COLARate:   p.SocialSecurity.COLARate,
	}
}

// LongevityAssumptions derives the longevity inputs as of the given date.
func (p *Plan) LongevityAssumptions(at time.Time) LongevityAssumptions {
	return LongevityAssumptions{
		CurrentAge:   p.Participant.Age(at),
		Sex:          p.Participant.Sex,
		HealthStatus: p.Participant.HealthStatus,
		PlanningAge:  p.Participant.PlanningAge,
	}
}

// GenerateAssumptions produces the human-readable assumption lines shown in
// reports.
func (p *Plan) GenerateAssumptions() []string {
	hundred := decimal.NewFromInt(100)
	return []string{
		fmt.Sprintf("Social Security COLA: %s%% per year after filing", p.SocialSecurity.COLARate.Mul(hundred).StringFixed(2)),
		fmt.Sprintf("Healthcare cost growth: %s%% per year", p.Spending.HealthcareGrowthRate.Mul(hundred).StringFixed(2)),
		fmt.Sprintf("Planning horizon: age %d", p.Participant.PlanningAge),
		"Portfolio withdrawals supplied externally; no dynamic withdrawal policy",
		"Survival curve: single-parameter exponential, 50% at adjusted life expectancy",
	}
}
