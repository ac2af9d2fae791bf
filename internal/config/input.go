package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/retirekit/income-engine/internal/domain"
)

// InputParser handles parsing of plan input files. The calculators accept any
// numeric input by design, so the domain checks the engine relies on (filing
// age range, nonnegative amounts, known enum values) live here, at the
// boundary where a plan enters the system.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse parses and validates a plan from YAML bytes.
func (ip *InputParser) Parse(data []byte) (*domain.Plan, error) {
	var plan domain.Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidatePlan(&plan); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &plan, nil
}

// ValidatePlan validates a loaded plan.
func (ip *InputParser) ValidatePlan(plan *domain.Plan) error {
	if err := ip.validateParticipant(&plan.Participant); err != nil {
		return fmt.Errorf("participant validation failed: %w", err)
	}
	if err := ip.validateSocialSecurity(&plan.SocialSecurity); err != nil {
		return fmt.Errorf("social security validation failed: %w", err)
	}
	if err := ip.validateSpending(&plan.Spending); err != nil {
		return fmt.Errorf("spending validation failed: %w", err)
	}
	if err := ip.validateIncome(&plan.Income); err != nil {
		return fmt.Errorf("income validation failed: %w", err)
	}

	for i, scenario := range plan.Scenarios {
		if scenario.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if scenario.FilingAge < 62 || scenario.FilingAge > 70 {
			return fmt.Errorf("scenario %d (%s): filing age must be between 62 and 70", i, scenario.Name)
		}
	}

	return nil
}

func (ip *InputParser) validateParticipant(p *domain.Participant) error {
	if p.BirthDate.IsZero() {
		return fmt.Errorf("birth date is required")
	}
	switch p.Sex {
	case domain.SexMale, domain.SexFemale:
	default:
		return fmt.Errorf("sex must be 'male' or 'female', got %q", p.Sex)
	}
	switch p.HealthStatus {
	case domain.HealthExcellent, domain.HealthGood, domain.HealthAverage, domain.HealthPoor:
	default:
		return fmt.Errorf("health status must be 'excellent', 'good', 'average', or 'poor', got %q", p.HealthStatus)
	}
	if p.PlanningAge <= 0 {
		return fmt.Errorf("planning age must be positive")
	}
	return nil
}

func (ip *InputParser) validateSocialSecurity(ss *domain.SocialSecurityInput) error {
	if ss.PIAMonthly.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("primary insurance amount must be positive")
	}
	if ss.FilingAge < 62 || ss.FilingAge > 70 {
		return fmt.Errorf("filing age must be between 62 and 70")
	}
	if ss.COLARate.LessThan(decimal.Zero) {
		return fmt.Errorf("COLA rate cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateSpending(sp *domain.SpendingPattern) error {
	if sp.BaseAnnualSpending.LessThan(decimal.Zero) {
		return fmt.Errorf("base annual spending cannot be negative")
	}
	for name, mult := range map[string]decimal.Decimal{
		"go-go multiplier":   sp.GoGoMultiplier,
		"slow-go multiplier": sp.SlowGoMultiplier,
		"no-go multiplier":   sp.NoGoMultiplier,
	} {
		if mult.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%s must be positive", name)
		}
	}
	if sp.HealthcareAnnual.LessThan(decimal.Zero) {
		return fmt.Errorf("healthcare annual cost cannot be negative")
	}
	if sp.HealthcareGrowthRate.LessThan(decimal.Zero) {
		return fmt.Errorf("healthcare growth rate cannot be negative")
	}
	for i, expense := range sp.MajorExpenses {
		if expense.Year < 1 {
			return fmt.Errorf("major expense %d (%s): year must be 1 or later", i, expense.Description)
		}
		if expense.Amount.LessThan(decimal.Zero) {
			return fmt.Errorf("major expense %d (%s): amount cannot be negative", i, expense.Description)
		}
	}
	return nil
}

func (ip *InputParser) validateIncome(inc *domain.IncomeSources) error {
	if inc.PensionAnnual.LessThan(decimal.Zero) {
		return fmt.Errorf("pension cannot be negative")
	}
	if inc.OtherAnnual.LessThan(decimal.Zero) {
		return fmt.Errorf("other income cannot be negative")
	}
	if inc.PortfolioWithdrawalAnnual.LessThan(decimal.Zero) {
		return fmt.Errorf("portfolio withdrawal cannot be negative")
	}
	for i, w := range inc.PortfolioWithdrawalsByYear {
		if w.LessThan(decimal.Zero) {
			return fmt.Errorf("portfolio withdrawal for year %d cannot be negative", i+1)
		}
	}
	return nil
}

// CreateExamplePlan creates a starter plan document.
func (ip *InputParser) CreateExamplePlan() *domain.Plan {
	birthDate, _ := time.Parse("2006-01-02", "1960-03-15")

	return &domain.Plan{
		Participant: domain.Participant{
			Name:         "Margaret",
			BirthDate:    birthDate,
			Sex:          domain.SexFemale,
			HealthStatus: domain.HealthGood,
			PlanningAge:  95,
		},
		SocialSecurity: domain.SocialSecurityInput{
			PIAMonthly: decimal.NewFromInt(3000),
			FilingAge:  67,
			COLARate:   decimal.NewFromFloat(0.025),
		},
		Spending: domain.SpendingPattern{
			BaseAnnualSpending:   decimal.NewFromInt(60000),
			GoGoMultiplier:       decimal.NewFromFloat(1.1),
			SlowGoMultiplier:     decimal.NewFromFloat(0.9),
			NoGoMultiplier:       decimal.NewFromFloat(0.75),
			HealthcareAnnual:     decimal.NewFromInt(8000),
			HealthcareGrowthRate: decimal.NewFromFloat(0.05),
			MajorExpenses: []domain.MajorExpense{
				{Year: 3, Amount: decimal.NewFromInt(35000), Description: "Kitchen remodel"},
				{Year: 10, Amount: decimal.NewFromInt(30000), Description: "New car"},
			},
		},
		Income: domain.IncomeSources{
			PensionAnnual:             decimal.NewFromInt(12000),
			OtherAnnual:               decimal.Zero,
			PortfolioWithdrawalAnnual: decimal.NewFromInt(40000),
		},
		Scenarios: []domain.PlanScenario{
			{Name: "File early at 62", FilingAge: 62},
			{Name: "File at FRA", FilingAge: 67},
			{Name: "Delay to 70", FilingAge: 70},
		},
	}
}

// WriteExamplePlan writes the starter plan as YAML to the given path.
func (ip *InputParser) WriteExamplePlan(filename string) error {
	data, err := yaml.Marshal(ip.CreateExamplePlan())
	if err != nil {
		return fmt.Errorf("failed to marshal example plan: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write example plan: %w", err)
	}
	return nil
}
