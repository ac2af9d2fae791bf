package domain

// Sex selects the reference life-expectancy table.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// HealthStatus is a self-reported health tier that shifts life expectancy.
type HealthStatus string

const (
	HealthExcellent HealthStatus = "excellent"
	HealthGood      HealthStatus = "good"
	HealthAverage   HealthStatus = "average"
	HealthPoor      HealthStatus = "poor"
)

// LongevityAssumptions are the inputs to the longevity model.
type LongevityAssumptions struct {
	CurrentAge   int          `yaml:"current_age" json:"current_age"`
	Sex          Sex          `yaml:"sex" json:"sex"`
	HealthStatus HealthStatus `yaml:"health_status" json:"health_status"`
	PlanningAge  int          `yaml:"planning_age" json:"planning_age"`
}

// LongevityResult is the adjusted life-expectancy estimate.
// PlanningBuffer may be negative: the planning horizon is then shorter than
// statistical life expectancy, which is a valid state rather than an error.
type LongevityResult struct {
	AdjustedLifeExpectancy int `yaml:"adjusted_life_expectancy" json:"adjusted_life_expectancy"`
	YearsRemaining         int `yaml:"years_remaining" json:"years_remaining"` // floored at 0
	PlanningBuffer         int `yaml:"planning_buffer" json:"planning_buffer"`
}

// SurvivalPoint is one sample of the survival-probability curve.
type SurvivalPoint struct {
	Age         int     `yaml:"age" json:"age"`
	Probability float64 `yaml:"probability" json:"probability"`
}
