package calculation

import (
	"math"

	"github.com/retirekit/income-engine/internal/domain"
)

// Reference population life expectancy by sex. New sexes or health tiers are
// added by extending the maps, not by subclassing anything.
var baseLifeExpectancies = map[domain.Sex]int{
	domain.SexMale:   84,
	domain.SexFemale: 87,
}

// Years added to or subtracted from the base for self-reported health.
var healthAdjustments = map[domain.HealthStatus]int{
	domain.HealthExcellent: 4,
	domain.HealthGood:      2,
	domain.HealthAverage:   0,
	domain.HealthPoor:      -4,
}

// BaseLifeExpectancy returns the reference life expectancy for a sex.
// Unknown values map to zero; the config layer rejects them before they
// reach the calculator.
func BaseLifeExpectancy(sex domain.Sex) int {
	return baseLifeExpectancies[sex]
}

// HealthAdjustment returns the life-expectancy shift for a health tier.
func HealthAdjustment(status domain.HealthStatus) int {
	return healthAdjustments[status]
}

// LongevityCalculator estimates a health- and sex-adjusted life expectancy
// and exposes a survival-probability curve for any queried age.
type LongevityCalculator struct {
	Logger Logger
}

// NewLongevityCalculator creates a new longevity calculator.
func NewLongevityCalculator() *LongevityCalculator {
	return &LongevityCalculator{Logger: NopLogger{}}
}

// Calculate computes the adjusted life expectancy for the assumptions.
// A negative planning buffer means the planning horizon is shorter than
// statistical life expectancy; that is a valid state, not an error.
func (lc *LongevityCalculator) Calculate(assumptions domain.LongevityAssumptions) domain.LongevityResult {
	adjusted := BaseLifeExpectancy(assumptions.Sex) + HealthAdjustment(assumptions.HealthStatus)

	yearsRemaining := adjusted - assumptions.CurrentAge
	if yearsRemaining < 0 {
		yearsRemaining = 0
	}

	return domain.LongevityResult{
		AdjustedLifeExpectancy: adjusted,
		YearsRemaining:         yearsRemaining,
		PlanningBuffer:         assumptions.PlanningAge - adjusted,
	}
}

// SurvivalProbability returns the probability of being alive at the given
// age under a single-parameter exponential decay model. The rate is set so
// the probability is exactly 0.5 at the adjusted life expectancy. This is
// intentionally not a full actuarial mortality table.
func SurvivalProbability(age int, assumptions domain.LongevityAssumptions, adjustedLifeExpectancy int) float64 {
	yearsFromNow := age - assumptions.CurrentAge
	if yearsFromNow < 0 {
		return 1 // already-passed ages are certain
	}

	totalYears := adjustedLifeExpectancy - assumptions.CurrentAge
	if totalYears <= 0 {
		// Decay rate would be undefined; life expectancy is already reached.
		if yearsFromNow <= 0 {
			return 1
		}
		return 0
	}

	// Hard floor beyond twice the expected remaining lifespan avoids
	// numerical underflow in the tail.
	if yearsFromNow > 2*totalYears {
		return 0
	}

	lambda := math.Ln2 / float64(totalYears)
	probability := math.Exp(-lambda * float64(yearsFromNow))
	if probability > 1 {
		probability = 1
	}
	if probability < 0 {
		probability = 0
	}
	return probability
}

// SurvivalCurve samples the survival probability for every whole age from
// the current age through the planning age.
func (lc *LongevityCalculator) SurvivalCurve(assumptions domain.LongevityAssumptions, adjustedLifeExpectancy int) []domain.SurvivalPoint {
	if assumptions.PlanningAge < assumptions.CurrentAge {
		return nil
	}
	curve := make([]domain.SurvivalPoint, 0, assumptions.PlanningAge-assumptions.CurrentAge+1)
	for age := assumptions.CurrentAge; age <= assumptions.PlanningAge; age++ {
		curve = append(curve, domain.SurvivalPoint{
			Age:         age,
			Probability: SurvivalProbability(age, assumptions, adjustedLifeExpectancy),
		})
	}
	return curve
}
