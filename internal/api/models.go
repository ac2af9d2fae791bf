package api

import (
	"github.com/shopspring/decimal"

	"github.com/retirekit/income-engine/internal/domain"
)

// ErrorResponse is the JSON body returned on any non-2xx status.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// SurvivalCurveResponse pairs the curve with the life expectancy that shaped
// it, so callers need not repeat the longevity call.
type SurvivalCurveResponse struct {
	Longevity domain.LongevityResult `json:"longevity"`
	Curve     []domain.SurvivalPoint `json:"curve"`
}

// SpendingRequest asks for projected spending at a given age and offset from
// the projection start.
type SpendingRequest struct {
	Pattern      domain.SpendingPattern `json:"pattern"`
	Age          int                    `json:"age"`
	YearsElapsed int                    `json:"years_elapsed"`
}

// SpendingResponse carries the projected amount plus the phase multiplier
// that applied.
type SpendingResponse struct {
	Age             int             `json:"age"`
	YearsElapsed    int             `json:"years_elapsed"`
	PhaseMultiplier decimal.Decimal `json:"phase_multiplier"`
	Amount          decimal.Decimal `json:"amount"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
}
