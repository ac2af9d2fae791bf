package api

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"

	"github.com/retirekit/income-engine/internal/calculation"
	"github.com/retirekit/income-engine/internal/domain"
)

func (s *Server) handleHealth(ctx *fasthttp.RequestCtx) {
	s.writeJSON(ctx, fasthttp.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) handleBenefit(ctx *fasthttp.RequestCtx) {
	var params domain.BenefitParameters
	if !s.decode(ctx, &params) {
		return
	}
	if err := validateBenefitParameters(params); err != nil {
		s.writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}
	s.writeJSON(ctx, fasthttp.StatusOK, s.benefits.Calculate(params))
}

func (s *Server) handleLongevity(ctx *fasthttp.RequestCtx) {
	var assumptions domain.LongevityAssumptions
	if !s.decode(ctx, &assumptions) {
		return
	}
	if err := validateAssumptions(assumptions); err != nil {
		s.writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}
	s.writeJSON(ctx, fasthttp.StatusOK, s.longevity.Calculate(assumptions))
}

func (s *Server) handleSurvivalCurve(ctx *fasthttp.RequestCtx) {
	var assumptions domain.LongevityAssumptions
	if !s.decode(ctx, &assumptions) {
		return
	}
	if err := validateAssumptions(assumptions); err != nil {
		s.writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}
	result := s.longevity.Calculate(assumptions)
	curve := s.longevity.SurvivalCurve(assumptions, result.AdjustedLifeExpectancy)
	if curve == nil {
		curve = []domain.SurvivalPoint{}
	}
	s.writeJSON(ctx, fasthttp.StatusOK, SurvivalCurveResponse{Longevity: result, Curve: curve})
}

func (s *Server) handleSpending(ctx *fasthttp.RequestCtx) {
	var req SpendingRequest
	if !s.decode(ctx, &req) {
		return
	}
	if err := validateSpendingRequest(req); err != nil {
		s.writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}
	s.writeJSON(ctx, fasthttp.StatusOK, SpendingResponse{
		Age:             req.Age,
		YearsElapsed:    req.YearsElapsed,
		PhaseMultiplier: calculation.PhaseMultiplier(req.Age, req.Pattern),
		Amount:          s.spending.ProjectedSpending(req.Age, req.Pattern, req.YearsElapsed),
	})
}

func (s *Server) handleProjection(ctx *fasthttp.RequestCtx) {
	var plan domain.Plan
	if !s.decode(ctx, &plan) {
		return
	}
	if err := s.parser.ValidatePlan(&plan); err != nil {
		s.writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}
	comparison, err := s.engine.RunPlan(&plan)
	if err != nil {
		s.writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error())
		return
	}
	s.writeJSON(ctx, fasthttp.StatusOK, comparison)
}

// decode unmarshals the request body, answering 400 on failure.
func (s *Server) decode(ctx *fasthttp.RequestCtx, v any) bool {
	if err := json.Unmarshal(ctx.PostBody(), v); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.logger.Errorf("encoding response: %v", err)
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(data)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	s.logger.Debugf("request %s failed: %s", ctx.Path(), message)
	s.writeJSON(ctx, status, ErrorResponse{Status: status, Message: message})
}

func validateBenefitParameters(p domain.BenefitParameters) error {
	if p.PIAMonthly.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("pia_monthly must be positive")
	}
	if p.BirthYear < 1900 {
		return fmt.Errorf("birth_year %d out of range", p.BirthYear)
	}
	if p.FilingAge < 62 || p.FilingAge > 70 {
		return fmt.Errorf("filing_age must be between 62 and 70")
	}
	if p.COLARate.IsNegative() {
		return fmt.Errorf("cola_rate cannot be negative")
	}
	return nil
}

func validateAssumptions(a domain.LongevityAssumptions) error {
	if a.Sex != domain.SexMale && a.Sex != domain.SexFemale {
		return fmt.Errorf("sex must be %q or %q", domain.SexMale, domain.SexFemale)
	}
	switch a.HealthStatus {
	case domain.HealthExcellent, domain.HealthGood, domain.HealthAverage, domain.HealthPoor:
	default:
		return fmt.Errorf("unknown health_status %q", a.HealthStatus)
	}
	if a.CurrentAge <= 0 {
		return fmt.Errorf("current_age must be positive")
	}
	if a.PlanningAge <= 0 {
		return fmt.Errorf("planning_age must be positive")
	}
	return nil
}

func validateSpendingRequest(req SpendingRequest) error {
	if req.Age < 0 {
		return fmt.Errorf("age cannot be negative")
	}
	if req.YearsElapsed < 0 {
		return fmt.Errorf("years_elapsed cannot be negative")
	}
	if req.Pattern.BaseAnnualSpending.IsNegative() {
		return fmt.Errorf("base_annual cannot be negative")
	}
	return nil
}
