package api

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/retirekit/income-engine/internal/config"
	"github.com/retirekit/income-engine/internal/domain"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return NewServer(ServerConfig{Port: 8080})
}

// perform runs one request through the router without a listener.
func perform(t *testing.T, s *Server, method, path string, body any) *fasthttp.RequestCtx {
	t.Helper()
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		ctx.Request.SetBody(data)
	}
	s.Handler()(ctx)
	return ctx
}

func decodeBody[T any](t *testing.T, ctx *fasthttp.RequestCtx) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &v))
	return v
}

func TestHealthEndpoint(t *testing.T) {
	ctx := perform(t, newTestServer(t), fasthttp.MethodGet, "/healthz", nil)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	resp := decodeBody[HealthResponse](t, ctx)
	assert.Equal(t, "ok", resp.Status)
}

func TestBenefitEndpoint(t *testing.T) {
	req := domain.BenefitParameters{
		PIAMonthly: decimal.NewFromInt(3000),
		BirthYear:  1960,
		FilingAge:  62,
		COLARate:   decimal.NewFromFloat(0.025),
	}
	ctx := perform(t, newTestServer(t), fasthttp.MethodPost, "/v1/benefit", req)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	resp := decodeBody[domain.BenefitResult](t, ctx)
	assert.Equal(t, 67, resp.FullRetirementAge)
	assert.Equal(t, "33.35", resp.ReductionPercentage.StringFixed(2))
	assert.Equal(t, "1999.50", resp.MonthlyBenefit.StringFixed(2))
	assert.Equal(t, 79, resp.BreakevenAge)
}

func TestBenefitEndpointValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.BenefitParameters)
		message string
	}{
		{"zero PIA", func(p *domain.BenefitParameters) { p.PIAMonthly = decimal.Zero }, "pia_monthly"},
		{"filing too early", func(p *domain.BenefitParameters) { p.FilingAge = 61 }, "filing_age"},
		{"filing too late", func(p *domain.BenefitParameters) { p.FilingAge = 71 }, "filing_age"},
		{"negative COLA", func(p *domain.BenefitParameters) { p.COLARate = decimal.NewFromFloat(-0.01) }, "cola_rate"},
		{"ancient birth year", func(p *domain.BenefitParameters) { p.BirthYear = 1850 }, "birth_year"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := domain.BenefitParameters{
				PIAMonthly: decimal.NewFromInt(3000),
				BirthYear:  1960,
				FilingAge:  67,
				COLARate:   decimal.NewFromFloat(0.025),
			}
			tt.mutate(&req)
			ctx := perform(t, newTestServer(t), fasthttp.MethodPost, "/v1/benefit", req)
			require.Equal(t, fasthttp.StatusUnprocessableEntity, ctx.Response.StatusCode())
			resp := decodeBody[ErrorResponse](t, ctx)
			assert.Contains(t, resp.Message, tt.message)
		})
	}
}

func TestBenefitEndpointMalformedBody(t *testing.T) {
	s := newTestServer(t)
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodPost)
	ctx.Request.SetRequestURI("/v1/benefit")
	ctx.Request.SetBody([]byte("{not json"))
	s.Handler()(ctx)
	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
}

func TestMethodNotAllowed(t *testing.T) {
	ctx := perform(t, newTestServer(t), fasthttp.MethodGet, "/v1/benefit", nil)
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())
}

func TestUnknownPath(t *testing.T) {
	ctx := perform(t, newTestServer(t), fasthttp.MethodPost, "/v1/nope", map[string]string{})
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestLongevityEndpoint(t *testing.T) {
	req := domain.LongevityAssumptions{
		CurrentAge:   65,
		Sex:          domain.SexFemale,
		HealthStatus: domain.HealthExcellent,
		PlanningAge:  95,
	}
	ctx := perform(t, newTestServer(t), fasthttp.MethodPost, "/v1/longevity", req)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	resp := decodeBody[domain.LongevityResult](t, ctx)
	assert.Equal(t, 91, resp.AdjustedLifeExpectancy)
	assert.Equal(t, 26, resp.YearsRemaining)
	assert.Equal(t, 4, resp.PlanningBuffer)
}

func TestLongevityEndpointRejectsUnknownSex(t *testing.T) {
	req := domain.LongevityAssumptions{
		CurrentAge:   65,
		Sex:          "other",
		HealthStatus: domain.HealthGood,
		PlanningAge:  95,
	}
	ctx := perform(t, newTestServer(t), fasthttp.MethodPost, "/v1/longevity", req)
	assert.Equal(t, fasthttp.StatusUnprocessableEntity, ctx.Response.StatusCode())
}

func TestSurvivalCurveEndpoint(t *testing.T) {
	req := domain.LongevityAssumptions{
		CurrentAge:   65,
		Sex:          domain.SexMale,
		HealthStatus: domain.HealthAverage,
		PlanningAge:  90,
	}
	ctx := perform(t, newTestServer(t), fasthttp.MethodPost, "/v1/survival-curve", req)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	resp := decodeBody[SurvivalCurveResponse](t, ctx)
	assert.Equal(t, 84, resp.Longevity.AdjustedLifeExpectancy)
	require.Len(t, resp.Curve, 26) // ages 65 through 90 inclusive
	assert.Equal(t, 65, resp.Curve[0].Age)
	assert.InDelta(t, 1.0, resp.Curve[0].Probability, 1e-12)
	assert.Equal(t, 90, resp.Curve[25].Age)
	assert.Less(t, resp.Curve[25].Probability, 0.5)
}

func TestSpendingEndpoint(t *testing.T) {
	req := SpendingRequest{
		Pattern: domain.SpendingPattern{
			BaseAnnualSpending:   decimal.NewFromInt(60000),
			GoGoMultiplier:       decimal.NewFromInt(1),
			SlowGoMultiplier:     decimal.NewFromFloat(0.85),
			NoGoMultiplier:       decimal.NewFromFloat(0.7),
			HealthcareAnnual:     decimal.NewFromInt(10000),
			HealthcareGrowthRate: decimal.NewFromFloat(0.05),
		},
		Age:          80,
		YearsElapsed: 0,
	}
	ctx := perform(t, newTestServer(t), fasthttp.MethodPost, "/v1/spending", req)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	resp := decodeBody[SpendingResponse](t, ctx)
	assert.Equal(t, "0.85", resp.PhaseMultiplier.StringFixed(2))
	// 60000*0.85 + 10000
	assert.Equal(t, "61000.00", resp.Amount.StringFixed(2))
}

func TestProjectionEndpoint(t *testing.T) {
	plan := config.NewInputParser().CreateExamplePlan()
	ctx := perform(t, newTestServer(t), fasthttp.MethodPost, "/v1/projection", plan)
	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	resp := decodeBody[domain.PlanComparison](t, ctx)
	require.Len(t, resp.Scenarios, 3)
	for _, sc := range resp.Scenarios {
		assert.NotEmpty(t, sc.Name)
		assert.NotEmpty(t, sc.Projection)
	}
	assert.NotEmpty(t, resp.SurvivalCurve)
}

func TestProjectionEndpointRejectsInvalidPlan(t *testing.T) {
	plan := config.NewInputParser().CreateExamplePlan()
	plan.SocialSecurity.FilingAge = 75
	ctx := perform(t, newTestServer(t), fasthttp.MethodPost, "/v1/projection", plan)
	require.Equal(t, fasthttp.StatusUnprocessableEntity, ctx.Response.StatusCode())
	resp := decodeBody[ErrorResponse](t, ctx)
	assert.Contains(t, resp.Message, "filing age")
}
