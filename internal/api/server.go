package api

import (
	"log"

	"github.com/valyala/fasthttp"

	"github.com/retirekit/income-engine/internal/calculation"
	"github.com/retirekit/income-engine/internal/config"
)

// Server exposes the calculators over HTTP. All endpoints are POST with JSON
// bodies; the server is stateless, so handlers are safe for concurrent use.
type Server struct {
	cfg       ServerConfig
	engine    *calculation.CalculationEngine
	benefits  *calculation.BenefitCalculator
	longevity *calculation.LongevityCalculator
	spending  *calculation.SpendingCalculator
	parser    *config.InputParser
	logger    calculation.Logger
}

// NewServer wires a server with fresh calculators.
func NewServer(cfg ServerConfig) *Server {
	engine := calculation.NewCalculationEngine()
	engine.Debug = cfg.Debug
	return &Server{
		cfg:       cfg,
		engine:    engine,
		benefits:  calculation.NewBenefitCalculator(),
		longevity: calculation.NewLongevityCalculator(),
		spending:  calculation.NewSpendingCalculator(),
		parser:    config.NewInputParser(),
		logger:    calculation.NopLogger{},
	}
}

// SetLogger replaces the server's logger; nil restores the no-op logger.
func (s *Server) SetLogger(l calculation.Logger) {
	if l == nil {
		l = calculation.NopLogger{}
	}
	s.logger = l
	s.engine.SetLogger(l)
}

// Handler routes requests by path. fasthttp reuses ctx buffers, so handlers
// must not retain references past return.
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		path := string(ctx.Path())

		if path == "/healthz" {
			s.handleHealth(ctx)
			return
		}

		if !ctx.IsPost() {
			s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "only POST is supported")
			return
		}

		switch path {
		case "/v1/benefit":
			s.handleBenefit(ctx)
		case "/v1/longevity":
			s.handleLongevity(ctx)
		case "/v1/survival-curve":
			s.handleSurvivalCurve(ctx)
		case "/v1/spending":
			s.handleSpending(ctx)
		case "/v1/projection":
			s.handleProjection(ctx)
		default:
			s.writeError(ctx, fasthttp.StatusNotFound, "unknown path "+path)
		}
	}
}

// ListenAndServe blocks serving HTTP until the listener fails.
func (s *Server) ListenAndServe() error {
	srv := &fasthttp.Server{
		Handler:      s.Handler(),
		Name:         "income-engine",
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}
	log.Printf("income engine listening on %s", s.cfg.Addr())
	return srv.ListenAndServe(s.cfg.Addr())
}
