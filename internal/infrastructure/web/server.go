package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"URLAnalyzer/internal/config"
	"URLAnalyzer/internal/infrastructure/input"
	"URLAnalyzer/internal/ports"
)

const (
	// Frontend labels reports produced by the HTML form.
	Frontend = "web"
	// APIFrontend labels reports produced by the JSON endpoint.
	APIFrontend = "api"

	serviceName = "url-analyzer"
)

// ServerDeps wires the HTTP front-end.
type ServerDeps struct {
	Analyzer  ports.BatchAnalyzer
	Collector *input.Collector
	// Metrics serves /metrics when set.
	Metrics http.Handler
	Config  config.ServerConfig
	Logger  zerolog.Logger
}

// Server routes the form page, the JSON API and the operational endpoints.
type Server struct {
	analyzer  ports.BatchAnalyzer
	collector *input.Collector
	maxUpload int64
	logger    zerolog.Logger
	limiter   *RateLimiter
	router    chi.Router
}

// NewServer builds the router and its middleware stack.
func NewServer(deps ServerDeps) *Server {
	s := &Server{
		analyzer:  deps.Analyzer,
		collector: deps.Collector,
		maxUpload: deps.Config.MaxUploadBytes,
		logger:    deps.Logger,
	}
	if s.maxUpload <= 0 {
		s.maxUpload = config.Default().Server.MaxUploadBytes
	}

	limiter := NewRateLimiter(deps.Config.RateLimit.RequestsPerSecond, deps.Config.RateLimit.Burst)
	s.limiter = limiter

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if deps.Config.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(withLogger(deps.Logger))
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.With(limiter.Middleware).Post("/", s.handleAnalyzeForm)
	r.With(limiter.Middleware).Post("/api/classify", s.handleClassifyAPI)
	r.Get("/health", s.handleHealth)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics)
	}

	s.router = r
	return s
}

// PruneIdleClients drops rate limiter state for clients idle longer than idle.
func (s *Server) PruneIdleClients(now time.Time, idle time.Duration) {
	if removed := s.limiter.Prune(now.Add(-idle)); removed > 0 {
		s.logger.Debug().Int("removed", removed).Int("tracked", s.limiter.Len()).Msg("Pruned idle rate limiter clients")
	}
}

// RateLimited reports whether POST routes are rate limited.
func (s *Server) RateLimited() bool {
	return s.limiter != nil
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}
