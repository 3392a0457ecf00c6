package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/jonathan/skill-intel/internal/db"
	"github.com/jonathan/skill-intel/internal/intel"
	"github.com/jonathan/skill-intel/internal/observability"
	"github.com/jonathan/skill-intel/internal/server/ratelimit"
	"github.com/jonathan/skill-intel/internal/trends"
	"github.com/jonathan/skill-intel/internal/types"
)

// maxUploadBytes bounds multipart uploads
const maxUploadBytes = 10 << 20

// Store is the persistence the API needs. *db.DB implements it.
type Store interface {
	Ping(ctx context.Context) error
	ListSkills(ctx context.Context, filters db.SkillFilters) ([]db.Skill, error)
	ListAllSkills(ctx context.Context, domain string) ([]db.Skill, error)
	GetSkillByName(ctx context.Context, name string) (*db.Skill, error)
	GetProfile(ctx context.Context, owner string) (*db.Profile, error)
	UpsertProfile(ctx context.Context, input db.ProfileInput) (*db.Profile, error)
	ReplaceSkillGaps(ctx context.Context, profileID uuid.UUID, gaps []db.SkillGapInput) error
	ListSkillGaps(ctx context.Context, profileID uuid.UUID) ([]db.SkillGap, error)
	CreateRoadmap(ctx context.Context, input db.RoadmapInput) (*db.Roadmap, error)
	ListRoadmaps(ctx context.Context, owner string) ([]db.Roadmap, error)
	GetRoadmap(ctx context.Context, owner string, id uuid.UUID) (*db.Roadmap, error)
	CreateCurriculum(ctx context.Context, input db.CurriculumInput) (*db.Curriculum, error)
	ListCurricula(ctx context.Context, owner string) ([]db.Curriculum, error)
	GetCurriculum(ctx context.Context, owner string, id uuid.UUID) (*db.Curriculum, error)
	UpdateCurriculumAnalysis(ctx context.Context, owner string, id uuid.UUID, rec *types.CurriculumRecommendation) (*db.Curriculum, error)
}

var _ Store = (*db.DB)(nil)

// Config holds server configuration
type Config struct {
	Addr           string
	Owner          string   // records are scoped to this owner; empty means db.DefaultOwner
	AllowedOrigins []string // CORS origins; empty means the local frontend ports
	RateLimit      *ratelimit.Config
}

// Server represents the HTTP server
type Server struct {
	cfg         Config
	store       Store
	intel       *intel.Service
	analyzer    *trends.Analyzer
	logger      *zap.Logger
	metrics     *observability.Metrics
	rateLimiter *ratelimit.Limiter
	router      chi.Router
	httpServer  *http.Server
}

// Option configures optional server collaborators.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records HTTP durations and exposes the registry at /metrics.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithTrendAnalyzer enables live trend lookups for skill forecasts.
// Without it forecasts are derived from stored demand scores.
func WithTrendAnalyzer(a *trends.Analyzer) Option {
	return func(s *Server) { s.analyzer = a }
}

// New creates a new server instance
func New(cfg Config, store Store, svc *intel.Service, opts ...Option) *Server {
	if cfg.Owner == "" {
		cfg.Owner = db.DefaultOwner
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"}
	}
	if svc == nil {
		svc = intel.NewService(nil)
	}

	s := &Server{
		cfg:    cfg,
		store:  store,
		intel:  svc,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.rateLimiter = ratelimit.NewLimiter(cfg.RateLimit)
	s.router = s.routes()

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second, // model calls can retry with backoff
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// Handler returns the root handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.withLogging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(s.withRateLimit)

	r.Get("/health", s.handleHealth)
	if reg := s.metrics.Registry(); reg != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/skills", func(r chi.Router) {
			r.Post("/upload-resume", s.handleUploadResume)
			r.Post("/analyze-gaps", s.handleAnalyzeGaps)
			r.Get("/trending", s.handleTrendingSkills)
			r.Get("/forecast/{name}", s.handleSkillForecast)
			r.Post("/classify", s.handleClassifyTrend)
			r.Post("/forecast", s.handleForecastDemand)
		})
		r.Route("/roadmaps", func(r chi.Router) {
			r.Post("/generate", s.handleGenerateRoadmap)
			r.Get("/", s.handleListRoadmaps)
			r.Get("/{id}", s.handleGetRoadmap)
		})
		r.Route("/curriculum", func(r chi.Router) {
			r.Post("/upload", s.handleUploadCurriculum)
			r.Get("/", s.handleListCurricula)
			r.Get("/{id}", s.handleGetCurriculum)
			r.Post("/{id}/analyze", s.handleAnalyzeCurriculum)
		})
		r.Route("/analytics", func(r chi.Router) {
			r.Get("/skill-heatmap", s.handleSkillHeatmap)
			r.Get("/trend-growth", s.handleTrendGrowth)
			r.Get("/employability-readiness", s.handleEmployabilityReadiness)
			r.Get("/institution-readiness", s.handleInstitutionReadiness)
		})
	})
	return r
}

// Start listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		s.rateLimiter.Stop()
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := s.httpServer.Shutdown(shutdownCtx)
	s.rateLimiter.Stop()
	if err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info("server stopped")
	return nil
}

// Close releases background resources without serving.
func (s *Server) Close() {
	s.rateLimiter.Stop()
}

// withLogging logs each request and records its duration by route pattern
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		elapsed := time.Since(start)
		s.metrics.ObserveHTTP(r.Method, route, status, elapsed)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Duration("elapsed", elapsed),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// withRateLimit rejects clients over their endpoint budget
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(extractClientID(r), r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractClientID uses the IP of RemoteAddr.
func extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
	}
	if !info.ResetTime.IsZero() {
		response["reset_at"] = info.ResetTime.Format(time.RFC3339)
	}
	if info.RetryAfter > 0 {
		secs := int(info.RetryAfter.Seconds()) + 1
		response["retry_after"] = secs
		w.Header().Set("Retry-After", fmt.Sprintf("%d", secs))
	}

	s.logger.Warn("rate limit exceeded",
		zap.Int("limit", info.Limit),
		zap.Duration("retry_after", info.RetryAfter),
	)
	s.jsonResponse(w, http.StatusTooManyRequests, response)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// fail maps err to its status. Internal errors are logged and not echoed.
func (s *Server) fail(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
		s.errorResponse(w, status, "internal error")
		return
	}
	s.errorResponse(w, status, err.Error())
}

// decodeJSON decodes the body into v, which must validate.
func decodeJSON[T interface{ Validate() error }](r *http.Request, v T) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return &ErrValidation{Message: "invalid request body: " + err.Error()}
	}
	if err := v.Validate(); err != nil {
		return validationFromValidator(err)
	}
	return nil
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &ErrValidation{Field: "id", Message: "invalid id"}
	}
	return id, nil
}
