package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/hiring-coordinator/internal/collab"
	"github.com/jonathan/hiring-coordinator/internal/config"
	"github.com/jonathan/hiring-coordinator/internal/observability"
	"github.com/jonathan/hiring-coordinator/internal/questions"
	"github.com/jonathan/hiring-coordinator/internal/report"
	"github.com/jonathan/hiring-coordinator/internal/scheduler"
	"github.com/jonathan/hiring-coordinator/internal/server/middleware"
	"github.com/jonathan/hiring-coordinator/internal/server/ratelimit"
	"github.com/jonathan/hiring-coordinator/internal/stage"
	"github.com/jonathan/hiring-coordinator/internal/store"
	"github.com/jonathan/hiring-coordinator/internal/workflow"
)

// Server is the HTTP front of the coordinator.
type Server struct {
	httpServer  *http.Server
	pipelines   store.PipelineStore
	pg          *store.PostgresStore
	graph       *stage.Graph
	catalog     stage.MetricsCatalog
	engine      *workflow.Engine
	scheduler   *scheduler.Scheduler
	hub         *collab.Hub
	reports     *report.Generator
	questions   questions.Generator
	watcher     *workflow.SLAWatcher
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
}

// Config holds server configuration.
type Config struct {
	Port            int
	DatabaseURL     string
	GeminiAPIKey    string
	GeminiModel     string
	SLAScanInterval time.Duration
	// Verbose makes the SLA watcher render each scan result to stdout in
	// addition to logging breaches.
	Verbose bool
}

// New creates a server. With a DatabaseURL the pipeline store is PostgreSQL,
// otherwise in-memory. With a Gemini key questions come from the model,
// otherwise from the static banks. Authentication is enabled when JWT_SECRET
// is set.
func New(cfg Config) (*Server, error) {
	s := &Server{
		graph:   stage.Default(),
		catalog: stage.DefaultCatalog(),
	}

	if cfg.DatabaseURL != "" {
		pg, err := store.ConnectPostgres(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := pg.EnsureSchema(context.Background()); err != nil {
			pg.Close()
			return nil, fmt.Errorf("failed to ensure schema: %w", err)
		}
		s.pg = pg
		s.pipelines = pg
	} else {
		s.pipelines = store.NewMemoryStore()
	}

	s.engine = workflow.NewEngine(s.pipelines, s.graph)
	s.scheduler = scheduler.New(s.pipelines)
	s.hub = collab.NewHub(store.NewMemoryThreadStore())
	s.reports = report.NewGenerator(s.pipelines, s.graph, s.catalog)

	interval := cfg.SLAScanInterval
	if interval <= 0 {
		interval = time.Hour
	}
	s.watcher = workflow.NewSLAWatcher(s.pipelines, s.graph, interval, nil)
	if cfg.Verbose {
		s.watcher.AttachPrinter(observability.NewPrinter(os.Stdout))
	}

	if cfg.GeminiAPIKey != "" {
		gen, err := questions.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("failed to create question generator: %w", err)
		}
		s.questions = gen
	} else {
		s.questions = questions.NewStaticGenerator()
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	// Auth is optional: without a JWT_SECRET the API is open, which is the
	// expected mode for local development and tests.
	if os.Getenv("JWT_SECRET") != "" {
		jwtConfig, err := config.NewJWTConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to create JWT config: %w", err)
		}
		s.jwtService = NewJWTService(jwtConfig)
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request router. Mutating endpoints require a bearer
// token when authentication is configured; health stays open.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("POST /workflow/actions", s.authed(http.HandlerFunc(s.handleWorkflowAction)))
	mux.Handle("POST /collaboration/actions", s.authed(http.HandlerFunc(s.handleCollaborationAction)))
	mux.Handle("POST /interviews", s.authed(http.HandlerFunc(s.handleScheduleInterview)))
	mux.Handle("POST /candidates/{candidate_id}/interviews/{interview_id}/status", s.authed(http.HandlerFunc(s.handleUpdateInterviewStatus)))

	mux.HandleFunc("GET /candidates/{candidate_id}", s.handleGetCandidate)
	mux.HandleFunc("GET /candidates/{candidate_id}/interviews", s.handleListInterviews)
	mux.HandleFunc("GET /threads/{thread_id}", s.handleGetThread)
	mux.HandleFunc("GET /reports/{report_type}", s.handleGenerateReport)
	mux.HandleFunc("GET /insights", s.handleInsights)
	mux.HandleFunc("GET /stages", s.handleListStages)
	mux.HandleFunc("GET /metrics/catalog", s.handleMetricsCatalog)
	mux.HandleFunc("GET /sla/breaches", s.handleSLABreaches)
	mux.HandleFunc("GET /health", s.handleHealth)

	return mux
}

// authed wraps a handler with bearer auth when a JWT service is configured.
func (s *Server) authed(next http.Handler) http.Handler {
	if s.jwtService == nil {
		return next
	}
	return middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(next)
}

// Handler returns the fully wired request handler, middleware included.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the HTTP server and the SLA watcher until SIGINT/SIGTERM.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := s.watcher.Run(ctx); err != nil && err != context.Canceled {
			return fmt.Errorf("sla watcher: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Println("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	})

	err := g.Wait()

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.pg != nil {
		s.pg.Close()
	}
	log.Println("Server stopped")
	return err
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
