package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/veritaslabs/veritas/internal/buildinfo"
	"github.com/veritaslabs/veritas/internal/model"
)

// Verifier defines the interface the transport needs from the core. The
// core never returns an error for a well-formed request: failure detail is
// embedded per claim.
type Verifier interface {
	Verify(ctx context.Context, text string) *model.VerificationResult
}

// Server is the thin HTTP wrapper around the verification pipeline.
type Server struct {
	router   *chi.Mux
	verifier Verifier
	logger   *zap.Logger
	cfg      model.ServerConfig

	startTime    time.Time
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// NewServer creates a new server
func NewServer(verifier Verifier, cfg model.ServerConfig, logger *zap.Logger) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		verifier:  verifier,
		logger:    logger,
		cfg:       cfg,
		startTime: time.Now(),
	}

	// Global middleware (order matters)
	s.router.Use(RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(Logging(logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		MaxAge:         300,
	}))
	if cfg.RateLimitRPS > 0 {
		s.router.Use(RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}

	s.router.Get("/health", s.handleHealth)
	s.router.Get("/metrics", s.handleMetrics)
	s.router.Route("/v1", func(r chi.Router) {
		r.Post("/verify", s.handleVerify)
	})

	return s
}

// Router returns the HTTP handler for the server
func (s *Server) Router() http.Handler {
	return s.router
}

type verifyRequest struct {
	Text string `json:"text"`
}

// handleVerify accepts {"text": ...} and returns the verification result.
// Only malformed input is a transport-level error; everything else comes
// back as a well-formed response with per-claim failure detail.
func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	s.requestCount.Add(1)

	maxBytes := s.cfg.MaxBodyBytes
	if maxBytes <= 0 {
		maxBytes = 1 << 20
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorCount.Add(1)
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondError(w, http.StatusBadRequest, "request body too large")
			return
		}
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Empty or whitespace-only text is a valid input; the orchestrator
	// short-circuits it to the zero-score result.
	result := s.verifier.Verify(r.Context(), req.Text)
	respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	uptime := time.Since(s.startTime)

	respondJSON(w, http.StatusOK, map[string]any{
		"uptime_seconds": uptime.Seconds(),
		"uptime_human":   uptime.Round(time.Second).String(),
		"request_count":  s.requestCount.Load(),
		"error_count":    s.errorCount.Load(),
		"goroutines":     runtime.NumGoroutine(),
		"memory": map[string]any{
			"alloc_mb": float64(memStats.Alloc) / 1024 / 1024,
			"sys_mb":   float64(memStats.Sys) / 1024 / 1024,
			"num_gc":   memStats.NumGC,
		},
		"go_version": runtime.Version(),
	})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
