// Package server provides the HTTP REST API for the course recommender.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/course-recommender/internal/catalog"
	"github.com/jonathan/course-recommender/internal/logging"
	"github.com/jonathan/course-recommender/internal/ranking"
	"github.com/jonathan/course-recommender/internal/recorder"
	"github.com/jonathan/course-recommender/internal/server/ratelimit"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 30 * time.Second

// Closer releases a backing resource on shutdown, typically the database pool.
type Closer interface {
	Close()
}

// Server represents the HTTP server
type Server struct {
	httpServer   *http.Server
	holder       *catalog.Holder
	recorder     *recorder.Recorder
	closer       Closer
	rateLimiter  *ratelimit.Limiter
	defaultLimit int
}

// Config holds server configuration
type Config struct {
	Port int
	// Holder supplies the catalog snapshot. It must have been loaded.
	Holder *catalog.Holder
	// Recorder persists served recommendations. May be nil.
	Recorder *recorder.Recorder
	// Closer is closed after the server and recorder have drained. May be nil.
	Closer       Closer
	DefaultLimit int
	// RateLimit overrides the environment-derived rate limit configuration.
	RateLimit *ratelimit.Config
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Holder == nil {
		return nil, errors.New("catalog holder is required")
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = ranking.DefaultLimit
	}
	rlConfig := cfg.RateLimit
	if rlConfig == nil {
		rlConfig = ratelimit.LoadConfig()
	}

	s := &Server{
		holder:       cfg.Holder,
		recorder:     cfg.Recorder,
		closer:       cfg.Closer,
		rateLimiter:  ratelimit.NewLimiter(rlConfig),
		defaultLimit: cfg.DefaultLimit,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the routed handler wrapped in the middleware chain.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/recommendations", s.handleRecommendations)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/courses/count", s.handleCourseCount)
	mux.HandleFunc("POST /api/admin/reload", s.handleReload)
	mux.Handle("GET /metrics", promhttp.Handler())

	// CORS is outermost so preflights skip the limiter and 429s stay readable by browsers.
	return s.withCORS(s.withRateLimit(s.withLogging(mux)))
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.release(context.Background())
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logging.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.release(shutdownCtx)

	logging.Info().Msg("server stopped")
	return nil
}

// release stops background work and closes backing resources.
func (s *Server) release(ctx context.Context) {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if err := s.recorder.Wait(ctx); err != nil {
		logging.Warn().Err(err).Msg("pending recommendation writes abandoned")
	}
	if s.closer != nil {
		s.closer.Close()
	}
}
