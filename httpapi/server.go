// Package httpapi is a thin HTTP façade over the simulation core and its
// repository collaborator, owning the wire protocol so neither models/ nor
// simulation/ has to. Neither of those packages imports this one.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/maulepilot117/atbatsim/models"
	"github.com/maulepilot117/atbatsim/repository"
	"github.com/maulepilot117/atbatsim/simulation"
)

// Server wraps a repository and a simulation engine behind an HTTP router,
// mirroring sim-engine/main.go's Server struct narrowed to a single
// synchronous plate-appearance endpoint instead of a multi-run job queue.
type Server struct {
	router     *mux.Router
	httpServer *http.Server
	repo       repository.Repository
	baselines  *models.LeagueBaselines
	config     simulation.Config
	limiter    *ipRateLimiter
}

// Options configures Server construction.
type Options struct {
	Repo               repository.Repository
	Config             simulation.Config
	RateLimitPerSecond float64
	RateLimitBurst     int
	AllowedOrigins     []string
}

// NewServer builds a Server with its route table and middleware stack
// wired, but does not start listening.
func NewServer(opts Options) *Server {
	if opts.RateLimitPerSecond <= 0 {
		opts.RateLimitPerSecond = 20
	}
	if opts.RateLimitBurst <= 0 {
		opts.RateLimitBurst = 10
	}

	s := &Server{
		router:    mux.NewRouter(),
		repo:      opts.Repo,
		baselines: models.NewLeagueBaselines(),
		config:    opts.Config,
		limiter:   newIPRateLimiter(opts.RateLimitPerSecond, opts.RateLimitBurst),
	}

	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/simulate", s.handleSimulate).Methods(http.MethodPost)

	s.router.Use(s.rateLimitMiddleware)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})

	var handler http.Handler = s.router
	handler = corsHandler.Handler(handler)
	handler = handlers.CombinedLoggingHandler(logWriter{}, handler)
	handler = handlers.RecoveryHandler()(handler)

	s.httpServer = &http.Server{
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// ListenAndServe starts the HTTP server on addr, blocking until it returns
// an error (including http.ErrServerClosed on a clean Shutdown).
func (s *Server) ListenAndServe(addr string) error {
	s.httpServer.Addr = addr
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, matching sim-engine/main.go's
// Shutdown(ctx) contract.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
