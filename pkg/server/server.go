// Package server provides the preview HTTP server behind "clemen serve".
//
// # Routes
//
//	GET  /healthz                  liveness probe
//	GET  /scenes                   builtin scenes (name, description)
//	GET  /scenes/{name}            a builtin scene definition as JSON
//	GET  /scenes/{name}/{format}   a rendered builtin scene
//	POST /render/{format}          a rendered scene sent in the body
//	GET  /stats                    event counters, when [WithStats] is set
//
// Render routes accept the query parameters depth, viz, labels, baseline,
// scale and refresh. POST /render also takes syntax=toml|hcl (default toml).
//
// Every response carries X-Request-ID and Server headers. Errors are JSON objects
// with the error code, a message, and the request ID.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/clemen/pkg/observability"
	"github.com/matzehuels/clemen/pkg/pipeline"
)

// maxBodyBytes bounds the size of scenes posted to /render.
const maxBodyBytes = 1 << 20

// shutdownTimeout is how long in-flight requests get after the context ends.
const shutdownTimeout = 5 * time.Second

// Server routes preview requests to a pipeline runner.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
	stats  *observability.Counters
}

// Option configures a Server.
type Option func(*Server)

// WithStats serves c at GET /stats. The caller registers c with
// observability.Attach.
func WithStats(c *observability.Counters) Option {
	return func(s *Server) { s.stats = c }
}

// New creates a Server rendering through runner. A nil runner renders
// without a cache and a nil logger logs nowhere.
func New(runner *pipeline.Runner, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	s := &Server{runner: runner, logger: logger}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(serverHeader)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/scenes", func(r chi.Router) {
		r.Get("/", s.handleListScenes)
		r.Get("/{name}", s.handleGetScene)
		r.Get("/{name}/{format}", s.handleRenderBuiltin)
	})
	r.Post("/render/{format}", s.handleRenderPosted)
	if s.stats != nil {
		r.Get("/stats", s.handleStats)
	}
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, errNotFound(r))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{
			Error:     "METHOD_NOT_ALLOWED",
			Message:   r.Method + " is not allowed on " + r.URL.Path,
			RequestID: RequestID(r.Context()),
		})
	})

	s.router = r
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves h on addr until ctx is done, then shuts down
// gracefully.
func ListenAndServe(ctx context.Context, addr string, h http.Handler, logger *log.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("preview server starting", "address", addr)
		// ListenAndServe returns ErrServerClosed on graceful shutdown.
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("shutting down preview server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
