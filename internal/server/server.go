// Package server exposes the kinship mutation API over HTTP. It is the
// interface boundary to the UI collaborator: the UI only ever sees the
// derived hierarchy, the flat relation list, and structured error results.
//
// Graphs live in named in-memory sessions. Each session is guarded by its
// own mutex so mutations are serialized - the core packages are free of
// locking, and this layer supplies the single-mutation-lock discipline a
// multi-threaded host requires. Nothing is ever persisted; idle sessions
// are swept after a configurable TTL.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/kinship-dev/kinship/pkg/config"
	"github.com/kinship-dev/kinship/pkg/session"
)

// Server is the HTTP API server.
type Server struct {
	cfg    config.Config
	logger *log.Logger
	reg    *registry
}

// New creates a server from configuration. The logger must not be nil.
func New(cfg config.Config, logger *log.Logger) *Server {
	ttl := time.Duration(cfg.Server.SessionTTLMinutes) * time.Minute
	return &Server{
		cfg:    cfg,
		logger: logger,
		reg: newRegistry(ttl, func() *session.Session {
			return session.New(session.Options{
				Logger:   logger,
				MaxDepth: cfg.Limits.MaxTraversalDepth,
			})
		}),
	}
}

// Handler builds the routing tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(s.logger))

	r.Get("/api/health", s.health)
	r.Post("/api/sessions", s.createSession)

	r.Route("/api/sessions/{sessionID}", func(r chi.Router) {
		r.Delete("/", s.deleteSession)
		r.Get("/tree", s.getTree)
		r.Get("/graph", s.getGraph)

		r.Post("/individuals", s.addIndividual)
		r.Put("/individuals/{name}", s.renameIndividual)
		r.Delete("/individuals/{name}", s.removeIndividual)

		r.Post("/relations", s.addRelation)
		r.Delete("/relations", s.removeRelation)

		r.Post("/import/csv", s.importFile(importCSV))
		r.Post("/import/gedcom", s.importFile(importGEDCOM))

		r.Get("/export/csv", s.exportCSV)
		r.Get("/export/gedcom", s.exportGEDCOM)
		r.Get("/export/json", s.exportJSON)
	})

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
