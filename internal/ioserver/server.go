// Package ioserver provides a read-only HTTP API over a taxonomy store.
package ioserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gnames/taxodb/pkg/config"
	"github.com/gnames/taxodb/pkg/taxonomy"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Server serves taxonomy queries over HTTP.
type Server struct {
	cfg *config.Config
	st  taxonomy.Store
}

// New creates a Server. The store is loaded lazily on the first request
// that needs it.
func New(cfg *config.Config, st taxonomy.Store) *Server {
	return &Server{cfg: cfg, st: st}
}

// Handler returns the router of the API.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(logRequest)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/ping", s.ping)
		r.Get("/taxa/{id}", s.taxonByID)
		r.Get("/lineage/{id}", s.lineage)
		r.Get("/children/{id}", s.children)
		r.Get("/tree/{id}", s.tree)
		r.Get("/search", s.search)
	})
	return r
}

// Run listens on the configured port until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Server.Port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP API is listening", "port", s.cfg.Server.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return ServerError(s.cfg.Server.Port, err)
	case <-ctx.Done():
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(shutCtx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return ServerError(s.cfg.Server.Port, err)
	}
	slog.Info("HTTP API stopped")
	return nil
}

func logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).String(),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}
