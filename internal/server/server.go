// Package server exposes the observability endpoints for long benchmark
// runs: Prometheus metrics on /metrics and a liveness probe on /healthz,
// both behind the standard hardening headers.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server is the HTTP endpoint carrier. It owns its metrics instance so the
// benchmark layer can record observations while the server is running.
type Server struct {
	Metrics *Metrics

	httpServer *http.Server
	log        zerolog.Logger
}

// New builds a server listening on addr with the default security
// configuration.
func New(addr string, log zerolog.Logger) *Server {
	s := &Server{
		Metrics: NewMetrics(),
		log:     log,
	}

	security := DefaultSecurityConfig()
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", SecurityMiddleware(security, s.Metrics.WritePrometheus))
	mux.HandleFunc("/healthz", SecurityMiddleware(security, handleHealth))

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

// Start serves until the context is canceled, then shuts down gracefully.
// A listener failure other than graceful shutdown is returned.
func (s *Server) Start(ctx context.Context) error {
	errChan := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.httpServer.Addr).Msg("metrics server listening")
		errChan <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errChan
		return nil
	case err := <-errChan:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}
