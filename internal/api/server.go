package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/Borislavv/go-ash-intersect/config"
)

const shutdownTimeout = 30 * time.Second

// Server is the HTTP front end. It starts serving on Run and shuts down
// gracefully once the context passed to Run is done.
type Server struct {
	logger       *slog.Logger
	srv          *http.Server
	shuttingDown atomic.Bool
}

func NewServer(cfg config.ServerCfg, svc Intersector, gatherer Gatherer, logger *slog.Logger) *Server {
	addr := cfg.Addr
	if addr == "" {
		addr = config.DefaultServerAddr
	}
	s := &Server{logger: logger}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           NewRouter(svc, gatherer, logger, s.shuttingDown.Load),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Run blocks until the server is stopped. It returns nil after a graceful shutdown.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.shuttingDown.Store(true)
		s.logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("http server shutdown failed", "error", err.Error())
		} else {
			s.logger.Info("http server stopped")
		}
	}()

	s.logger.Info("http server started", "addr", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
