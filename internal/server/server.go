// Package server owns the listener and the http.Server for every binary:
// bind first, then serve one goroutine per accepted connection until the
// context is cancelled, then shut down within a deadline.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"hello-web/internal/config"

	"go.uber.org/zap"
)

type Server struct {
	cfg      *config.Server
	httpSrv  *http.Server
	listener net.Listener
	log      *zap.Logger
}

// Listen binds addr and prepares a server for handler. Bind errors surface
// here, before anything is printed.
func Listen(cfg *config.Server, addr string, handler http.Handler, log *zap.Logger) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	return &Server{
		cfg:      cfg,
		listener: ln,
		log:      log,
		httpSrv: &http.Server{
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			ErrorLog:     zap.NewStdLog(log),
		},
	}, nil
}

func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve blocks until ctx is cancelled or the listener fails. On cancellation
// in-flight requests get cfg.ShutdownTimeout to finish.
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Starting server", zap.String("addr", s.Addr().String()))
		errCh <- s.httpSrv.Serve(s.listener)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	s.log.Info("Server stopped")
	return nil
}
