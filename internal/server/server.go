package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/docker-lab/internal/config"
	"github.com/MKhiriev/docker-lab/internal/logger"
)

// Server runs the HTTP front end until a stop signal arrives.
type Server struct {
	httpServer *http.Server
	cfg        config.Server

	logger *logger.Logger
}

func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (*Server, error) {
	if cfg.HTTPAddress == "" {
		return nil, errNoAddress
	}

	logger.Info().Str("address", cfg.HTTPAddress).Msg("creating new server...")

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: cfg.RequestTimeout,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout,
		},
		cfg:    cfg,
		logger: logger,
	}, nil
}

// Run listens on the configured address and blocks until ctx is cancelled or
// SIGTERM/SIGINT/SIGQUIT is received, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	}

	return s.serve(ctx, listener)
}

func (s *Server) serve(ctx context.Context, listener net.Listener) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("address", listener.Addr().String()).Msg("Launching HTTP server")
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server Serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.RequestTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
