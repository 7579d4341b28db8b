// Package server provides HTTP server lifecycle management.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/arrstack/cfpattern/internal/core/config"
)

// HTTPServer wraps net/http with configured timeouts and graceful
// shutdown.
type HTTPServer struct {
	cfg config.ServerConfig
	srv *http.Server
	log zerolog.Logger
}

// NewHTTPServer creates a server for the given handler.
func NewHTTPServer(cfg config.ServerConfig, handler http.Handler, log zerolog.Logger) (*HTTPServer, error) {
	if handler == nil {
		return nil, errors.New("handler is required")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	}

	return &HTTPServer{cfg: cfg, srv: srv, log: log}, nil
}

// Start begins serving. Blocks until the listener fails or Shutdown is
// called; a clean shutdown returns nil.
func (s *HTTPServer) Start() error {
	listener, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.srv.Addr, err)
	}

	s.log.Info().Str("addr", s.srv.Addr).Msg("http server listening")

	if err := s.srv.Serve(listener); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests within the configured timeout.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("http server shutting down")

	ctx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}
