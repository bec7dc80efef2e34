package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bagdasarian/users-service/internal/config"
	"github.com/bagdasarian/users-service/internal/handler"
)

type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewHandler собирает маршруты и middleware в один http.Handler.
func NewHandler(h *handler.Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	SetupRoutes(mux, h)

	var root http.Handler = mux
	root = handler.RecoveryMiddleware(logger)(root)
	root = handler.LoggingMiddleware(logger)(root)
	root = handler.RequestIDMiddleware(root)
	return root
}

func NewServer(h *handler.Handler, cfg config.HTTPConfig, logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:         cfg.Addr,
			Handler:      NewHandler(h, logger),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

func (s *Server) Start() error {
	s.logger.Info("server starting", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down...")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
