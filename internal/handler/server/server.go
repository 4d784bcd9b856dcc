package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bagdasarian/group-managers/internal/handler"
)

type Server struct {
	handler *handler.Handler
	server  *http.Server
	logger  *slog.Logger
}

func NewServer(h *handler.Handler, addr string, authenticate Middleware, logger *slog.Logger) *Server {
	mux := http.NewServeMux()
	SetupRoutes(mux, h, authenticate)

	return &Server{
		handler: h,
		logger:  logger,
		server: &http.Server{
			Addr:              addr,
			Handler:           requestLogger(logger)(mux),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Handler возвращает корневой обработчик, используется в тестах
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) Start() error {
	s.logger.Info("server starting", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down")
	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
