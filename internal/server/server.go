package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/tripmind/tripmind/internal/app/eventbus"
	"github.com/tripmind/tripmind/internal/pkg/config"
)

// Server holds the dependencies for the HTTP server
type Server struct {
	cfg         *config.Config
	logger      *zap.Logger
	bus         *eventbus.Bus
	broadcaster *eventbus.Broadcaster
	router      http.Handler
}

// New creates a new Server instance with the shared event plumbing every
// handler hangs off: the SSE broadcaster and the bus mirroring into it.
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	broadcaster := eventbus.NewBroadcaster(logger)
	bus := eventbus.New(logger, broadcaster)

	return &Server{
		cfg:         cfg,
		logger:      logger,
		bus:         bus,
		broadcaster: broadcaster,
	}, nil
}

// HTTPServer creates and configures the HTTP server
func (s *Server) HTTPServer() *http.Server {
	// No WriteTimeout: /api/events holds its connection open for the
	// whole session.
	return &http.Server{
		Addr:        ":" + s.cfg.ServerPort,
		Handler:     s.router,
		IdleTimeout: time.Minute,
		ReadTimeout: 10 * time.Second,
	}
}

// SetRouter sets the HTTP router/handler
func (s *Server) SetRouter(router http.Handler) {
	s.router = router
}

// Bus returns the process-wide event bus
func (s *Server) Bus() *eventbus.Bus {
	return s.bus
}

// Broadcaster returns the SSE broadcaster mirroring the bus
func (s *Server) Broadcaster() *eventbus.Broadcaster {
	return s.broadcaster
}

// GetLogger returns the logger instance
func (s *Server) GetLogger() *zap.Logger {
	return s.logger
}

// GetConfig returns the configuration
func (s *Server) GetConfig() *config.Config {
	return s.cfg
}

// Close closes all server resources
func (s *Server) Close() {
	s.bus.ClearAll()
}
