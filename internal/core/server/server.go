package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"banner-buddy/internal/core/config"
	"banner-buddy/internal/core/logger"

	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "banner-buddy/docs/swagger"
)

const healthCheckTimeout = 2 * time.Second

// Pinger is a dependency whose availability is reported by /healthz.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Option configures a Server.
type Option func(*Server)

// WithHealthCheck adds a named dependency to /healthz.
func WithHealthCheck(name string, p Pinger) Option {
	return func(s *Server) {
		s.checks[name] = p
	}
}

// WithMetrics serves h on /metrics.
func WithMetrics(h fiber.Handler) Option {
	return func(s *Server) {
		s.App.Get("/metrics", h)
	}
}

// Server holds the Fiber application and configuration.
type Server struct {
	// App is the main Fiber application instance.
	App *fiber.App
	// cfg holds the application configuration.
	cfg    *config.AppConfig
	checks map[string]Pinger
}

// HealthResponse reports the status of the service and its dependencies.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// New creates a new Server instance with configured middleware.
func New(cfg *config.AppConfig, opts ...Option) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "banner-buddy",
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Ray-ID",
	}))

	app.Use(fiberzap.New(fiberzap.Config{
		Logger: logger.Get(),
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	s := &Server{
		App:    app,
		cfg:    cfg,
		checks: make(map[string]Pinger),
	}
	app.Get("/healthz", s.health)

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// health handles GET /healthz.
// @Summary Health check
// @Tags Ops
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /healthz [get]
func (s *Server) health(c *fiber.Ctx) error {
	resp := HealthResponse{Status: "ok"}
	if len(s.checks) == 0 {
		return c.Status(http.StatusOK).JSON(resp)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	resp.Checks = make(map[string]string, len(s.checks))
	status := http.StatusOK
	for name, p := range s.checks {
		if err := p.Ping(ctx); err != nil {
			logger.Get().Warn("Health check failed", zap.String("dependency", name), zap.Error(err))
			resp.Checks[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}
	if status != http.StatusOK {
		resp.Status = "degraded"
	}

	return c.Status(status).JSON(resp)
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	addr := fmt.Sprintf(":%d", s.cfg.ServerPort)
	logger.Get().Info("Starting server", zap.String("address", addr))
	return s.App.Listen(addr)
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Get().Info("Shutting down server")
	return s.App.ShutdownWithContext(ctx)
}
