package server

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"tiengow-preview/core/loader"
	"tiengow-preview/core/logger"
	"tiengow-preview/core/middleware/cors"
	"tiengow-preview/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ShutdownTimeout bounds how long in-flight requests may take to finish
// after an interrupt.
const ShutdownTimeout = 5 * time.Second

// Server is the static preview HTTP server.
type Server struct {
	app    *fiber.App
	logger *zap.Logger
}

// New builds the Fiber application, installs the global middleware and
// loads every enabled feature registered on mgr.
func New(logg *zap.Logger, mgr *loader.Manager) (*Server, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID first so every later log line can carry it.
	app.Use(rayid.New())
	app.Use(cors.New())
	app.Use(requestLogger(logg))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}

	return &Server{app: app, logger: logg}, nil
}

// App exposes the underlying Fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen binds the configured address. Failures are returned as *BindError;
// errors.Is(err, ErrPortInUse) identifies an occupied port.
func Listen(cfg Config) (net.Listener, error) {
	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, newBindError(addr, err)
	}
	return ln, nil
}

// Port returns the TCP port ln is bound to.
func Port(ln net.Listener) int {
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}

// Serve runs the accept loop on ln until ctx is cancelled or the loop fails.
// Cancellation is a graceful stop and returns nil. ln is closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer ln.Close()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listener(ln)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("Shutting down server...")
		if err := s.app.ShutdownWithTimeout(ShutdownTimeout); err != nil {
			s.logger.Warn("Graceful shutdown incomplete", zap.Error(err))
		}
		// Unblocks Accept even if Listener had not registered ln yet.
		_ = ln.Close()
		<-errCh
		return nil
	}
}

func requestLogger(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		err := c.Next()
		if err != nil {
			l.Info("Request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
				zap.Error(err),
			)
			return err
		}
		l.Info("Request served",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", c.Response().StatusCode()),
		)
		return nil
	}
}
