package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"runtime/debug"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/redhat-appstudio/my-microservice/apis/users"
	"github.com/redhat-appstudio/my-microservice/internal/config"
	"github.com/redhat-appstudio/my-microservice/internal/handlers"
	"github.com/redhat-appstudio/my-microservice/internal/middleware"
	"github.com/redhat-appstudio/my-microservice/internal/version"
	"github.com/redhat-appstudio/my-microservice/pkg/logger"
	"github.com/redhat-appstudio/my-microservice/pkg/metrics"
	"github.com/redhat-appstudio/my-microservice/pkg/storage"
)

// Server represents the HTTP server instance with all its components.
type Server struct {
	// app is the Fiber HTTP application instance
	app *fiber.App

	// cfg contains the server configuration
	cfg *config.Config

	// journal is the optional Redis journal of created users
	journal *storage.RedisClient

	// metrics is nil unless metrics are enabled
	metrics *metrics.Metrics

	lifecycle lifecycle
	listening chan struct{}
	listener  net.Listener
}

// Option customizes a Server at construction time.
type Option func(*options)

type options struct {
	repository users.Repository
}

// WithRepository replaces the fixture user repository.
func WithRepository(repo users.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// New creates a Server with logging, optional journal and metrics,
// middleware and routes wired. The server is ready to Start after New
// returns.
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	o := &options{repository: users.NewFixtureRepository()}
	for _, opt := range opts {
		opt(o)
	}

	if err := logger.InitFromConfig(cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	journal, err := storage.NewJournal(cfg.Storage.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize user journal: %w", err)
	}

	s := &Server{
		cfg:       cfg,
		journal:   journal,
		listening: make(chan struct{}),
	}
	if cfg.Metrics.Enabled {
		s.metrics = metrics.New()
	}

	app := fiber.New(fiber.Config{
		AppName:               "my-microservice " + version.GetVersion(),
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          middleware.ErrorHandler,
		BodyLimit:             cfg.BodyLimit,
		DisableStartupMessage: true,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.RequestContext())
	app.Use(middleware.RequestLogger())
	if s.metrics != nil {
		app.Use(s.metrics.Middleware())
	}
	app.Use(recover.New(recover.Config{
		EnableStackTrace:  true,
		StackTraceHandler: logPanic,
	}))
	app.Use(middleware.SecurityHeaders())
	app.Use(middleware.CORS())
	app.Use(middleware.JSONBody())

	if s.metrics != nil {
		s.metrics.Register(app)
		logger.Infof("Prometheus metrics exposed at %s", metrics.Path)
	}

	handlers.SetupRoutes(app, handlers.Dependencies{
		ServiceVersion: version.ServiceVersion(cfg.ServiceVersion),
		Environment:    cfg.Environment,
		Repository:     o.repository,
		Journal:        s.userJournal(),
	})

	s.app = app
	return s, nil
}

// App returns the underlying Fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// State returns the current lifecycle state.
func (s *Server) State() State {
	return s.lifecycle.current()
}

// Listening is closed once the server accepts connections.
func (s *Server) Listening() <-chan struct{} {
	return s.listening
}

// Addr returns the bound address, or nil before the server listens.
func (s *Server) Addr() net.Addr {
	select {
	case <-s.listening:
		return s.listener.Addr()
	default:
		return nil
	}
}

// Start binds the configured port and serves until Shutdown.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", ":"+s.cfg.Port)
	if err != nil {
		_ = s.lifecycle.transition(StateStarting, StateStopped)
		return fmt.Errorf("failed to listen on port %s: %w", s.cfg.Port, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown. It returns nil after a
// graceful shutdown.
func (s *Server) Serve(ln net.Listener) error {
	if err := s.lifecycle.transition(StateStarting, StateListening); err != nil {
		_ = ln.Close()
		return err
	}
	s.listener = ln
	close(s.listening)

	logger.Info("server listening",
		zap.String("addr", ln.Addr().String()),
		zap.String("environment", s.cfg.Environment))
	logger.Infof("Health check: http://localhost:%s/health", s.cfg.Port)

	err := s.app.Listener(ln)
	if s.State() >= StateDraining {
		return nil
	}
	return err
}

// Shutdown stops accepting new connections and waits for in-flight
// requests until ctx expires, then releases the journal connection.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.lifecycle.transition(StateListening, StateDraining); err != nil {
		return err
	}
	<-s.listening
	logger.Info("server draining")

	err := s.app.ShutdownWithContext(ctx)
	if closeErr := s.listener.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
		logger.Debug("listener close", zap.Error(closeErr))
	}

	if s.journal != nil {
		if closeErr := s.journal.Close(); closeErr != nil {
			logger.Warn("failed to close Redis journal", zap.Error(closeErr))
		}
	}

	if tErr := s.lifecycle.transition(StateDraining, StateStopped); tErr != nil {
		return errors.Join(err, tErr)
	}
	logger.Info("server stopped")
	return err
}

// Run serves until ctx is done, then shuts down gracefully within the
// configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	select {
	case <-s.listening:
	case err := <-errCh:
		return err
	}

	logger.Info("termination signal received, shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return <-errCh
}

// userJournal combines the configured sinks for created users, or
// returns nil when there are none.
func (s *Server) userJournal() users.Journal {
	var journals users.Journals

	if s.metrics != nil {
		m := s.metrics
		journals = append(journals, users.JournalFunc(func(context.Context, users.User) error {
			m.UserCreated()
			return nil
		}))
	}

	if s.journal != nil {
		rc := s.journal
		journals = append(journals, users.JournalFunc(func(ctx context.Context, u users.User) error {
			return rc.AppendUser(ctx, storage.UserRecord{
				ID:        u.ID,
				Name:      u.Name,
				Email:     u.Email,
				CreatedAt: u.CreatedAt,
				RequestID: middleware.RequestIDFromContext(ctx),
				Timestamp: time.Now().UTC(),
			})
		}))
	}

	if len(journals) == 0 {
		return nil
	}
	return journals
}

func logPanic(c *fiber.Ctx, e interface{}) {
	logger.Error("panic recovered",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.String("request_id", middleware.RequestIDFromCtx(c)),
		zap.Any("panic", e),
		zap.ByteString("stack", debug.Stack()))
}
