package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"contrib.go.opencensus.io/integrations/ocsql"

	"github.com/Notifuse/designer/config"
	"github.com/Notifuse/designer/internal/database"
	"github.com/Notifuse/designer/internal/domain"
	httpHandler "github.com/Notifuse/designer/internal/http"
	"github.com/Notifuse/designer/internal/http/middleware"
	"github.com/Notifuse/designer/internal/repository"
	"github.com/Notifuse/designer/pkg/logger"
	"github.com/Notifuse/designer/pkg/ratelimiter"
	"github.com/Notifuse/designer/pkg/tracing"
)

// AppInterface defines the interface for the App
type AppInterface interface {
	Initialize() error
	Start() error
	Shutdown(ctx context.Context) error

	GetConfig() *config.Config
	GetLogger() logger.Logger
	GetMux() *http.ServeMux
	GetDB() *sql.DB
	GetTemplateRepository() domain.TemplateRepository
	Handler() http.Handler

	IsServerCreated() bool
	WaitForServerStart(ctx context.Context) bool

	InitTracing() error
	InitDB() error
	InitRepositories() error
	InitHandlers() error

	SetShutdownTimeout(timeout time.Duration)
	GetActiveRequestCount() int64
}

// App runs the template store server the designer page talks to
type App struct {
	config *config.Config
	logger logger.Logger
	db     *sql.DB

	templateRepo domain.TemplateRepository
	saveLimiter  *ratelimiter.RateLimiter
	stopDBStats  func()

	mux    *http.ServeMux
	server *http.Server

	serverMu      sync.RWMutex
	serverStarted chan struct{}

	shutdownCtx     context.Context
	shutdownCancel  context.CancelFunc
	activeRequests  int64
	requestWg       sync.WaitGroup
	shutdownTimeout time.Duration
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithMockDB configures the app to use a mock database
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
	}
}

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) AppInterface {
	shutdownCtx, shutdownCancel := context.WithCancel(context.Background())

	app := &App{
		config:          cfg,
		logger:          logger.NewLoggerWithLevel(cfg.LogLevel),
		mux:             http.NewServeMux(),
		serverStarted:   make(chan struct{}),
		shutdownCtx:     shutdownCtx,
		shutdownCancel:  shutdownCancel,
		shutdownTimeout: 30 * time.Second,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// InitTracing initializes OpenCensus tracing
func (a *App) InitTracing() error {
	if err := tracing.InitTracing(&a.config.Tracing); err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	if a.config.Tracing.Enabled {
		a.logger.WithField("sampling_rate", a.config.Tracing.SamplingProbability).
			Info("Tracing initialized successfully")
	}
	return nil
}

// InitDB connects to the template store database and creates its schema.
// A database injected with WithMockDB is used as is.
func (a *App) InitDB() error {
	if a.db == nil {
		a.logger.Info(fmt.Sprintf("Connecting to database %s:%d, user %s, dbname %s",
			a.config.Database.Host, a.config.Database.Port, a.config.Database.User, a.config.Database.DBName))

		db, err := database.Connect(a.config)
		if err != nil {
			return err
		}
		a.db = db
	}

	if err := database.InitializeDatabase(a.db); err != nil {
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	if a.config.Tracing.Enabled {
		a.stopDBStats = ocsql.RecordStats(a.db, 5*time.Second)
	}
	return nil
}

// InitRepositories initializes all repositories
func (a *App) InitRepositories() error {
	a.templateRepo = repository.NewTemplateRepository(a.db)
	return nil
}

// InitHandlers registers the store routes and the health check
func (a *App) InitHandlers() error {
	a.mux = http.NewServeMux()

	auth := middleware.NewJWTAuth(a.config.Security.JWTSecret)
	if !auth.Enabled() {
		a.logger.Warn("JWT_SECRET is empty, template routes are not authenticated")
	}

	templateHandler := httpHandler.NewTemplateHandler(a.templateRepo, a.config.Designer.PluginID, a.config.Editor, auth, a.logger)
	rootHandler := httpHandler.NewRootHandler(a.config.Version)

	templateHandler.RegisterRoutes(a.mux)
	rootHandler.RegisterRoutes(a.mux)

	if limit := a.config.Server.SaveRateLimit; limit > 0 {
		a.saveLimiter = ratelimiter.NewRateLimiter()
		a.saveLimiter.SetPolicy(middleware.SaveNamespace, limit, time.Minute)
	}

	if metrics := tracing.MetricsHandler(); metrics != nil && a.config.Tracing.Enabled {
		a.mux.Handle("GET /metrics", metrics)
	}
	return nil
}

// Handler returns the mux wrapped with the server middleware chain
func (a *App) Handler() http.Handler {
	var handler http.Handler = a.mux
	if a.saveLimiter != nil {
		handler = middleware.NewSaveRateLimitMiddleware(a.saveLimiter)(handler)
	}
	handler = a.gracefulShutdownMiddleware(handler)
	if a.config.Tracing.Enabled {
		handler = middleware.TracingMiddleware(handler)
	}
	return middleware.NewCORSMiddleware(a.config.Server.CORSAllowOrigin)(handler)
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).
		WithField("plugin_id", a.config.Designer.PluginID).
		Info(fmt.Sprintf("Server starting on %s", addr))

	a.serverMu.Lock()
	if a.serverStarted != nil {
		select {
		case <-a.serverStarted:
		default:
			close(a.serverStarted)
		}
	}
	a.serverStarted = make(chan struct{})
	a.server = &http.Server{
		Addr:              addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	server := a.server
	serverStarted := a.serverStarted
	a.serverMu.Unlock()

	close(serverStarted)

	return server.ListenAndServe()
}

// Shutdown stops accepting requests, waits for the in-flight ones and
// closes the database
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown...")
	a.shutdownCancel()

	a.serverMu.RLock()
	server := a.server
	a.serverMu.RUnlock()

	var shutdownErr error
	if server != nil {
		timeout := a.shutdownTimeout
		if deadline, ok := ctx.Deadline(); ok {
			if remaining := time.Until(deadline); remaining < timeout {
				timeout = remaining
			}
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		a.logger.WithField("active_requests", a.GetActiveRequestCount()).Info("Shutting down HTTP server")
		shutdownErr = server.Shutdown(shutdownCtx)

		done := make(chan struct{})
		go func() {
			a.requestWg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-shutdownCtx.Done():
			a.logger.WithField("active_requests", a.GetActiveRequestCount()).Warn("Shutdown timeout reached, forcing shutdown")
		}
	}

	if err := a.cleanupResources(); err != nil && shutdownErr == nil {
		shutdownErr = err
	}

	if shutdownErr != nil {
		a.logger.WithField("error", shutdownErr.Error()).Error("Graceful shutdown completed with errors")
	} else {
		a.logger.Info("Graceful shutdown completed successfully")
	}
	return shutdownErr
}

func (a *App) cleanupResources() error {
	if a.saveLimiter != nil {
		a.saveLimiter.Stop()
	}
	if a.stopDBStats != nil {
		a.stopDBStats()
	}
	if a.db == nil {
		return nil
	}
	a.logger.Info("Closing database connection")
	if err := a.db.Close(); err != nil {
		a.logger.WithField("error", err.Error()).Error("Error closing database connection")
		return err
	}
	return nil
}

// IsServerCreated safely checks if the server has been created
func (a *App) IsServerCreated() bool {
	a.serverMu.RLock()
	defer a.serverMu.RUnlock()
	return a.server != nil
}

// WaitForServerStart waits for the server to be created. It returns false
// if ctx expires first.
func (a *App) WaitForServerStart(ctx context.Context) bool {
	a.serverMu.RLock()
	started := a.serverStarted
	a.serverMu.RUnlock()

	select {
	case <-started:
		return a.IsServerCreated()
	case <-ctx.Done():
		return false
	}
}

// Initialize sets up all components of the application
func (a *App) Initialize() error {
	a.logger.WithField("version", a.config.Version).Info("Starting email designer store")

	if err := a.InitTracing(); err != nil {
		return err
	}
	if err := a.InitDB(); err != nil {
		return err
	}
	if err := a.InitRepositories(); err != nil {
		return err
	}
	if err := a.InitHandlers(); err != nil {
		return err
	}

	a.logger.Info("Application successfully initialized")
	return nil
}

func (a *App) GetConfig() *config.Config {
	return a.config
}

func (a *App) GetLogger() logger.Logger {
	return a.logger
}

func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

func (a *App) GetDB() *sql.DB {
	return a.db
}

func (a *App) GetTemplateRepository() domain.TemplateRepository {
	return a.templateRepo
}

// GetActiveRequestCount returns the current number of active requests
func (a *App) GetActiveRequestCount() int64 {
	return atomic.LoadInt64(&a.activeRequests)
}

// SetShutdownTimeout sets the timeout for graceful shutdown
func (a *App) SetShutdownTimeout(timeout time.Duration) {
	a.shutdownTimeout = timeout
}

func (a *App) isShuttingDown() bool {
	select {
	case <-a.shutdownCtx.Done():
		return true
	default:
		return false
	}
}

// gracefulShutdownMiddleware tracks in-flight requests and refuses new ones
// once shutdown has started
func (a *App) gracefulShutdownMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if a.isShuttingDown() {
			httpHandler.WriteJSONError(w, "Server is shutting down", http.StatusServiceUnavailable)
			return
		}

		atomic.AddInt64(&a.activeRequests, 1)
		a.requestWg.Add(1)
		defer func() {
			atomic.AddInt64(&a.activeRequests, -1)
			a.requestWg.Done()
		}()

		next.ServeHTTP(w, r)
	})
}

var _ AppInterface = (*App)(nil)
