package bootstrap

import (
	"context"
	"net/http"

	"github.com/tepidprint/tepid/internal/auth"
	"github.com/tepidprint/tepid/internal/config"
	"github.com/tepidprint/tepid/internal/core"
	"github.com/tepidprint/tepid/internal/metrics"
	"github.com/tepidprint/tepid/internal/models"
	"github.com/tepidprint/tepid/internal/services"
	"github.com/tepidprint/tepid/internal/session"
	"github.com/tepidprint/tepid/internal/store"

	"github.com/appleboy/graceful"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Application holds all initialized components
type Application struct {
	Config *config.Config

	// Core infrastructure
	DB                 *store.Store
	RedisClient        *redis.Client
	MetricsRecorder    metrics.Recorder
	MetricsCache       core.Cache[int64]
	MetricsCacheCloser func() error
	UserCache          core.Cache[models.User]
	UserCacheCloser    func() error

	// Identity
	Users          core.UserStore
	Directory      core.UserDirectory
	SessionBackend core.SessionBackend
	Sessions       *session.Manager

	// Services
	Resolver      *services.Resolver
	Authenticator *services.Authenticator
	UserService   *services.UserService

	// HTTP
	HandlerSet handlerSet
	Router     *gin.Engine
	Server     *http.Server
}

// Run initializes and starts the application
func Run(ctx context.Context, cfg *config.Config) error {
	app, err := newApplication(ctx, cfg)
	if err != nil {
		return err
	}

	// Phase 4: Initialize HTTP layer
	if err := app.initializeHTTPLayer(); err != nil {
		app.Close()
		return err
	}

	// Phase 5: Start server with graceful shutdown
	app.startWithGracefulShutdown()
	return nil
}

// newApplication builds everything below the HTTP layer. The CLI commands
// use it on their own.
func newApplication(ctx context.Context, cfg *config.Config) (*Application, error) {
	app := &Application{Config: cfg}

	// Phase 1: Validate configuration
	if err := validateAllConfiguration(cfg); err != nil {
		return nil, err
	}

	// Phase 2: Initialize infrastructure
	if err := app.initializeInfrastructure(ctx); err != nil {
		app.Close()
		return nil, err
	}

	// Phase 3: Initialize business layer
	app.initializeBusinessLayer()
	return app, nil
}

// initializeInfrastructure sets up database, redis, caches and metrics
func (app *Application) initializeInfrastructure(ctx context.Context) error {
	var err error

	app.DB, err = initializeDatabase(ctx, app.Config)
	if err != nil {
		return err
	}

	app.RedisClient, err = initializeRedisClient(ctx, app.Config)
	if err != nil {
		return err
	}

	app.MetricsRecorder = initializeMetrics(app.Config)
	app.MetricsCache, app.MetricsCacheCloser, err = initializeMetricsCache(ctx, app.Config)
	if err != nil {
		return err
	}

	app.UserCache, app.UserCacheCloser, err = initializeUserCache(ctx, app.Config)
	if err != nil {
		return err
	}

	app.SessionBackend = initializeSessionBackend(app.Config, app.DB, app.RedisClient)
	return nil
}

// initializeBusinessLayer wires the directory, sessions and services
func (app *Application) initializeBusinessLayer() {
	app.Users = initializeUserStore(app.Config, app.DB, app.UserCache)
	app.Directory = initializeDirectory(app.Config, app.MetricsRecorder)
	app.Sessions = session.NewManager(
		app.SessionBackend,
		app.Config.SessionDefaultTTLHours,
		session.WithRecorder(app.MetricsRecorder),
	)

	app.Resolver, app.Authenticator, app.UserService = initializeServices(
		app.Config,
		app.Users,
		app.Directory,
		app.Sessions,
		auth.NewLocalProvider(app.Users),
		app.MetricsRecorder,
	)
}

// initializeHTTPLayer sets up handlers, router, and server
func (app *Application) initializeHTTPLayer() error {
	app.HandlerSet = initializeHandlers(app.Authenticator, app.Sessions, app.UserService)

	var err error
	app.Router, err = setupRouter(
		app.Config,
		app.DB,
		app.HandlerSet,
		app.Sessions,
		app.MetricsRecorder,
		app.RedisClient,
	)
	if err != nil {
		return err
	}

	app.Server = createHTTPServer(app.Config, app.Router)
	return nil
}

// startWithGracefulShutdown starts the server and handles graceful shutdown
func (app *Application) startWithGracefulShutdown() {
	m := graceful.NewManager()

	addServerRunningJob(m, app.Server)
	addServerShutdownJob(m, app.Server, app.Config.ServerShutdownTimeout)
	addSessionSweepJob(m, app.Config, app.SessionBackend)
	addMetricsGaugeUpdateJob(m, app.Config, app.SessionBackend, app.MetricsRecorder, app.MetricsCache)
	addCacheCleanupJob(m, "metrics", app.MetricsCacheCloser)
	addCacheCleanupJob(m, "user", app.UserCacheCloser)
	addRedisClientShutdownJob(m, app.RedisClient)
	addDatabaseShutdownJob(m, app.DB)

	<-m.Done()
}

// Close releases infrastructure outside of the graceful manager, for the
// CLI commands and failed startups.
func (app *Application) Close() {
	for _, closer := range []func() error{app.UserCacheCloser, app.MetricsCacheCloser} {
		if closer != nil {
			_ = closer()
		}
	}
	if app.RedisClient != nil {
		_ = app.RedisClient.Close()
	}
	if app.DB != nil {
		_ = app.DB.Close()
	}
}
