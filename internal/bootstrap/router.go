package bootstrap

import (
	"log"
	"net/http"

	"github.com/tepidprint/tepid/internal/config"
	"github.com/tepidprint/tepid/internal/metrics"
	"github.com/tepidprint/tepid/internal/middleware"
	"github.com/tepidprint/tepid/internal/models"
	"github.com/tepidprint/tepid/internal/store"
	"github.com/tepidprint/tepid/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

// setupRouter configures the Gin router with all routes and middleware
func setupRouter(
	cfg *config.Config,
	db *store.Store,
	h handlerSet,
	sessions middleware.SessionSource,
	recorder metrics.Recorder,
	redisClient *redis.Client,
) (*gin.Engine, error) {
	setupGinMode(cfg)
	r := gin.New()

	r.Use(metrics.HTTPMetricsMiddleware(recorder))
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(util.IPMiddleware())
	r.Use(middleware.SessionAuth(sessions))

	r.GET("/health", createHealthCheckHandler(db))
	setupMetricsEndpoint(r, cfg)

	loginLimiter, err := setupLoginRateLimit(cfg, redisClient)
	if err != nil {
		return nil, err
	}
	setupAllRoutes(r, h, loginLimiter)

	log.Printf("TEPID identity service starting on %s", cfg.ServerAddr)
	return r, nil
}

// setupMetricsEndpoint configures the Prometheus metrics endpoint
func setupMetricsEndpoint(r *gin.Engine, cfg *config.Config) {
	switch {
	case !cfg.MetricsEnabled:
		log.Printf("Prometheus metrics disabled")
	case cfg.MetricsToken != "":
		log.Printf("Prometheus metrics enabled at /metrics with Bearer token authentication")
		r.GET(
			"/metrics",
			middleware.MetricsAuthMiddleware(cfg.MetricsToken),
			gin.WrapH(promhttp.Handler()),
		)
	default:
		log.Printf("Prometheus metrics enabled at /metrics (no authentication)")
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}
}

// setupAllRoutes configures all application routes
func setupAllRoutes(r *gin.Engine, h handlerSet, loginLimiter gin.HandlerFunc) {
	sessions := r.Group("/sessions")
	{
		sessions.POST("", loginLimiter, h.session.Create)
		sessions.GET("/:token", h.session.Get)
		sessions.DELETE("/:token", h.session.Delete)
	}

	owner := middleware.RequireOwnerOrRole("identifier", models.RoleElder)
	users := r.Group("/users")
	users.Use(middleware.RequireSession())
	{
		users.GET("/autosuggest/:like", middleware.RequireRole(models.RoleCTFer), h.user.Autosuggest)
		users.GET("/:identifier", h.user.Get)
		users.POST("/:identifier/refresh", middleware.RequireRole(models.RoleElder), h.user.Refresh)
		users.PUT("/:identifier/exchange", middleware.RequireRole(models.RoleElder), h.user.SetExchange)
		users.PUT("/:identifier/nickname", owner, h.user.SetNickname)
		users.PUT("/:identifier/color", owner, h.user.SetColor)
	}
}

// createHealthCheckHandler reports whether the database answers.
func createHealthCheckHandler(db *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		switch err := db.Health(c.Request.Context()); err {
		case nil:
			c.JSON(http.StatusOK, gin.H{
				"status":   "healthy",
				"database": "connected",
			})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "disconnected",
			})
		}
	}
}

// setupGinMode sets Gin mode based on environment configuration
func setupGinMode(cfg *config.Config) {
	mode := ginModeMap[cfg.IsProduction]
	gin.SetMode(mode)
	log.Printf("Gin mode: %s", ginModeLogMessage[cfg.IsProduction])
}

var ginModeMap = map[bool]string{
	true:  gin.ReleaseMode,
	false: gin.DebugMode,
}

var ginModeLogMessage = map[bool]string{
	true:  "Release (production)",
	false: "Debug (development)",
}
