// Package router assembles the gin engine from the application modules.
package router

import (
	"net/http"
	"time"

	apphttp "bumpti_backend/internal/http"
	"bumpti_backend/platform/apperr"
	"bumpti_backend/platform/httpkit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// New builds the engine: shared middleware, health endpoints, and every
// module's routes under /api/v1.
func New(app *apphttp.App) *gin.Engine {
	cfg := app.Config
	log := app.Logger

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(log))
	engine.Use(httpkit.SecurityHeaders())
	engine.Use(cors.New(corsConfig(cfg)))

	engine.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/api/ready", func(c *gin.Context) {
		if app.Health != nil {
			if err := app.Health.Ping(c.Request.Context()); err != nil {
				log.Error("readiness check failed", "error", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	authMiddleware := httpkit.AuthRequired(cfg)
	if !cfg.IsAuthEnabled() {
		log.Warn("AUTH_TOKEN_SECRET not configured; protected routes will reject every request")
		authMiddleware = rejectAll
	}

	limiter := httpkit.NewIPRateLimiterFromConfig(cfg, log)

	v1 := engine.Group("/api/v1")
	protected := v1.Group("")
	protected.Use(authMiddleware)

	callableGroup := v1.Group("/callable")
	callableGroup.Use(limiter.RateLimit())
	if cfg.IsAuthEnabled() {
		callableGroup.Use(authMiddleware)
	}

	routerCtx := &apphttp.RouterContext{
		Engine:         engine,
		V1:             v1,
		Protected:      protected,
		Callable:       callableGroup,
		Config:         cfg,
		AuthMiddleware: authMiddleware,
		RateLimiter:    limiter,
	}

	for _, module := range app.Modules {
		module.RegisterRoutes(routerCtx)
		log.Info("registered module routes", "module", module.Name())
	}

	engine.NoRoute(func(c *gin.Context) {
		httpkit.Abort(c, apperr.NotFound("route not found"))
	})

	return engine
}

func corsConfig(cfg apphttp.RouterConfig) cors.Config {
	config := cors.DefaultConfig()
	if cfg.GetCORSAllowAll() || len(cfg.GetCORSOrigins()) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = cfg.GetCORSOrigins()
		config.AllowCredentials = cfg.GetCORSAllowCreds()
	}
	config.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", httpkit.HeaderRequestID}
	config.ExposeHeaders = []string{httpkit.HeaderRequestID}
	config.MaxAge = 12 * time.Hour
	return config
}

func rejectAll(c *gin.Context) {
	httpkit.Abort(c, apperr.Unauthenticated("authentication is not configured"))
}
