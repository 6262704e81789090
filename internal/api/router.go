package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lifedrawing-art/backend/internal/config"
	"github.com/lifedrawing-art/backend/internal/service"
	"github.com/rs/zerolog"
)

// HealthChecker reports whether the backing store is reachable.
// *database.DB satisfies it; tests pass nil.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, db HealthChecker, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Handlers
	authHandler := NewAuthHandler(services, log)
	venueHandler := NewVenueHandler(services, log)
	modelHandler := NewModelHandler(services, log)
	eventHandler := NewEventHandler(services, log)
	calendarHandler := NewCalendarHandler(services, log)
	userHandler := NewUserHandler(services, log)
	dashboardHandler := NewDashboardHandler(services, log)
	hostHandler := NewHostHandler(services, log)
	artistHandler := NewArtistHandler(services, log)

	// Health check
	router.GET("/health", healthCheck(db))

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		api.POST("/register/model", authHandler.RegisterModel)

		// Public read surface
		api.GET("/venues", venueHandler.List)
		api.GET("/venues/:id", venueHandler.Get)
		api.GET("/models", modelHandler.List)
		api.GET("/models/:id", modelHandler.Get)
		api.GET("/events", eventHandler.List)
		api.GET("/events/:id", eventHandler.Get)
		api.GET("/calendar", calendarHandler.List)
		api.GET("/calendar/:id", calendarHandler.Get)
		api.GET("/exchange-rates", dashboardHandler.ExchangeRates)
		api.GET("/hosts", hostHandler.List)
		api.GET("/hosts/:id", hostHandler.Get)
		api.GET("/artists", artistHandler.List)
		api.GET("/artists/:id", artistHandler.Get)

		// Authenticated writes
		authed := api.Group("", RequireAuth(services.Auth))
		{
			authed.POST("/venues", venueHandler.Create)
			authed.PUT("/venues/:id", venueHandler.Update)
			authed.DELETE("/venues/:id", venueHandler.Delete)

			authed.POST("/models", modelHandler.Create)
			authed.PUT("/models/:id", modelHandler.Update)
			authed.DELETE("/models/:id", modelHandler.Delete)

			authed.POST("/events", eventHandler.Create)
			authed.PUT("/events/:id", eventHandler.Update)
			authed.DELETE("/events/:id", eventHandler.Delete)

			authed.PUT("/artists/:id", artistHandler.Update)

			authed.POST("/calendar", calendarHandler.Create)
			authed.PUT("/calendar/:id", calendarHandler.Update)
			authed.DELETE("/calendar/:id", calendarHandler.Delete)

			// Admin-only surface
			admin := authed.Group("", RequireAdmin())
			{
				admin.GET("/users", userHandler.List)
				admin.GET("/users/:id", userHandler.Get)
				admin.PUT("/users/:id", userHandler.Update)
				admin.DELETE("/users/:id", userHandler.Delete)
				admin.GET("/dashboard/stats", dashboardHandler.Stats)
			}
		}
	}

	return router
}

// healthCheck returns the health status including database reachability
func healthCheck(db HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if db != nil && db.HealthCheck(c.Request.Context()) != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "lifedrawing-backend",
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}
