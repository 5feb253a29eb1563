package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"book-manager/internal/shared/middleware"
	"book-manager/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.AllowedOrigins),
	)

	router.GET("/", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "Welcome to book manager API")
	})
	router.GET("/health", healthCheckHandler(c))

	setupAuthRoutes(router, c)
	setupBookRoutes(router, c)

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(r gin.IRouter, c *container.Container) {
	r.POST("/register", c.UserHandler.Register)
	r.POST("/login", c.UserHandler.Login)
}

// ========================================
// BOOK ROUTES (token required)
// ========================================
func setupBookRoutes(r gin.IRouter, c *container.Container) {
	books := r.Group("/books")
	books.Use(middleware.AuthMiddleware(c.UserService))
	{
		books.POST("", c.BookHandler.CreateBook)
		books.GET("", c.BookHandler.ListBooks)
		books.GET("/:bookId", c.BookHandler.GetBook)
		books.PATCH("/:bookId", c.BookHandler.UpdateBook)
		books.DELETE("/:bookId", c.BookHandler.DeleteBook)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		// Check database (+ pool stats cho postgres)
		database := gin.H{"status": "memory"}
		if appCtx.DB != nil {
			database["status"] = "ok"

			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				database["status"] = "error: " + err.Error()
				health["status"] = "degraded"
			}

			if stats, err := appCtx.DB.Stats(); err == nil {
				database["pool"] = stats
			}
		}

		// Check cache (Noop luôn ok)
		cacheStatus := "ok"
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := appCtx.Cache.Ping(ctx); err != nil {
			cacheStatus = "error: " + err.Error()
		}

		health["services"] = gin.H{
			"database": database,
			"cache":    cacheStatus,
		}

		statusCode := http.StatusOK
		if health["status"] != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
