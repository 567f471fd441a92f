package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/shared/middleware"
	"library-catalog/internal/shared/paths"
	"library-catalog/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	metrics := middleware.NewMetrics()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.ClientIP(),
		metrics.Middleware(),
		middleware.Logger(),
		middleware.ErrorHandler(),
	)

	router.GET("/health", healthCheckHandler(c))
	router.GET("/metrics", metrics.Handler())
	router.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, paths.Root)
	})

	catalog := router.Group(paths.Root)
	{
		catalog.GET("", func(ctx *gin.Context) {
			ctx.Redirect(http.StatusFound, paths.List(paths.Book))
		})

		c.BookHandler.RegisterRoutes(catalog)
		c.AuthorHandler.RegisterRoutes(catalog)
		c.BookInstanceHandler.RegisterRoutes(catalog)
	}

	return router
}

func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status, code, storeStatus := "ok", http.StatusOK, "ok"
		if err := appCtx.HealthCheck(ctx); err != nil {
			status, code, storeStatus = "degraded", http.StatusServiceUnavailable, err.Error()
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services": gin.H{
				"store": gin.H{
					"driver": appCtx.Config.Store.Driver,
					"status": storeStatus,
				},
			},
		})
	}
}
