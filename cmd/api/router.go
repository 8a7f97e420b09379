package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"library-catalog/internal/config"
	"library-catalog/internal/shared/middleware"
	"library-catalog/internal/shared/response"
	"library-catalog/pkg/container"
)

// docPaths never get cached by browsers or proxies.
var docPaths = []string{"/docs", "/redoc", "/openapi.json"}

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = c.Config.Catalog.MaxCoverSize + 1<<20

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.App.CORSOrigins),
		middleware.NoCache(docPaths...),
	)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "Books Management API is running"})
	})

	if c.Config.Storage.Driver == config.StorageLocal {
		router.Static(c.Config.Storage.PublicPrefix, c.Config.Storage.LocalRoot)
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		c.AuthorHandler.RegisterRoutes(v1)
		c.CategoryHandler.RegisterRoutes(v1)
		c.BookHandler.RegisterRoutes(v1)
	}

	return router
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(app *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		services := app.Health(c.Request.Context())

		status := "ok"
		for name, s := range services {
			if s != "ok" && !(name == "cache" && s == "disabled") {
				status = "degraded"
			}
		}

		code := http.StatusOK
		if services["database"] != "ok" {
			code = http.StatusServiceUnavailable
		}

		response.Success(c, code, gin.H{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   app.Config.App.Version,
			"services":  services,
		})
	}
}
