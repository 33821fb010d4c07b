package main

import (
	"net/http"
	"time"

	"codeberg.org/da-project/server/api/rest/columns"
	"codeberg.org/da-project/server/api/rest/comments"
	"codeberg.org/da-project/server/api/rest/csv"
	restgemini "codeberg.org/da-project/server/api/rest/gemini"
	"codeberg.org/da-project/server/api/rest/health"
	"codeberg.org/da-project/server/api/rest/pages"
	"codeberg.org/da-project/server/api/rest/reports"
	"codeberg.org/da-project/server/internal/errors"
	"codeberg.org/da-project/server/internal/metrics"
	"codeberg.org/da-project/server/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/swaggo/swag"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())
	router.Use(middleware.RequestID())
	router.Use(metrics.Middleware())

	router.GET("/", health.RootHandler)
	router.GET("/health", health.Handler)
	router.GET("/metrics", metrics.Handler())
	router.GET("/docs", docsHandler)

	api := router.Group("/api")
	api.Use(middleware.RateLimit(func(c *gin.Context) {
		errors.TooManyRequests(c, "")
	}))

	{
		reports.RegisterRoutes(api, server.reportRepo, server.columnRepo, server.services.Generator)
		pages.RegisterRoutes(api, server.reportRepo, server.pageRepo, server.columnRepo, server.services.Generator)
		columns.RegisterRoutes(api, server.columnRepo)
		comments.RegisterRoutes(api, server.pageRepo, server.commentRepo)
		csv.RegisterRoutes(api)
		restgemini.RegisterRoutes(api, server.services.Generator)
	}
}

// serves the generated OpenAPI document
func docsHandler(c *gin.Context) {
	doc, err := swag.ReadDoc()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "documentation unavailable"})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(doc))
}

// allows browser clients from any origin, matching the public API surface
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
		ExposeHeaders:   []string{"X-Request-Id"},
		MaxAge:          12 * time.Hour,
	})
}
