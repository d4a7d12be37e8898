// Package api implements the HTTP API for the selector engine.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/api/middleware"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/config/server"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/logger"
)

// bodyOverhead is the request body allowance on top of the document limit
// for the JSON envelope and hint.
const bodyOverhead = 256 << 10

// RouterParams holds the dependencies of the router.
type RouterParams struct {
	Handler          *Handler
	Logger           logger.Interface
	Server           *server.Config
	MaxDocumentBytes int
}

// SetupRouter creates and configures the Gin router with all routes
func SetupRouter(p RouterParams) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(p.Logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.NewSecurityMiddleware(p.Server, p.Logger).Middleware())
	v1.Use(bodyLimitMiddleware(int64(p.MaxDocumentBytes) + bodyOverhead))

	v1.POST("/injection-points", p.Handler.Analyze)
	v1.POST("/selectors/validate", p.Handler.Validate)
	v1.POST("/selectors/score", p.Handler.Score)
	v1.POST("/selectors/clean", p.Handler.Clean)
	v1.GET("/stats", p.Handler.Stats)

	return router
}

// loggingMiddleware creates a middleware that logs HTTP requests
func loggingMiddleware(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		log.Info("HTTP Request",
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}

// bodyLimitMiddleware caps the request body size.
func bodyLimitMiddleware(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
