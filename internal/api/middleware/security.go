// Package middleware provides security middleware for the API.
package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/config/server"
	"github.com/jonesrussell/north-cloud/pinpoint/internal/logger"
)

// APIKeyHeader carries the API key on protected routes.
const APIKeyHeader = "X-API-Key"

// SecurityMiddleware checks API keys and sets security headers.
type SecurityMiddleware struct {
	config *server.Config
	logger logger.Interface
}

// NewSecurityMiddleware creates a new security middleware instance
func NewSecurityMiddleware(cfg *server.Config, log logger.Interface) *SecurityMiddleware {
	return &SecurityMiddleware{
		config: cfg,
		logger: log,
	}
}

// addSecurityHeaders adds security headers to the response
func (m *SecurityMiddleware) addSecurityHeaders(c *gin.Context) {
	c.Header("X-Content-Type-Options", "nosniff")
	c.Header("X-Frame-Options", "DENY")
	c.Header("Content-Security-Policy", "default-src 'none'")
	c.Header("Referrer-Policy", "no-referrer")
}

// handleAPIKey checks if the API key is valid
func (m *SecurityMiddleware) handleAPIKey(c *gin.Context) error {
	if !m.config.SecurityEnabled {
		return nil
	}

	apiKey := c.GetHeader(APIKeyHeader)
	if apiKey == "" {
		return ErrMissingAPIKey
	}
	if subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.config.APIKey)) != 1 {
		return ErrInvalidAPIKey
	}
	return nil
}

// Middleware returns the security middleware function
func (m *SecurityMiddleware) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		m.addSecurityHeaders(c)

		if err := m.handleAPIKey(c); err != nil {
			m.logger.Warn("Rejected API request",
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP(),
				"error", err,
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Next()
	}
}
