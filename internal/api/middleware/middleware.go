package middleware

import (
	"net/http"
	"strings"
	"time"

	"gamecenter-backend/internal/config"
	"gamecenter-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Logger logs each request with method, path, status and latency
func Logger() gin.HandlerFunc {
	log := logger.New()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.WithFields(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": c.GetString("request_id"),
		}).Info("request completed")
	}
}

// Recovery converts panics into 500 responses
func Recovery() gin.HandlerFunc {
	log := logger.New()
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(map[string]interface{}{
					"path":       c.Request.URL.Path,
					"request_id": c.GetString("request_id"),
				}).Errorf("panic recovered: %v", r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
		}()
		c.Next()
	}
}

// RequestID assigns a request ID, honoring one supplied by the caller
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// CORS restricts cross-origin requests to the configured origins. An
// empty configuration allows any origin, which only makes sense in
// development.
func CORS(cfg *config.Config) gin.HandlerFunc {
	allowed := make(map[string]bool)
	for _, origin := range cfg.AllowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowed[origin] = true
		}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case len(allowed) == 0 && origin != "":
			c.Header("Access-Control-Allow-Origin", origin)
		case allowed[origin]:
			c.Header("Access-Control-Allow-Origin", origin)
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
