package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDKey is the gin context key under which the request ID is stored.
const requestIDKey = "request_id"

// requestIDHeader carries the request ID on requests and responses.
const requestIDHeader = "x-request-id"

// RequestID returns the ID assigned to the current request.
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// RequestLogger assigns each request an ID, echoes it in the response
// headers and logs one line per request.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)

		begin := time.Now()
		c.Next()

		logger.Info("request",
			"request_id", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status_code", c.Writer.Status(),
			"latency_ms", time.Since(begin).Milliseconds(),
		)
	}
}

// APIKeyAuth rejects requests whose x-api-key header does not match key.
// An empty key disables authentication.
func APIKeyAuth(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key != "" && c.GetHeader("x-api-key") != key {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"detail":     "Unauthorized",
				"request_id": RequestID(c),
			})
			return
		}
		c.Next()
	}
}

// RateLimit rejects requests from clients that exceed the limiter's rate.
func RateLimit(limiter *ClientLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"detail":     "Rate limit exceeded. Please try again later.",
				"request_id": RequestID(c),
			})
			return
		}
		c.Next()
	}
}
