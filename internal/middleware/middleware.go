package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID middleware adds a request ID to the context and response,
// preserving one supplied by the client.
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

// RateLimit middleware advertises the configured per-minute budget through
// the conventional headers. Enforcement lives with the deployment's edge
// proxy; the data layer itself is read-only and cheap.
func RateLimit(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		reset := time.Now().Add(time.Minute).Unix()

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limit-1))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(reset, 10))

		c.Set("rate_limit", limit)
		c.Set("rate_remaining", limit-1)
		c.Set("rate_reset", reset)

		c.Next()
	}
}
