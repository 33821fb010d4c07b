package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request identifier on both request and response
	RequestIDHeader = "X-Request-Id"

	// context key under which the request ID is stored
	requestIDKey = "request_id"

	// ids longer than this are rejected to keep logs bounded
	maxRequestIDLength = 128
)

// only printable ASCII is accepted, anything else could mangle log lines
func isValidRequestID(id string) bool {
	if len(id) == 0 || len(id) > maxRequestIDLength {
		return false
	}

	for i := 0; i < len(id); i++ {
		if id[i] < 0x20 || id[i] > 0x7E {
			return false
		}
	}

	return true
}

// RequestID injects a UUIDv4 request identifier. A valid incoming
// X-Request-Id header is reused so callers can correlate retries.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if !isValidRequestID(reqID) {
			reqID = uuid.NewString()
		}

		c.Set(requestIDKey, reqID)
		c.Writer.Header().Set(RequestIDHeader, reqID)
		c.Next()
	}
}

// GetRequestID returns the request ID assigned by the RequestID middleware
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
