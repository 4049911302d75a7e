package middleware

import (
	"crypto/subtle"
	"net/http"
	"time"

	"mt5-gateway/pkg/apperror"
	"mt5-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// HeaderAdminToken carries the shared secret for administrative endpoints.
const HeaderAdminToken = "X-Admin-Token"

// AdminAuth creates a middleware that gates administrative routes behind a
// shared token and an optional client IP allowlist. The token comparison is
// constant time.
func AdminAuth(token string, allowIPs []string, log zerolog.Logger) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowIPs))
	for _, ip := range allowIPs {
		allowed[ip] = struct{}{}
	}

	return func(c *gin.Context) {
		if token == "" {
			log.Error().Msg("admin token not configured, rejecting request")
			response.Error(c, apperror.ErrForbidden())
			c.Abort()
			return
		}

		if len(allowed) > 0 {
			if _, ok := allowed[c.ClientIP()]; !ok {
				log.Warn().Str("client_ip", c.ClientIP()).Msg("admin request from disallowed IP")
				response.Error(c, apperror.ErrForbidden())
				c.Abort()
				return
			}
		}

		got := c.GetHeader(HeaderAdminToken)
		if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			log.Warn().Str("client_ip", c.ClientIP()).Msg("admin request with bad token")
			response.Error(c, apperror.ErrForbidden())
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize limits the request body size.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
