package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"mintkitchen/api/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	durationHeader = "X-Request-Duration-ms"
	startKey       = "request_start"
)

// accessLog logs every request. The duration header itself is stamped by
// respond, since headers cannot change once the body is written.
func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Set(startKey, start)

		c.Next()

		elapsed := time.Since(start)
		entry := log.WithFields(log.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": elapsed.Milliseconds(),
			"client_ip":   c.ClientIP(),
		})

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			entry.Error("Request failed")
		case c.Writer.Status() >= http.StatusBadRequest:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request served")
		}
	}
}

// respond stamps the elapsed time and writes the JSON body
func respond(c *gin.Context, status int, body any) {
	if start, ok := c.Get(startKey); ok {
		if t, ok := start.(time.Time); ok {
			c.Header(durationHeader, strconv.FormatInt(time.Since(t).Milliseconds(), 10))
		}
	}
	c.JSON(status, body)
}

// requestTimeout bounds the work done for each request, including upstream calls
func requestTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (s *Server) requireConfigured() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.configured {
			abortWithError(c, "checking configuration", service.ErrNotConfigured)
			return
		}
		c.Next()
	}
}
