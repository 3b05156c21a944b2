package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	errx "github.com/arogyasagar/storefront/internal/core/error"
	logx "github.com/arogyasagar/storefront/pkg/logger"
)

// RequestLogger logs one structured line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		ev := logx.Info()
		switch {
		case status >= http.StatusInternalServerError:
			ev = logx.Error()
		case status >= http.StatusBadRequest:
			ev = logx.Warn()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Msg("request")
	}
}

// RequireAdmin gates admin routes on the session role. It is a UI gate,
// not an authorization boundary.
func (h *Handler) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u, ok := h.store.CurrentUser()
		if !ok {
			abort(c, errx.Unauthenticated("Please login to continue."))
			return
		}
		if !u.IsAdmin() {
			abort(c, errx.Forbidden("Admin access required."))
			return
		}
		c.Next()
	}
}

func abort(c *gin.Context, err error) {
	c.AbortWithStatusJSON(errx.StatusOf(err), gin.H{"error": errx.MessageOf(err)})
}
