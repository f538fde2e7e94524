package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/propledger/backend/internal/infrastructure/telemetry"
)

// Profiling tags the request goroutine with route, method and resource labels
// while the handler runs. Health and API docs are left untagged.
func Profiling(enabled bool) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" || route == "/health" || strings.HasPrefix(route, "/swagger") {
			c.Next()
			return
		}

		labels := telemetry.HTTPRequestLabels(route, c.Request.Method)
		labels[telemetry.ProfilingLabelOperation] = resourceOf(route)

		telemetry.WithProfilingLabels(c.Request.Context(), labels, func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}

// resourceOf returns the first static segment after the version,
// e.g. "/api/v1/billables/:id/cancel" -> "billables".
func resourceOf(route string) string {
	parts := strings.Split(strings.TrimPrefix(route, "/"), "/")
	for i, p := range parts {
		if i < 2 && (p == "api" || strings.HasPrefix(p, "v")) {
			continue
		}
		if p != "" && !strings.HasPrefix(p, ":") {
			return p
		}
	}
	return ""
}
