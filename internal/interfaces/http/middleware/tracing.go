package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const maxActorIDLength = 64

// Tracing wraps otelgin and tags the server span with the request and actor ids.
// Responses of 500 and above mark the span as failed.
func Tracing(serviceName string, enabled bool) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) { c.Next() }
	}

	return otelgin.Middleware(serviceName,
		otelgin.WithFilter(func(r *http.Request) bool { return r.URL.Path != "/health" }),
	)
}

// SpanEnricher must run inside Tracing: it annotates the active span before
// the handler and records the outcome after it.
func SpanEnricher() gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())
		if !span.IsRecording() {
			c.Next()
			return
		}

		if id := GetRequestID(c); id != "" {
			span.SetAttributes(attribute.String("request_id", id))
		}
		if actor := c.GetHeader(ActorIDHeader); actor != "" && len(actor) <= maxActorIDLength {
			span.SetAttributes(attribute.String("actor_id", actor))
		}

		c.Next()

		status := c.Writer.Status()
		if code, ok := c.Get(ErrorCodeKey); ok {
			span.SetAttributes(attribute.String("error.code", code.(string)))
		}
		if status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	}
}
