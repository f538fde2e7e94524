package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
)

func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return sr
}

func spanAttr(s sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range s.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestTracing(t *testing.T) {
	sr := setupTestTracer(t)

	r := gin.New()
	r.Use(RequestID(), Tracing("ledger-test", true), SpanEnricher())
	r.GET("/api/v1/deposits/:id", func(c *gin.Context) {
		c.Set(ErrorCodeKey, "NOT_FOUND")
		c.Status(http.StatusNotFound)
	})
	r.GET("/api/v1/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })
	r.GET("/health", okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/deposits/42", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	req.Header.Set(ActorIDHeader, "actor-1")
	serve(r, req)
	serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/boom", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/health", nil))

	spans := sr.Ended()
	require.Len(t, spans, 2, "health checks are not traced")

	v, ok := spanAttr(spans[0], "request_id")
	require.True(t, ok)
	assert.Equal(t, "req-7", v.AsString())
	v, _ = spanAttr(spans[0], "actor_id")
	assert.Equal(t, "actor-1", v.AsString())
	v, _ = spanAttr(spans[0], "error.code")
	assert.Equal(t, "NOT_FOUND", v.AsString())
	assert.NotEqual(t, codes.Error, spans[0].Status().Code)

	assert.Equal(t, codes.Error, spans[1].Status().Code)
}

func TestTracing_Disabled(t *testing.T) {
	sr := setupTestTracer(t)

	r := gin.New()
	r.Use(Tracing("ledger-test", false), SpanEnricher())
	r.GET("/x", okHandler)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, sr.Ended())
}

func TestHTTPMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	r := gin.New()
	r.Use(HTTPMetricsWithMeter(mp.Meter("test"), zap.NewNop()))
	r.GET("/api/v1/accounts/:id", okHandler)

	serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/accounts/1", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/accounts/2", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var total metricdata.Sum[int64]
	found := false
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == "http_server_request_total" {
				total = m.Data.(metricdata.Sum[int64])
				found = true
			}
		}
	}
	require.True(t, found)

	byRoute := map[string]int64{}
	for _, dp := range total.DataPoints {
		route, _ := dp.Attributes.Value("http.route")
		byRoute[route.AsString()] += dp.Value
	}
	assert.Equal(t, int64(2), byRoute["/api/v1/accounts/:id"])
	assert.Equal(t, int64(1), byRoute["unmatched"])
}

func TestHTTPMetrics_DisabledProvider(t *testing.T) {
	r := gin.New()
	r.Use(HTTPMetrics(nil, nil))
	r.GET("/x", okHandler)
	assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/x", nil)).Code)
}

func TestProfiling(t *testing.T) {
	r := gin.New()
	r.Use(Profiling(true))
	r.GET("/api/v1/billables/:id/cancel", okHandler)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/api/v1/billables/1/cancel", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestResourceOf(t *testing.T) {
	assert.Equal(t, "billables", resourceOf("/api/v1/billables/:id/cancel"))
	assert.Equal(t, "deposits", resourceOf("/api/v1/deposits"))
	assert.Equal(t, "", resourceOf("/api/v1/:id"))
}
