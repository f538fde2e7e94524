package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return recorder
}

func attrMap(kvs []attribute.KeyValue) map[string]string {
	m := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		m[string(kv.Key)] = kv.Value.Emit()
	}
	return m
}

func TestStartServiceSpan_NamesAndAttributes(t *testing.T) {
	recorder := withRecorder(t)

	ctx, span := StartServiceSpan(context.Background(), "billing", "generate_global",
		WithAttribute("period", "2025-03"))
	SetAttributes(span, "created", 3, "skipped", int64(1), 42, "ignored", "amount", decimal.RequireFromString("220"))
	assert.NotEmpty(t, GetTraceID(ctx))
	assert.NotEmpty(t, GetSpanID(ctx))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "billing.generate_global", ended[0].Name())

	attrs := attrMap(ended[0].Attributes())
	assert.Equal(t, "2025-03", attrs["period"])
	assert.Equal(t, "3", attrs["created"])
	assert.Equal(t, "1", attrs["skipped"])
	assert.Equal(t, "220.00", attrs["amount"])
	assert.NotContains(t, attrs, "ignored")
}

func TestRecordError_SetsStatus(t *testing.T) {
	recorder := withRecorder(t)

	_, span := StartSpan(context.Background(), "treasury.deposit")
	RecordError(span, nil)
	RecordError(span, errors.New("already deposited"))
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "already deposited", ended[0].Status().Description)
	assert.Len(t, ended[0].Events(), 1)
}

func TestTraceIDs_EmptyWithoutSpan(t *testing.T) {
	assert.Empty(t, GetTraceID(context.Background()))
	assert.Empty(t, GetSpanID(context.Background()))
}

func TestSanitizeLabels(t *testing.T) {
	long := make([]byte, MaxLabelValueLength+10)
	for i := range long {
		long[i] = 'x'
	}

	pairs := sanitizeLabels(map[string]string{
		"route":      "/api/v1/deposits",
		"request_id": "abc",
		" job ":      "generate",
		"operation":  string(long),
		"method":     "",
	})

	require.Len(t, pairs, 6)
	assert.Equal(t, []string{"job", "generate", "operation"}, pairs[:3])
	assert.Len(t, pairs[3], MaxLabelValueLength)
	assert.Equal(t, []string{"route", "/api/v1/deposits"}, pairs[4:])
}

func TestWithProfilingLabels_RunsFunction(t *testing.T) {
	ran := 0
	WithProfilingLabels(context.Background(), nil, func(context.Context) { ran++ })
	WithProfilingLabels(context.Background(), JobLabels("billing_generation"), func(context.Context) { ran++ })
	assert.Equal(t, 2, ran)
}
