package telemetry_test

import (
	"context"
	"testing"

	"github.com/propledger/backend/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
)

func newRecordingMetrics(t *testing.T, provider telemetry.UndepositedCashProvider) (*telemetry.BusinessMetrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	bm, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
		Meter:               mp.Meter("test"),
		Logger:              zap.NewNop(),
		UndepositedProvider: provider,
	})
	require.NoError(t, err)
	return bm, reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Aggregation {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	out := map[string]metricdata.Aggregation{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m.Data
		}
	}
	return out
}

func sumOf(t *testing.T, data metricdata.Aggregation, attrs ...attribute.KeyValue) int64 {
	t.Helper()
	sum, ok := data.(metricdata.Sum[int64])
	require.True(t, ok, "expected int64 sum, got %T", data)
	want := attribute.NewSet(attrs...)
	for _, dp := range sum.DataPoints {
		if dp.Attributes.Equals(&want) {
			return dp.Value
		}
	}
	return 0
}

func TestNewBusinessMetrics_NilMeter(t *testing.T) {
	bm, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{})
	assert.ErrorIs(t, err, telemetry.ErrMeterNil)
	assert.Nil(t, bm)
}

func TestBusinessMetrics_NilReceiverIsNoop(t *testing.T) {
	var bm *telemetry.BusinessMetrics
	ctx := context.Background()

	assert.NotPanics(t, func() {
		bm.RecordBillablesGenerated(ctx, 3, 1)
		bm.RecordBillablesCancelled(ctx, "rollback", 2)
		bm.RecordReceipt(ctx, "CASH", decimal.NewFromInt(10))
		bm.RecordReceiptCancelled(ctx)
		bm.RecordDeposit(ctx, 2, decimal.NewFromInt(20))
		bm.RecordTransfer(ctx, decimal.NewFromInt(5))
		bm.RecordExpense(ctx, decimal.NewFromInt(5))
		bm.CollectUndeposited(ctx)
		bm.StartPeriodicCollection(ctx, 0)
		bm.Stop()
	})
}

func TestBusinessMetrics_RecordsInCents(t *testing.T) {
	bm, reader := newRecordingMetrics(t, nil)
	ctx := context.Background()

	bm.RecordBillablesGenerated(ctx, 3, 1)
	bm.RecordBillablesCancelled(ctx, "rollback", 2)
	bm.RecordBillablesCancelled(ctx, "single", 0)
	bm.RecordReceipt(ctx, "CASH", decimal.RequireFromString("100.25"))
	bm.RecordReceipt(ctx, "CASH", decimal.RequireFromString("0.75"))
	bm.RecordDeposit(ctx, 2, decimal.RequireFromString("101"))
	bm.RecordExpense(ctx, decimal.RequireFromString("12.345"))

	data := collect(t, reader)
	assert.Equal(t, int64(3), sumOf(t, data["ledger_billables_generated_total"]))
	assert.Equal(t, int64(1), sumOf(t, data["ledger_billables_skipped_total"]))
	assert.Equal(t, int64(2), sumOf(t, data["ledger_billables_cancelled_total"], telemetry.AttrCancelSource.String("rollback")))
	assert.Equal(t, int64(2), sumOf(t, data["ledger_receipts_total"], telemetry.AttrInstrumentKind.String("CASH")))
	assert.Equal(t, int64(10100), sumOf(t, data["ledger_receipts_amount_total"], telemetry.AttrInstrumentKind.String("CASH")))
	assert.Equal(t, int64(1), sumOf(t, data["ledger_deposits_total"]))
	assert.Equal(t, int64(10100), sumOf(t, data["ledger_deposits_amount_total"]))
	assert.Equal(t, int64(2), sumOf(t, data["ledger_deposited_receipts_total"]))
	assert.Equal(t, int64(1235), sumOf(t, data["ledger_expenses_amount_total"]))
}

type stubUndeposited struct {
	rows []telemetry.UndepositedCash
	err  error
}

func (s stubUndeposited) UndepositedByKind(context.Context) ([]telemetry.UndepositedCash, error) {
	return s.rows, s.err
}

func TestBusinessMetrics_CollectUndeposited(t *testing.T) {
	bm, reader := newRecordingMetrics(t, stubUndeposited{rows: []telemetry.UndepositedCash{
		{Kind: "CASH", Count: 2, Amount: decimal.RequireFromString("270.25")},
	}})

	bm.CollectUndeposited(context.Background())

	data := collect(t, reader)
	gauge, ok := data["ledger_undeposited_amount"].(metricdata.Gauge[int64])
	require.True(t, ok)
	require.Len(t, gauge.DataPoints, 1)
	assert.Equal(t, int64(27025), gauge.DataPoints[0].Value)

	count, ok := data["ledger_undeposited_receipts"].(metricdata.Gauge[int64])
	require.True(t, ok)
	require.Len(t, count.DataPoints, 1)
	assert.Equal(t, int64(2), count.DataPoints[0].Value)
}
