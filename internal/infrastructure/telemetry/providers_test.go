package telemetry_test

import (
	"context"
	"testing"

	"github.com/propledger/backend/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestProviders_DisabledAreNoop(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop()

	tp, err := telemetry.NewTracerProvider(ctx, telemetry.Config{Enabled: false}, log)
	require.NoError(t, err)
	assert.False(t, tp.IsEnabled())
	assert.NotNil(t, tp.Tracer("x"))
	assert.NoError(t, tp.EnableSpanProfiles())
	assert.False(t, tp.IsSpanProfilesEnabled())
	assert.NoError(t, tp.ForceFlush(ctx))
	assert.NoError(t, tp.Shutdown(ctx))

	mp, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{Enabled: false}, log)
	require.NoError(t, err)
	assert.False(t, mp.IsEnabled())
	assert.NotNil(t, mp.Meter("x"))
	assert.NoError(t, mp.Shutdown(ctx))

	lp, err := telemetry.NewLoggerProvider(ctx, telemetry.LogsConfig{Enabled: false}, log)
	require.NoError(t, err)
	assert.False(t, lp.IsEnabled())
	assert.NoError(t, lp.Shutdown(ctx))

	p, err := telemetry.NewProfiler(telemetry.ProfilerConfig{Enabled: false}, log)
	require.NoError(t, err)
	assert.False(t, p.IsEnabled())
	assert.NoError(t, p.Stop())
	assert.NoError(t, p.Stop())
}

func TestNewProfiler_RequiresAddressAndName(t *testing.T) {
	_, err := telemetry.NewProfiler(telemetry.ProfilerConfig{Enabled: true, ApplicationName: "ledger"}, zap.NewNop())
	assert.Error(t, err)

	_, err = telemetry.NewProfiler(telemetry.ProfilerConfig{Enabled: true, ServerAddress: "http://pyroscope:4040"}, zap.NewNop())
	assert.Error(t, err)
}

func TestBridgeLogger_DisabledReturnsBase(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	lp, err := telemetry.NewLoggerProvider(context.Background(), telemetry.LogsConfig{}, zap.NewNop())
	require.NoError(t, err)

	bridged := telemetry.BridgeLogger(base, lp, "ledger")
	assert.Same(t, base, bridged)

	bridged.Info("hello")
	assert.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.NewNopCore(), telemetry.NewZapOTELCore("ledger", nil, zapcore.InfoLevel))
}

func TestRegisterDBTracing(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	require.NoError(t, telemetry.RegisterDBTracing(db, telemetry.DefaultDBTracingConfig(), zap.NewNop()))
	assert.NotContains(t, db.Config.Plugins, "otelgorm")

	cfg := telemetry.DefaultDBTracingConfig()
	cfg.Enabled = true
	require.NoError(t, telemetry.RegisterDBTracing(db, cfg, zap.NewNop()))
	assert.Contains(t, db.Config.Plugins, "otelgorm")

	var n int
	require.NoError(t, db.Raw("SELECT 1").Scan(&n).Error)
	assert.Equal(t, 1, n)
}
