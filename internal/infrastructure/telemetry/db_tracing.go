package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig controls the otelgorm plugin.
type DBTracingConfig struct {
	Enabled         bool
	LogFullSQL      bool
	SlowQueryThresh time.Duration
	DBName          string
}

// DefaultDBTracingConfig returns a disabled config with query variables hidden.
func DefaultDBTracingConfig() DBTracingConfig {
	return DBTracingConfig{
		SlowQueryThresh: 200 * time.Millisecond,
		DBName:          "ledger",
	}
}

type queryStartKey struct{}

// RegisterDBTracing installs otelgorm on db and flags queries slower than the
// configured threshold on their span.
func RegisterDBTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		return nil
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(cfg.DBName)}
	if !cfg.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	thresh := cfg.SlowQueryThresh
	before := func(tx *gorm.DB) {
		if tx.Statement.Context != nil {
			tx.Statement.Context = context.WithValue(tx.Statement.Context, queryStartKey{}, time.Now())
		}
	}
	after := func(tx *gorm.DB) { markSlowQuery(tx, thresh) }

	cb := db.Callback()
	if err := cb.Create().Before("gorm:create").Register("ledger:query_start_create", before); err != nil {
		return err
	}
	if err := cb.Query().Before("gorm:query").Register("ledger:query_start_query", before); err != nil {
		return err
	}
	if err := cb.Update().Before("gorm:update").Register("ledger:query_start_update", before); err != nil {
		return err
	}
	if err := cb.Delete().Before("gorm:delete").Register("ledger:query_start_delete", before); err != nil {
		return err
	}
	if err := cb.Raw().Before("gorm:raw").Register("ledger:query_start_raw", before); err != nil {
		return err
	}
	if err := cb.Create().After("gorm:create").Register("ledger:slow_query_create", after); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register("ledger:slow_query_query", after); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register("ledger:slow_query_update", after); err != nil {
		return err
	}
	if err := cb.Delete().After("gorm:delete").Register("ledger:slow_query_delete", after); err != nil {
		return err
	}
	if err := cb.Raw().After("gorm:raw").Register("ledger:slow_query_raw", after); err != nil {
		return err
	}

	logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", cfg.LogFullSQL),
		zap.Duration("slow_query_threshold", thresh),
	)
	return nil
}

func markSlowQuery(tx *gorm.DB, thresh time.Duration) {
	ctx := tx.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	if tx.Error != nil && !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		RecordError(span, tx.Error)
	}
	start, ok := ctx.Value(queryStartKey{}).(time.Time)
	if !ok || thresh <= 0 {
		return
	}
	if elapsed := time.Since(start); elapsed > thresh {
		span.SetAttributes(
			attribute.Bool("db.slow_query", true),
			attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
		)
	}
}
