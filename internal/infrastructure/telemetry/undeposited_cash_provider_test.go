package telemetry_test

import (
	"context"
	"testing"

	"github.com/propledger/backend/internal/infrastructure/telemetry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGormUndepositedCashProvider(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)

	stmts := []string{
		`CREATE TABLE payment_instruments (id TEXT PRIMARY KEY, kind TEXT NOT NULL)`,
		`CREATE TABLE cash_transactions (id TEXT PRIMARY KEY, instrument_id TEXT NOT NULL,
			amount DECIMAL(18,4) NOT NULL, cancelled BOOLEAN NOT NULL, deposit_id TEXT)`,
		`INSERT INTO payment_instruments VALUES ('i-cash', 'CASH'), ('i-qr', 'QR')`,
		`INSERT INTO cash_transactions VALUES
			('t1', 'i-cash', 150.00, false, NULL),
			('t2', 'i-cash', 120.25, false, NULL),
			('t3', 'i-cash', 99.00, true, NULL),
			('t4', 'i-cash', 50.00, false, 'd1'),
			('t5', 'i-qr', 10.00, false, NULL)`,
	}
	for _, s := range stmts {
		require.NoError(t, db.Exec(s).Error)
	}

	rows, err := telemetry.NewGormUndepositedCashProvider(db).UndepositedByKind(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "CASH", rows[0].Kind)
	assert.Equal(t, int64(2), rows[0].Count)
	assert.True(t, decimal.RequireFromString("270.25").Equal(rows[0].Amount))
	assert.Equal(t, "QR", rows[1].Kind)
	assert.Equal(t, int64(1), rows[1].Count)
}
