package telemetry

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormUndepositedCashProvider aggregates live, undeposited cash transactions
// per instrument kind.
type GormUndepositedCashProvider struct {
	db *gorm.DB
}

func NewGormUndepositedCashProvider(db *gorm.DB) *GormUndepositedCashProvider {
	return &GormUndepositedCashProvider{db: db}
}

// UndepositedByKind implements UndepositedCashProvider.
func (p *GormUndepositedCashProvider) UndepositedByKind(ctx context.Context) ([]UndepositedCash, error) {
	type row struct {
		Kind   string          `gorm:"column:kind"`
		Count  int64           `gorm:"column:cnt"`
		Amount decimal.Decimal `gorm:"column:amount"`
	}

	var rows []row
	err := p.db.WithContext(ctx).
		Table("cash_transactions AS ct").
		Select("pi.kind AS kind, COUNT(*) AS cnt, COALESCE(SUM(ct.amount), 0) AS amount").
		Joins("JOIN payment_instruments pi ON pi.id = ct.instrument_id").
		Where("ct.cancelled = ? AND ct.deposit_id IS NULL", false).
		Group("pi.kind").
		Order("pi.kind").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]UndepositedCash, 0, len(rows))
	for _, r := range rows {
		out = append(out, UndepositedCash{Kind: r.Kind, Count: r.Count, Amount: r.Amount})
	}
	return out, nil
}
