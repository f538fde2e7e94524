package telemetry

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// ErrMeterNil is returned by NewBusinessMetrics without a meter.
var ErrMeterNil = errors.New("business metrics: meter cannot be nil")

// BusinessMetrics counts ledger activity. All Record methods are safe on a nil
// receiver so services can run without metrics wired. Amounts are recorded in
// cents.
type BusinessMetrics struct {
	logger *zap.Logger

	billablesGenerated *Counter
	billablesSkipped   *Counter
	billablesCancelled *Counter
	receiptsTotal      *Counter
	receiptsAmount     *Counter
	receiptsCancelled  *Counter
	depositsTotal      *Counter
	depositsAmount     *Counter
	depositedReceipts  *Counter
	transfersAmount    *Counter
	expensesAmount     *Counter
	undepositedAmount  *Gauge
	undepositedCount   *Gauge

	undepositedProvider UndepositedCashProvider

	stopChan    chan struct{}
	stopOnce    sync.Once
	collectOnce sync.Once
}

// UndepositedCashProvider reports receipts still waiting for a deposit.
type UndepositedCashProvider interface {
	UndepositedByKind(ctx context.Context) ([]UndepositedCash, error)
}

// UndepositedCash aggregates pending receipts for one instrument kind.
type UndepositedCash struct {
	Kind   string
	Count  int64
	Amount decimal.Decimal
}

// BusinessMetricsConfig configures NewBusinessMetrics.
type BusinessMetricsConfig struct {
	Meter               metric.Meter
	Logger              *zap.Logger
	UndepositedProvider UndepositedCashProvider
}

// NewBusinessMetrics registers the ledger instruments on cfg.Meter.
func NewBusinessMetrics(cfg BusinessMetricsConfig) (*BusinessMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bm := &BusinessMetrics{
		logger:              logger,
		undepositedProvider: cfg.UndepositedProvider,
		stopChan:            make(chan struct{}),
	}

	counters := []struct {
		target **Counter
		name   string
		desc   string
		unit   string
	}{
		{&bm.billablesGenerated, "ledger_billables_generated_total", "Billable items created by generation runs", "{items}"},
		{&bm.billablesSkipped, "ledger_billables_skipped_total", "Units skipped by generation runs", "{units}"},
		{&bm.billablesCancelled, "ledger_billables_cancelled_total", "Billable items cancelled", "{items}"},
		{&bm.receiptsTotal, "ledger_receipts_total", "Cash transactions recorded", "{receipts}"},
		{&bm.receiptsAmount, "ledger_receipts_amount_total", "Cash received in cents", "{cents}"},
		{&bm.receiptsCancelled, "ledger_receipts_cancelled_total", "Cash transactions cancelled", "{receipts}"},
		{&bm.depositsTotal, "ledger_deposits_total", "Deposits created", "{deposits}"},
		{&bm.depositsAmount, "ledger_deposits_amount_total", "Deposited amount in cents", "{cents}"},
		{&bm.depositedReceipts, "ledger_deposited_receipts_total", "Receipts grouped into deposits", "{receipts}"},
		{&bm.transfersAmount, "ledger_transfers_amount_total", "Transferred amount in cents", "{cents}"},
		{&bm.expensesAmount, "ledger_expenses_amount_total", "Expense amount in cents", "{cents}"},
	}
	for _, c := range counters {
		counter, err := NewCounter(cfg.Meter, c.name, c.desc, c.unit)
		if err != nil {
			return nil, err
		}
		*c.target = counter
	}

	var err error
	bm.undepositedAmount, err = NewGauge(cfg.Meter, "ledger_undeposited_amount", "Undeposited cash in cents", "{cents}")
	if err != nil {
		return nil, err
	}
	bm.undepositedCount, err = NewGauge(cfg.Meter, "ledger_undeposited_receipts", "Receipts awaiting deposit", "{receipts}")
	if err != nil {
		return nil, err
	}
	return bm, nil
}

func toCents(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// RecordBillablesGenerated records the outcome of one generation run.
func (bm *BusinessMetrics) RecordBillablesGenerated(ctx context.Context, created, skipped int) {
	if bm == nil {
		return
	}
	bm.billablesGenerated.Add(ctx, int64(created))
	bm.billablesSkipped.Add(ctx, int64(skipped))
}

// RecordBillablesCancelled records count cancellations from source ("single" or "rollback").
func (bm *BusinessMetrics) RecordBillablesCancelled(ctx context.Context, source string, count int64) {
	if bm == nil || count <= 0 {
		return
	}
	bm.billablesCancelled.Add(ctx, count, AttrCancelSource.String(source))
}

// RecordReceipt records a cash transaction received through an instrument of kind.
func (bm *BusinessMetrics) RecordReceipt(ctx context.Context, kind string, amount decimal.Decimal) {
	if bm == nil {
		return
	}
	bm.receiptsTotal.Inc(ctx, AttrInstrumentKind.String(kind))
	bm.receiptsAmount.Add(ctx, toCents(amount), AttrInstrumentKind.String(kind))
}

func (bm *BusinessMetrics) RecordReceiptCancelled(ctx context.Context) {
	if bm == nil {
		return
	}
	bm.receiptsCancelled.Inc(ctx)
}

// RecordDeposit records a deposit of memberCount receipts.
func (bm *BusinessMetrics) RecordDeposit(ctx context.Context, memberCount int, amount decimal.Decimal) {
	if bm == nil {
		return
	}
	bm.depositsTotal.Inc(ctx)
	bm.depositsAmount.Add(ctx, toCents(amount))
	bm.depositedReceipts.Add(ctx, int64(memberCount))
}

func (bm *BusinessMetrics) RecordTransfer(ctx context.Context, amount decimal.Decimal) {
	if bm == nil {
		return
	}
	bm.transfersAmount.Add(ctx, toCents(amount))
}

func (bm *BusinessMetrics) RecordExpense(ctx context.Context, amount decimal.Decimal) {
	if bm == nil {
		return
	}
	bm.expensesAmount.Add(ctx, toCents(amount))
}

// StartPeriodicCollection samples the undeposited cash gauges every interval
// until Stop or ctx cancellation.
func (bm *BusinessMetrics) StartPeriodicCollection(ctx context.Context, interval time.Duration) {
	if bm == nil || bm.undepositedProvider == nil {
		return
	}
	bm.collectOnce.Do(func() {
		if interval <= 0 {
			interval = 5 * time.Minute
		}
		go bm.runPeriodicCollection(ctx, interval)
	})
}

func (bm *BusinessMetrics) runPeriodicCollection(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	bm.CollectUndeposited(ctx)
	for {
		select {
		case <-bm.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			bm.CollectUndeposited(ctx)
		}
	}
}

// CollectUndeposited samples the provider once.
func (bm *BusinessMetrics) CollectUndeposited(ctx context.Context) {
	if bm == nil || bm.undepositedProvider == nil {
		return
	}
	rows, err := bm.undepositedProvider.UndepositedByKind(ctx)
	if err != nil {
		bm.logger.Warn("Failed to collect undeposited cash", zap.Error(err))
		return
	}
	for _, r := range rows {
		bm.undepositedAmount.Record(ctx, toCents(r.Amount), AttrInstrumentKind.String(r.Kind))
		bm.undepositedCount.Record(ctx, r.Count, AttrInstrumentKind.String(r.Kind))
	}
}

// Stop ends periodic collection.
func (bm *BusinessMetrics) Stop() {
	if bm == nil {
		return
	}
	bm.stopOnce.Do(func() { close(bm.stopChan) })
}
