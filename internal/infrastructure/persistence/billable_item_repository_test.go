package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/propledger/backend/internal/domain/billing"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var itemColumns = []string{"id", "created_at", "updated_at", "version", "person_id", "unit_id", "concept_id",
	"period", "due_date", "base_amount", "balance_pending", "status", "auto_pay_blocked", "cancel_reason", "cancelled_at"}

func newTestItem(t *testing.T) *billing.BillableItem {
	t.Helper()
	period := valueobject.MustParsePeriod("2025-03")
	item, err := billing.NewBillableItem(uuid.New(), nil, uuid.New(), period, decimal.NewFromInt(150), period.DayOf(10))
	require.NoError(t, err)
	return item
}

func TestGormBillableItemRepository_Create(t *testing.T) {
	t.Run("unique violation becomes duplicate obligation", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormBillableItemRepository(db)

		mock.ExpectExec(`INSERT INTO "billable_items"`).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "ux_billable_items_active_tuple"})

		err := repo.Create(context.Background(), newTestItem(t))

		assert.Equal(t, shared.CodeDuplicateObligation, shared.ErrorCode(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("check violation becomes concurrent modification", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormBillableItemRepository(db)

		mock.ExpectExec(`INSERT INTO "billable_items"`).
			WillReturnError(&pgconn.PgError{Code: "23514", ConstraintName: "chk_billable_items_balance"})

		err := repo.Create(context.Background(), newTestItem(t))

		assert.Equal(t, shared.CodeConcurrentModification, shared.ErrorCode(err))
	})
}

func TestGormBillableItemRepository_FindOutstandingByUnit(t *testing.T) {
	db, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()
	repo := NewGormBillableItemRepository(db)

	unitID := uuid.New()
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "billable_items" WHERE unit_id = \$1 AND status = \$2 AND balance_pending > 0 ORDER BY due_date ASC,\s*period ASC,\s*id ASC`).
		WithArgs(unitID, "PENDING").
		WillReturnRows(sqlmock.NewRows(itemColumns).
			AddRow(uuid.NewString(), now, now, 2, nil, unitID.String(), uuid.NewString(),
				"2025-02", time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), "100.0000", "40.0000", "PENDING", false, "", nil))

	items, err := repo.FindOutstandingByUnit(context.Background(), unitID)

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "2025-02", items[0].Period.String())
	assert.True(t, decimal.NewFromInt(40).Equal(items[0].BalancePending))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormBillableItemRepository_FindAll_OverdueIsDerived(t *testing.T) {
	db, mock, mockDB := newMockGormDB(t)
	defer mockDB.Close()
	repo := NewGormBillableItemRepository(db)

	now := time.Date(2025, 3, 20, 14, 0, 0, 0, time.UTC)
	today := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	status := billing.ItemStatusOverdue

	mock.ExpectQuery(`SELECT count\(\*\) FROM "billable_items" WHERE status = \$1 AND balance_pending > 0 AND due_date < \$2`).
		WithArgs("PENDING", today).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "billable_items" WHERE status = \$1 AND balance_pending > 0 AND due_date < \$2 ORDER BY created_at DESC`).
		WithArgs("PENDING", today, 20).
		WillReturnRows(sqlmock.NewRows(itemColumns))

	items, total, err := repo.FindAll(context.Background(), billing.BillableItemFilter{
		Filter: shared.Filter{Page: 1, PageSize: 20},
		Status: &status,
		Now:    now,
	})

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormBillableItemRepository_CancelPendingBulk(t *testing.T) {
	t.Run("scopes by unit type through a subquery", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormBillableItemRepository(db)

		mock.ExpectExec(`UPDATE "billable_items" SET .*"balance_pending"=\$\d+.* WHERE \(?period = \$\d+ AND concept_id = \$\d+ AND status = \$\d+\)? AND unit_id IN \(SELECT "?id"? FROM "units" WHERE unit_type = \$\d+\)`).
			WillReturnResult(sqlmock.NewResult(0, 3))

		count, err := repo.CancelPendingBulk(context.Background(), billing.BulkCancelCriteria{
			Period:    valueobject.MustParsePeriod("2025-03"),
			ConceptID: uuid.New(),
			UnitType:  "APARTMENT",
		}, "wrong amount loaded", time.Now())

		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("without unit type touches every unit", func(t *testing.T) {
		db, mock, mockDB := newMockGormDB(t)
		defer mockDB.Close()
		repo := NewGormBillableItemRepository(db)

		mock.ExpectExec(`UPDATE "billable_items" SET .*"balance_pending"=\$\d+.* WHERE period = \$\d+ AND concept_id = \$\d+ AND status = \$\d+$`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		count, err := repo.CancelPendingBulk(context.Background(), billing.BulkCancelCriteria{
			Period:    valueobject.MustParsePeriod("2025-03"),
			ConceptID: uuid.New(),
		}, "second run", time.Now())

		require.NoError(t, err)
		assert.Zero(t, count)
	})
}
