package persistence

import (
	"strings"

	"github.com/propledger/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField maps a requested sort key to its column through the
// whitelist. Returns defaultColumn if the key is empty or unknown.
func ValidateSortField(sortField string, allowedFields map[string]string, defaultColumn string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultColumn
	}
	if column, ok := allowedFields[trimmed]; ok {
		return column
	}
	return defaultColumn
}

// applyPage orders and paginates a query. The id column is always appended
// as a tie-breaker so pages are stable.
func applyPage(query *gorm.DB, filter shared.Filter, allowedFields map[string]string, defaultColumn string) *gorm.DB {
	column := ValidateSortField(filter.OrderBy, allowedFields, defaultColumn)
	dir := ValidateSortOrder(filter.OrderDir)
	return query.
		Order(column + " " + dir).
		Order("id " + dir).
		Offset(filter.Offset()).
		Limit(filter.Limit())
}

// CommonSortFields contains fields common to every ledger table
var CommonSortFields = map[string]string{
	"id":         "id",
	"created_at": "created_at",
	"updated_at": "updated_at",
}

// BillableItemSortFields contains allowed sort fields for billable items
var BillableItemSortFields = map[string]string{
	"created_at":      "created_at",
	"updated_at":      "updated_at",
	"period":          "period",
	"due_date":        "due_date",
	"base_amount":     "base_amount",
	"balance_pending": "balance_pending",
	"status":          "status",
}

// CashTransactionSortFields contains allowed sort fields for receipts.
// "timestamp" is the API name of the recorded_at column.
var CashTransactionSortFields = map[string]string{
	"created_at": "created_at",
	"timestamp":  "recorded_at",
	"amount":     "amount",
}

// MovementSortFields contains allowed sort fields for deposits, transfers
// and expenses
var MovementSortFields = map[string]string{
	"created_at": "created_at",
	"date":       "date",
	"amount":     "amount",
}

// JournalSortFields contains allowed sort fields for journal entries
var JournalSortFields = map[string]string{
	"created_at":  "created_at",
	"date":        "date",
	"source_type": "source_type",
}
