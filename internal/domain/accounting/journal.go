package accounting

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// SourceType identifies the operation that produced a journal entry
type SourceType string

const (
	SourceReceipt         SourceType = "RECEIPT"
	SourceReceiptReversal SourceType = "RECEIPT_REVERSAL"
	SourceDeposit         SourceType = "DEPOSIT"
	SourceTransfer        SourceType = "TRANSFER"
	SourceExpense         SourceType = "EXPENSE"
)

// IsValid checks if the source type is known
func (s SourceType) IsValid() bool {
	switch s {
	case SourceReceipt, SourceReceiptReversal, SourceDeposit, SourceTransfer, SourceExpense:
		return true
	}
	return false
}

// Posting is one leg of a journal entry. Exactly one of Debit and Credit is positive.
type Posting struct {
	ID          uuid.UUID       `json:"id"`
	EntryID     uuid.UUID       `json:"entry_id"`
	AccountID   uuid.UUID       `json:"account_id"`
	AccountCode string          `json:"account_code"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	LineNo      int             `json:"line_no"`
}

// JournalLine is the input for one posting
type JournalLine struct {
	Account *Account
	Debit   decimal.Decimal
	Credit  decimal.Decimal
}

// Debit builds a debit line
func Debit(account *Account, amount decimal.Decimal) JournalLine {
	return JournalLine{Account: account, Debit: amount, Credit: decimal.Zero}
}

// Credit builds a credit line
func Credit(account *Account, amount decimal.Decimal) JournalLine {
	return JournalLine{Account: account, Debit: decimal.Zero, Credit: amount}
}

// JournalEntry is a balanced set of postings. Entries are immutable once
// created; corrections are made with a reversing entry.
type JournalEntry struct {
	shared.BaseAggregateRoot
	Date        time.Time  `json:"date"`
	Description string     `json:"description"`
	SourceType  SourceType `json:"source_type"`
	SourceID    uuid.UUID  `json:"source_id"`
	Postings    []Posting  `json:"postings"`
}

// NewJournalEntry validates and builds a balanced entry
func NewJournalEntry(date time.Time, description string, sourceType SourceType, sourceID uuid.UUID, lines ...JournalLine) (*JournalEntry, error) {
	if date.IsZero() {
		return nil, shared.NewValidationError("Journal entry date is required")
	}
	if !sourceType.IsValid() {
		return nil, shared.NewValidationError(fmt.Sprintf("Unknown journal source type %q", sourceType))
	}
	if len(lines) < 2 {
		return nil, shared.NewValidationError("Journal entry needs at least two postings")
	}

	je := &JournalEntry{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Date:              date,
		Description:       strings.TrimSpace(description),
		SourceType:        sourceType,
		SourceID:          sourceID,
		Postings:          make([]Posting, 0, len(lines)),
	}

	for i, line := range lines {
		if line.Account == nil {
			return nil, shared.NewNotFoundError("Posting account")
		}
		if err := line.Account.EnsurePostable(); err != nil {
			return nil, err
		}
		debitSet := line.Debit.IsPositive()
		creditSet := line.Credit.IsPositive()
		if debitSet == creditSet || line.Debit.IsNegative() || line.Credit.IsNegative() {
			return nil, shared.NewValidationError(
				fmt.Sprintf("Posting %d on %s must carry exactly one positive side", i+1, line.Account.Code))
		}
		je.Postings = append(je.Postings, Posting{
			ID:          uuid.New(),
			EntryID:     je.ID,
			AccountID:   line.Account.ID,
			AccountCode: line.Account.Code,
			Debit:       line.Debit,
			Credit:      line.Credit,
			LineNo:      i + 1,
		})
	}

	if err := je.CheckBalanced(); err != nil {
		return nil, err
	}
	je.AddDomainEvent(NewJournalEntryPostedEvent(je))
	return je, nil
}

// Reverse creates an entry that mirrors every posting of je with the sides swapped
func (je *JournalEntry) Reverse(date time.Time, description string, sourceType SourceType, sourceID uuid.UUID) *JournalEntry {
	rev := &JournalEntry{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Date:              date,
		Description:       description,
		SourceType:        sourceType,
		SourceID:          sourceID,
		Postings:          make([]Posting, 0, len(je.Postings)),
	}
	for i, p := range je.Postings {
		rev.Postings = append(rev.Postings, Posting{
			ID:          uuid.New(),
			EntryID:     rev.ID,
			AccountID:   p.AccountID,
			AccountCode: p.AccountCode,
			Debit:       p.Credit,
			Credit:      p.Debit,
			LineNo:      i + 1,
		})
	}
	rev.AddDomainEvent(NewJournalEntryPostedEvent(rev))
	return rev
}

// Totals returns the debit and credit sums
func (je *JournalEntry) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, p := range je.Postings {
		debit = debit.Add(p.Debit)
		credit = credit.Add(p.Credit)
	}
	return debit, credit
}

// CheckBalanced verifies that debits equal credits
func (je *JournalEntry) CheckBalanced() error {
	debit, credit := je.Totals()
	if !debit.Equal(credit) {
		return shared.NewValidationError(fmt.Sprintf("Journal entry is unbalanced: debit %s, credit %s",
			debit.StringFixed(2), credit.StringFixed(2)))
	}
	return nil
}
