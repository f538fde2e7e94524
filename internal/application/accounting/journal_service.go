package accounting

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/accounting"
	"github.com/propledger/backend/internal/domain/shared"
)

// JournalService exposes the read side of the journal
type JournalService struct {
	journalRepo accounting.JournalRepository
}

// NewJournalService creates a new JournalService
func NewJournalService(journalRepo accounting.JournalRepository) *JournalService {
	return &JournalService{journalRepo: journalRepo}
}

// List lists journal entries, newest first
func (s *JournalService) List(ctx context.Context, filter JournalListFilter) (shared.Paginated[JournalEntryResponse], error) {
	f := accounting.JournalFilter{
		Filter: shared.Filter{
			Page:     filter.Page,
			PageSize: filter.PageSize,
		},
	}
	var err error
	if f.SourceID, err = parseOptionalID(filter.SourceID, "source_id"); err != nil {
		return shared.Paginated[JournalEntryResponse]{}, err
	}
	if f.AccountID, err = parseOptionalID(filter.AccountID, "account_id"); err != nil {
		return shared.Paginated[JournalEntryResponse]{}, err
	}
	if filter.SourceType != "" {
		st := accounting.SourceType(strings.ToUpper(filter.SourceType))
		if !st.IsValid() {
			return shared.Paginated[JournalEntryResponse]{}, shared.NewValidationError("Unknown source type " + filter.SourceType)
		}
		f.SourceType = &st
	}

	entries, total, err := s.journalRepo.FindAll(ctx, f)
	if err != nil {
		return shared.Paginated[JournalEntryResponse]{}, err
	}
	out := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		out[i] = toJournalEntryResponse(&entries[i])
	}
	return shared.NewPaginated(out, total, f.Page, f.Limit()), nil
}

func parseOptionalID(s, field string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, shared.NewValidationError(field + " must be a UUID")
	}
	return &id, nil
}

// GetByID gets a journal entry with its postings
func (s *JournalService) GetByID(ctx context.Context, id uuid.UUID) (*JournalEntryResponse, error) {
	entry, err := s.journalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, shared.NewNotFoundError("Journal entry")
	}
	resp := toJournalEntryResponse(entry)
	return &resp, nil
}
