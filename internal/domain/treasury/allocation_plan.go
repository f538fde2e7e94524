package treasury

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/propledger/backend/internal/domain/billing"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// RequestedAllocation is a caller-chosen amount for one item
type RequestedAllocation struct {
	BillableItemID uuid.UUID
	Amount         decimal.Decimal
}

// PlannedAllocation is one step of a receipt application plan
type PlannedAllocation struct {
	Item   *billing.BillableItem
	Amount decimal.Decimal
}

// PlanSequential spreads amount over items in the given order, paying each in
// full before moving on. The last touched item may be paid partially. Items
// that are not outstanding are skipped. It fails with OVER_APPLICATION when
// the amount is larger than the total outstanding balance.
func PlanSequential(amount decimal.Decimal, items []*billing.BillableItem) ([]PlannedAllocation, error) {
	if !amount.IsPositive() {
		return nil, shared.NewValidationError("Receipt amount must be positive")
	}
	remaining := amount
	plan := make([]PlannedAllocation, 0, len(items))
	for _, item := range items {
		if remaining.IsZero() {
			break
		}
		if !item.IsOutstanding() {
			continue
		}
		share := decimal.Min(remaining, item.BalancePending)
		plan = append(plan, PlannedAllocation{Item: item, Amount: share})
		remaining = remaining.Sub(share)
	}
	if remaining.IsPositive() {
		return nil, shared.NewDomainError(shared.CodeOverApplication,
			fmt.Sprintf("Receipt amount %s exceeds the outstanding balance by %s",
				amount.StringFixed(2), remaining.StringFixed(2)))
	}
	return plan, nil
}

// PlanExplicit validates caller-chosen allocations against the items and the
// receipt amount. The requested amounts must add up to exactly amount.
func PlanExplicit(amount decimal.Decimal, requested []RequestedAllocation, items map[uuid.UUID]*billing.BillableItem) ([]PlannedAllocation, error) {
	total := decimal.Zero
	plan := make([]PlannedAllocation, 0, len(requested))
	seen := make(map[uuid.UUID]bool, len(requested))
	for _, r := range requested {
		if seen[r.BillableItemID] {
			return nil, shared.NewValidationError(fmt.Sprintf("Item %s is allocated twice", r.BillableItemID))
		}
		seen[r.BillableItemID] = true
		if !r.Amount.IsPositive() {
			return nil, shared.NewValidationError("Allocation amount must be positive")
		}
		item, ok := items[r.BillableItemID]
		if !ok {
			return nil, shared.NewNotFoundError(fmt.Sprintf("Billable item %s", r.BillableItemID))
		}
		if !item.IsOutstanding() {
			return nil, shared.NewDomainError(shared.CodeInvalidState,
				fmt.Sprintf("Billable item %s is %s and cannot receive payments", item.ID, item.Status))
		}
		if r.Amount.GreaterThan(item.BalancePending) {
			return nil, shared.NewDomainError(shared.CodeOverApplication,
				fmt.Sprintf("Allocation %s exceeds the pending balance %s of item %s",
					r.Amount.StringFixed(2), item.BalancePending.StringFixed(2), item.ID))
		}
		total = total.Add(r.Amount)
		plan = append(plan, PlannedAllocation{Item: item, Amount: r.Amount})
	}
	if total.GreaterThan(amount) {
		return nil, shared.NewDomainError(shared.CodeOverApplication,
			fmt.Sprintf("Requested allocations %s exceed the receipt amount %s", total.StringFixed(2), amount.StringFixed(2)))
	}
	if total.LessThan(amount) {
		return nil, shared.NewDomainError(shared.CodeOverApplication,
			fmt.Sprintf("Receipt amount %s is larger than the requested allocations %s", amount.StringFixed(2), total.StringFixed(2)))
	}
	return plan, nil
}
