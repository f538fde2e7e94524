// Package billing provides the receivables side of the ledger.
//
// A BillableItem is one charge of a Concept to a Unit for a Period. Its
// balance only moves down through allocations from cash transactions, and
// the (unit, concept, period) triple is unique among non-cancelled items.
//
// Key Aggregates:
//   - BillableItem: a charge with base amount, outstanding balance and status
//
// Value Objects:
//   - valueobject.Period: the calendar month an item bills for
//   - GenerationResult: created items and skipped units of a bulk run
//
// Items are created manually, by global generation over every active unit,
// or retroactively for one unit. PENDING items whose balance still equals the
// base amount can be cancelled singly or rolled back in bulk.
package billing
