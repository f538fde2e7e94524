// Package models contains GORM persistence models that map to database tables.
// Models are kept apart from domain entities so the domain stays free of ORM
// tags; each model carries a FromDomain/ToDomain pair used by the
// repositories.
//
// Structure:
//   - base.go: BaseModel and AggregateModel (version column)
//   - accounting.go: accounts, concepts, expense types, instruments, journal
//   - property.go: units and contracts
//   - billing.go: billable items
//   - treasury.go: receipts with allocations, deposits, transfers, expenses
package models
