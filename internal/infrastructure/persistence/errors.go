package persistence

import (
	"errors"

	"github.com/propledger/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// errBoundsViolated is returned when a CHECK constraint rejects a write,
// e.g. a balance pushed below zero by a concurrent receipt
var errBoundsViolated = shared.NewDomainError(shared.CodeConcurrentModification,
	"The record changed concurrently and no longer accepts this amount")

// translateWriteError maps translated gorm errors to domain errors. A unique
// violation becomes onDuplicate when one is given.
func translateWriteError(err error, onDuplicate *shared.DomainError) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey) && onDuplicate != nil:
		return onDuplicate
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return errBoundsViolated
	default:
		return err
	}
}
