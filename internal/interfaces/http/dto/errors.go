package dto

import (
	"net/http"

	"github.com/propledger/backend/internal/domain/shared"
)

// Transport-level error codes. Domain codes come from the shared package.
const (
	ErrCodeInvalidRequest   = "INVALID_REQUEST"
	ErrCodeInvalidID        = "INVALID_ID"
	ErrCodeDuplicateRequest = "DUPLICATE_REQUEST"
	ErrCodeRateLimited      = "RATE_LIMITED"
	ErrCodeRequestTooLarge  = "REQUEST_TOO_LARGE"
	ErrCodeForbidden        = "FORBIDDEN"
	ErrCodeInternal         = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// 400
	shared.CodeValidation:    http.StatusBadRequest,
	shared.CodeInvalidAmount: http.StatusBadRequest,
	ErrCodeInvalidRequest:    http.StatusBadRequest,
	ErrCodeInvalidID:         http.StatusBadRequest,

	ErrCodeForbidden:    http.StatusForbidden,
	shared.CodeNotFound: http.StatusNotFound,

	// 409
	shared.CodeDuplicateCode:          http.StatusConflict,
	shared.CodeDuplicateObligation:    http.StatusConflict,
	shared.CodeInvalidState:           http.StatusConflict,
	shared.CodeAlreadyDeposited:       http.StatusConflict,
	shared.CodeHasDependents:          http.StatusConflict,
	shared.CodeConcurrentModification: http.StatusConflict,
	ErrCodeDuplicateRequest:           http.StatusConflict,

	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,

	// 422
	shared.CodeInvalidAccountBinding: http.StatusUnprocessableEntity,
	shared.CodeOverApplication:       http.StatusUnprocessableEntity,
	shared.CodeSameInstrument:        http.StatusUnprocessableEntity,
	shared.CodeLimitExceeded:         http.StatusUnprocessableEntity,
	shared.CodeEmptySelection:        http.StatusUnprocessableEntity,

	ErrCodeRateLimited: http.StatusTooManyRequests,
	ErrCodeInternal:    http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes map to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
