package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/propledger/backend/internal/domain/shared"
	"github.com/propledger/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

const (
	// IdempotencyKeyHeader is the optional header guarding retried POSTs
	IdempotencyKeyHeader = "Idempotency-Key"

	maxIdempotencyKeyLength = 200
)

// Idempotency rejects a repeated Idempotency-Key with 409 DUPLICATE_REQUEST.
// A key is claimed before the handler runs and released again when the
// handler does not answer 2xx, so a failed request can be retried. Requests
// without the header pass through. A store failure fails open.
func Idempotency(store shared.IdempotencyStore, ttl time.Duration, logger *zap.Logger) gin.HandlerFunc {
	if store == nil {
		return func(c *gin.Context) { c.Next() }
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLength {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeInvalidRequest, "Idempotency-Key is too long", GetRequestID(c)))
			return
		}

		scoped := c.Request.Method + " " + c.FullPath() + " " + key
		ctx := c.Request.Context()

		claimed, err := store.MarkProcessed(ctx, scoped, ttl)
		if err != nil {
			logger.Warn("Idempotency store unavailable, processing request",
				zap.String("request_id", GetRequestID(c)), zap.Error(err))
			c.Next()
			return
		}
		if !claimed {
			c.AbortWithStatusJSON(http.StatusConflict, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeDuplicateRequest,
				"A request with this Idempotency-Key was already accepted",
				GetRequestID(c),
			))
			return
		}

		c.Next()

		if status := c.Writer.Status(); status < 200 || status >= 300 {
			if err := store.Release(ctx, scoped); err != nil {
				logger.Warn("Failed to release idempotency key",
					zap.String("request_id", GetRequestID(c)), zap.Error(err))
			}
		}
	}
}
