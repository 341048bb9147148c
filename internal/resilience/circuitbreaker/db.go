package circuitbreaker

import (
	"context"
	"errors"
	"time"

	"highwaymetric/internal/domain/entity"
)

// DBConfig returns configuration for the database circuit breaker.
// It opens when at least 5 calls were counted in the current one-minute
// window and every one of them was a storage failure, then probes again
// after 30 seconds.
func DBConfig() Config {
	return Config{
		Name:             "database",
		MaxRequests:      3, // Allow 3 test requests in half-open state
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 1.0,
		MinRequests:      5,
		IsFailure:        IsStorageFailure,
	}
}

// NewDBCircuitBreaker creates the breaker that guards database transactions.
func NewDBCircuitBreaker() *CircuitBreaker {
	return New(DBConfig())
}

// IsStorageFailure reports whether err indicates a broken database rather than
// a rejected request. Domain outcomes and client cancellations do not count.
func IsStorageFailure(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, entity.ErrInvalidInput),
		errors.Is(err, entity.ErrNotFound),
		errors.Is(err, entity.ErrConflict),
		errors.Is(err, context.Canceled):
		return false
	}
	return true
}
