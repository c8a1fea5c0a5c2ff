package services

import (
	"errors"

	"soundthread/internal/metrics"
	"soundthread/internal/store"
	"soundthread/internal/validation"
)

// Outcome is the result of a use case: either a value or the violations
// that stopped it. Backing-store failures travel separately as errors.
type Outcome[T any] struct {
	Value      T
	Violations validation.Violations
}

func (o Outcome[T]) OK() bool {
	return o.Violations.Empty()
}

func accepted[T any](value T) Outcome[T] {
	return Outcome[T]{Value: value}
}

func rejected[T any](useCase string, v validation.Violations) Outcome[T] {
	metrics.Violations.WithLabelValues(useCase).Inc()
	return Outcome[T]{Violations: v}
}

// failed counts store faults and passes err through.
func failed(useCase string, err error) error {
	if errors.Is(err, store.ErrStoreFault) {
		metrics.StoreFaults.WithLabelValues(useCase).Inc()
	}
	return err
}

// optional turns ErrNotFound into a nil result so validators can judge
// absence themselves.
func optional[T any](v *T, err error) (*T, error) {
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	return v, err
}
