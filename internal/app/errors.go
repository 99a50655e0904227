package app

import (
	"errors"

	"github.com/jsamuelsen11/stageboard/internal/domain"
)

// classify passes domain-classified errors through and wraps everything else
// as a retryable storage failure for op.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if domain.IsDomainError(err) || errors.Is(err, domain.ErrUnavailable) {
		return err
	}
	return &domain.StorageError{Op: op, Err: err}
}
