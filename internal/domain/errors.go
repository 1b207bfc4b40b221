package domain

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by stores and services. Handlers translate these
// into HTTP status codes; nothing below this layer writes responses.
var (
	ErrValidation         = errors.New("validation failed")
	ErrNotFound           = errors.New("not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPersistence        = errors.New("persistence failure")
)

// ValidationError wraps ErrValidation with the reason shown to the caller
func ValidationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// PersistenceError wraps a driver or transaction error so callers can match
// on ErrPersistence without knowing the underlying database library
func PersistenceError(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}

// InsufficientStockError names the product whose stock cannot cover the
// requested quantity at checkout time.
type InsufficientStockError struct {
	ProductID   uint
	ProductName string
	Stock       int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.ProductName, e.Requested, e.Stock)
}
