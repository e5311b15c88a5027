package inventory

import (
	"errors"
	"fmt"
)

// The expected failure kinds of catalog operations. All are local and
// recoverable: the core reports them to the caller and never logs, prompts
// or retries. Validation happens before anything is written, so a failed
// operation leaves both catalog and ledger unchanged.

// DuplicateIDError reports an attempt to add a product under an id that is
// already taken.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("product %q already exists", e.ID)
}

// NotFoundError reports an operation on an absent product id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("product %q not found", e.ID)
}

// InvalidQuantityError reports a non-positive quantity supplied to a stock
// operation.
type InvalidQuantityError struct {
	Quantity int
}

func (e *InvalidQuantityError) Error() string {
	return fmt.Sprintf("quantity must be positive, got %d", e.Quantity)
}

// InsufficientStockError reports a removal exceeding the quantity on hand.
type InsufficientStockError struct {
	ID        string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %q: requested %d, available %d",
		e.ID, e.Requested, e.Available)
}

// IsDuplicateID reports whether err is a DuplicateIDError.
func IsDuplicateID(err error) bool {
	var e *DuplicateIDError
	return errors.As(err, &e)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var e *NotFoundError
	return errors.As(err, &e)
}

// IsInvalidQuantity reports whether err is an InvalidQuantityError.
func IsInvalidQuantity(err error) bool {
	var e *InvalidQuantityError
	return errors.As(err, &e)
}

// IsInsufficientStock reports whether err is an InsufficientStockError.
func IsInsufficientStock(err error) bool {
	var e *InsufficientStockError
	return errors.As(err, &e)
}
