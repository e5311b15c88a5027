package inventory

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	duplicate := error(&DuplicateIDError{ID: "P1"})
	notFound := error(&NotFoundError{ID: "P1"})
	invalidQty := error(&InvalidQuantityError{Quantity: -3})
	insufficient := error(&InsufficientStockError{ID: "P1", Requested: 10, Available: 4})

	testCases := []struct {
		name string
		err  error
		is   func(error) bool
	}{
		{"duplicate id", duplicate, IsDuplicateID},
		{"not found", notFound, IsNotFound},
		{"invalid quantity", invalidQty, IsInvalidQuantity},
		{"insufficient stock", insufficient, IsInsufficientStock},
	}
	all := []error{duplicate, notFound, invalidQty, insufficient}

	for i, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.is(tc.err) {
				t.Errorf("predicate rejects its own kind: %v", tc.err)
			}
			// each predicate matches exactly one kind
			for j, other := range all {
				if i != j && tc.is(other) {
					t.Errorf("predicate for %v also matches %v", tc.err, other)
				}
			}
			// matching survives wrapping
			wrapped := fmt.Errorf("stock operation failed: %w", tc.err)
			if !tc.is(wrapped) {
				t.Errorf("predicate misses wrapped error %v", wrapped)
			}
			if tc.is(errors.New("unrelated")) {
				t.Error("predicate matches an unrelated error")
			}
		})
	}
}

func TestErrorMessages(t *testing.T) {
	testCases := []struct {
		err  error
		want string
	}{
		{&DuplicateIDError{ID: "P1"}, `product "P1" already exists`},
		{&NotFoundError{ID: "P9"}, `product "P9" not found`},
		{&InvalidQuantityError{Quantity: 0}, "quantity must be positive, got 0"},
		{&InsufficientStockError{ID: "P1", Requested: 100, Available: 4}, `insufficient stock for "P1": requested 100, available 4`},
	}
	for _, tc := range testCases {
		if got := tc.err.Error(); got != tc.want {
			t.Errorf("Error() = %q, want %q", got, tc.want)
		}
	}
}
