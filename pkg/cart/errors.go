package cart

import "errors"

var (
	// ErrInvalidLine indicates a line with no product ID, a negative unit
	// price, or a quantity below one
	ErrInvalidLine = errors.New("cart.invalid_line")

	// ErrInvalidQuantity indicates a quantity update below one; the existing
	// quantity is left unchanged
	ErrInvalidQuantity = errors.New("cart.invalid_quantity")

	// ErrPersistFailed indicates the durable copy of the cart could not be
	// written; the in-memory state is rolled back to the last persisted one
	ErrPersistFailed = errors.New("cart.persist_failed")
)
