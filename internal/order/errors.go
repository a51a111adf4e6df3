package order

import "errors"

// Every failure aborts the whole placement; no partial order rows are ever
// written. Callers match with errors.Is.
var (
	ErrEmptyOrder      = errors.New("order has no items")
	ErrInvalidQuantity = errors.New("quantity must be > 0")
	ErrProductNotFound = errors.New("product not found")
	ErrOrderNotFound   = errors.New("order not found")
	ErrPersistence     = errors.New("order storage failure")
)
