package service

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the service layer. Handlers map these to HTTP
// responses with errors.Is.
var (
	ErrNotFound            = errors.New("record not found")
	ErrValidation          = errors.New("validation failed")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrProductNotAvailable = errors.New("product not available")
	ErrOrderStatusInvalid  = errors.New("invalid order status")
	ErrOrderTotalMismatch  = errors.New("order total does not match line items")
	ErrInvalidOrderItem    = errors.New("invalid order item")
	ErrCategoryInUse       = errors.New("category has products")
	ErrNameExists          = errors.New("name already exists")
	ErrSKUExists           = errors.New("sku already exists")
)

// PartialOrderError reports an order that was committed before one of its
// line items failed to persist. The order exists with ItemsCreated of the
// requested items; the caller decides whether to retry or reconcile.
type PartialOrderError struct {
	OrderID      uint
	ItemsCreated int
	Err          error
}

func (e *PartialOrderError) Error() string {
	return fmt.Sprintf("order %d created with %d of its items: %v", e.OrderID, e.ItemsCreated, e.Err)
}

func (e *PartialOrderError) Unwrap() error {
	return e.Err
}
