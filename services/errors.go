package services

import (
	"errors"
	"fmt"

	"go-resto-manager/models"
)

var (
	ErrTableNotFound = errors.New("table not found")
	ErrOrderNotFound = errors.New("order not found")
	ErrEmptyOrder    = errors.New("order must contain at least one item")
	// ErrDuplicateSale is defensive: the engine swallows it as a no-op
	// when the unique index rejects a second sale for the same order.
	ErrDuplicateSale = errors.New("sale already recorded for this order")
)

// ProductUnavailableError names the exact line item the customer cannot
// order so the client can point at it.
type ProductUnavailableError struct {
	ProductID uint
	Name      string
	Reason    string
}

func (e *ProductUnavailableError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("product %d is unavailable: %s", e.ProductID, e.Reason)
	}
	return fmt.Sprintf("product %q is unavailable: %s", e.Name, e.Reason)
}

// InvalidTransitionError reports both sides of a rejected status move.
type InvalidTransitionError struct {
	From models.OrderStatus
	To   models.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order transition from %q to %q", e.From, e.To)
}

// InvalidOrderLineError covers malformed line items (quantity < 1).
type InvalidOrderLineError struct {
	ProductID uint
	Quantity  int
}

func (e *InvalidOrderLineError) Error() string {
	return fmt.Sprintf("invalid quantity %d for product %d", e.Quantity, e.ProductID)
}

// PaymentMethodError rejects unknown or disabled payment methods.
type PaymentMethodError struct {
	Method models.PaymentMethod
}

func (e *PaymentMethodError) Error() string {
	return fmt.Sprintf("payment method %q is not accepted", e.Method)
}
