package errors

import (
	"fmt"

	"github.com/shettigarlolith/LittoralWEB/internal/domain"
)

// ErrNotFound is returned when a resource is not found
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation is returned when field validation fails. Fields maps a
// field name to a human-readable message.
type ErrValidation struct {
	Message string
	Fields  map[string]string
}

func (e *ErrValidation) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "validation failed"
}

// ErrInvalidStateTransition is returned when an invalid checkout step transition is attempted
type ErrInvalidStateTransition struct {
	From domain.CheckoutStep
	To   domain.CheckoutStep
}

func (e *ErrInvalidStateTransition) Error() string {
	return fmt.Sprintf("invalid checkout transition from %s to %s", e.From, e.To)
}

// ErrEmptyCart is returned when a checkout operation is attempted with an empty cart
type ErrEmptyCart struct{}

func (e *ErrEmptyCart) Error() string {
	return "cart is empty"
}

// ErrInvalidPromoCode is returned when a promo code is not in the promo table
type ErrInvalidPromoCode struct {
	Code string
}

func (e *ErrInvalidPromoCode) Error() string {
	return fmt.Sprintf("invalid promo code: %s", e.Code)
}
