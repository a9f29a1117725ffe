package repository

import (
	"context"

	"github.com/shettigarlolith/LittoralWEB/internal/domain"
)

// CartStore is the persistence boundary for the cart: one durable slot,
// read at startup and overwritten wholesale after every mutation.
// Load returns *errors.ErrNotFound when the slot has never been written.
type CartStore interface {
	Load(ctx context.Context) (*domain.CartState, error)
	Save(ctx context.Context, state *domain.CartState) error
}
