// Package cart owns the cart contents and derives all monetary totals.
package cart

import (
	"context"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/shettigarlolith/LittoralWEB/internal/config"
	"github.com/shettigarlolith/LittoralWEB/internal/domain"
	"github.com/shettigarlolith/LittoralWEB/internal/repository"
	"github.com/shettigarlolith/LittoralWEB/pkg/errors"
)

// PromoLookup resolves a promo code to its discount percentage.
// Lookup is case-insensitive on input.
type PromoLookup interface {
	LookupPromo(code string) (int, bool)
}

// Engine is the cart engine. Every mutating method persists the full state
// afterwards; a persistence failure is logged and the in-memory state stays
// authoritative.
type Engine struct {
	mu     sync.Mutex
	state  *domain.CartState
	store  repository.CartStore
	promos PromoLookup
	logger *zap.Logger

	freeShippingThreshold decimal.Decimal
	shippingFlatFee       decimal.Decimal
}

// NewEngine creates a cart engine, restoring persisted state when present.
// Missing or malformed persisted data falls back to an empty cart.
func NewEngine(store repository.CartStore, promos PromoLookup, cfg config.CartConfig, logger *zap.Logger) *Engine {
	e := &Engine{
		state:                 domain.EmptyCartState(),
		store:                 store,
		promos:                promos,
		logger:                logger,
		freeShippingThreshold: decimal.NewFromFloat(cfg.FreeShippingThreshold),
		shippingFlatFee:       decimal.NewFromFloat(cfg.ShippingFlatFee),
	}

	state, err := store.Load(context.Background())
	if err != nil {
		if _, notFound := err.(*errors.ErrNotFound); !notFound {
			logger.Warn("Persisted cart unreadable, starting empty", zap.Error(err))
		}
		return e
	}
	e.state = state
	e.reconcilePromo()
	return e
}

// reconcilePromo re-resolves the persisted promo code against the promo
// table so the discount percentage can never be stale. Caller holds no lock
// only during construction.
func (e *Engine) reconcilePromo() {
	if e.state.PromoCode == nil {
		e.state.PromoDiscount = 0
		return
	}
	pct, ok := e.promos.LookupPromo(*e.state.PromoCode)
	if !ok {
		e.logger.Warn("Dropping unknown persisted promo code", zap.String("code", *e.state.PromoCode))
		e.state.PromoCode = nil
		e.state.PromoDiscount = 0
		return
	}
	e.state.PromoDiscount = pct
}

// Add puts quantity units of (product, weight) in the cart, merging into an
// existing line item on the same (product id, weight value) key.
func (e *Engine) Add(ctx context.Context, product *domain.Product, weight domain.Weight, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.state.Items {
		item := &e.state.Items[i]
		if item.Product.ID == product.ID && item.SelectedWeight.Value == weight.Value {
			item.Quantity += quantity
			e.persist(ctx)
			return
		}
	}
	e.state.Items = append(e.state.Items, domain.CartItem{
		Product:        product,
		SelectedWeight: weight,
		Quantity:       quantity,
	})
	e.persist(ctx)
}

// Remove deletes the matching line item; no-op when absent
func (e *Engine) Remove(ctx context.Context, productID, weightValue string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.removeLocked(ctx, productID, weightValue)
}

func (e *Engine) removeLocked(ctx context.Context, productID, weightValue string) {
	items := e.state.Items[:0]
	for _, item := range e.state.Items {
		if item.Product.ID == productID && item.SelectedWeight.Value == weightValue {
			continue
		}
		items = append(items, item)
	}
	e.state.Items = items
	e.persist(ctx)
}

// UpdateQuantity sets the matching item's quantity to exactly quantity.
// quantity <= 0 removes the item. No-op when the item is absent.
func (e *Engine) UpdateQuantity(ctx context.Context, productID, weightValue string, quantity int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if quantity <= 0 {
		e.removeLocked(ctx, productID, weightValue)
		return
	}
	for i := range e.state.Items {
		item := &e.state.Items[i]
		if item.Product.ID == productID && item.SelectedWeight.Value == weightValue {
			item.Quantity = quantity
			e.persist(ctx)
			return
		}
	}
}

// Clear resets the cart to empty, dropping any promo
func (e *Engine) Clear(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = domain.EmptyCartState()
	e.persist(ctx)
}

// ApplyPromoCode normalizes the code to uppercase and looks it up in the
// promo table. On a miss the state is unchanged. A new valid code replaces
// any previously applied one.
func (e *Engine) ApplyPromoCode(ctx context.Context, code string) error {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	pct, ok := e.promos.LookupPromo(normalized)
	if !ok {
		return &errors.ErrInvalidPromoCode{Code: code}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.PromoCode = &normalized
	e.state.PromoDiscount = pct
	e.persist(ctx)
	return nil
}

// RemovePromoCode clears the promo without touching items
func (e *Engine) RemovePromoCode(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.PromoCode = nil
	e.state.PromoDiscount = 0
	e.persist(ctx)
}

// IsEmpty reports whether the cart has no items
func (e *Engine) IsEmpty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.state.Items) == 0
}

// Snapshot returns a copy of the current cart state
func (e *Engine) Snapshot() domain.CartState {
	e.mu.Lock()
	defer e.mu.Unlock()
	snap := domain.CartState{
		Items:         make([]domain.CartItem, len(e.state.Items)),
		PromoDiscount: e.state.PromoDiscount,
	}
	copy(snap.Items, e.state.Items)
	if e.state.PromoCode != nil {
		code := *e.state.PromoCode
		snap.PromoCode = &code
	}
	return snap
}

// persist writes the full state to the durable slot. Failure is non-fatal:
// the in-memory state remains correct. Caller must hold e.mu.
func (e *Engine) persist(ctx context.Context) {
	if err := e.store.Save(ctx, e.state); err != nil {
		e.logger.Warn("Failed to persist cart state", zap.Error(err))
	}
}
