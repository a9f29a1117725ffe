package cart

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Totals is a consistent snapshot of the cart's derived money values
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	ShippingCost   decimal.Decimal `json:"shipping_cost"`
	Total          decimal.Decimal `json:"total"`
	ItemCount      int             `json:"item_count"`
	PromoCode      *string         `json:"promo_code"`
	PromoDiscount  int             `json:"promo_discount"`
}

var hundred = decimal.NewFromInt(100)

// Subtotal sums per-item discounted prices: price x (1 - discount/100) x qty.
// The per-item discount applies before summation.
func (e *Engine) Subtotal() decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.subtotalLocked()
}

func (e *Engine) subtotalLocked() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range e.state.Items {
		line := item.Product.DiscountedPrice(item.SelectedWeight).
			Mul(decimal.NewFromInt(int64(item.Quantity)))
		sum = sum.Add(line)
	}
	return sum
}

// DiscountAmount is the promo discount applied to the subtotal
func (e *Engine) DiscountAmount() decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.discountLocked(e.subtotalLocked())
}

func (e *Engine) discountLocked(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(decimal.NewFromInt(int64(e.state.PromoDiscount))).Div(hundred)
}

// ShippingCost is zero at or above the free-shipping threshold, else the flat fee
func (e *Engine) ShippingCost() decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.shippingLocked(e.subtotalLocked())
}

func (e *Engine) shippingLocked(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(e.freeShippingThreshold) {
		return decimal.Zero
	}
	return e.shippingFlatFee
}

// Total is subtotal - discount + shipping, floored at the shipping cost.
// The fixed promo table cannot push a discount past the subtotal; the floor
// guards a future table that could.
func (e *Engine) Total() decimal.Decimal {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalLocked()
}

func (e *Engine) totalLocked() decimal.Decimal {
	subtotal := e.subtotalLocked()
	discount := e.discountLocked(subtotal)
	shipping := e.shippingLocked(subtotal)
	total := subtotal.Sub(discount).Add(shipping)
	if total.LessThan(shipping) {
		e.logger.Warn("Cart total clamped at shipping cost",
			zap.String("subtotal", subtotal.String()),
			zap.String("discount", discount.String()),
			zap.Int("promo_discount", e.state.PromoDiscount),
		)
		return shipping
	}
	return total
}

// ItemCount is the sum of quantities across line items
func (e *Engine) ItemCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.itemCountLocked()
}

func (e *Engine) itemCountLocked() int {
	count := 0
	for _, item := range e.state.Items {
		count += item.Quantity
	}
	return count
}

// Totals computes all derived values under one lock acquisition
func (e *Engine) Totals() Totals {
	e.mu.Lock()
	defer e.mu.Unlock()

	subtotal := e.subtotalLocked()
	t := Totals{
		Subtotal:       subtotal,
		DiscountAmount: e.discountLocked(subtotal),
		ShippingCost:   e.shippingLocked(subtotal),
		Total:          e.totalLocked(),
		ItemCount:      e.itemCountLocked(),
		PromoDiscount:  e.state.PromoDiscount,
	}
	if e.state.PromoCode != nil {
		code := *e.state.PromoCode
		t.PromoCode = &code
	}
	return t
}
