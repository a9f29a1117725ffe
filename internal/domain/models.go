package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Weight is one purchasable pack size of a product
type Weight struct {
	Value string          `json:"value"`
	Price decimal.Decimal `json:"price"`
}

// Product is an immutable catalog record. The first weight is the default selection.
type Product struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Weights      []Weight `json:"weights"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"review_count"`
	PrepTime     string   `json:"prep_time"`
	Discount     int      `json:"discount"` // percent, [0,100)
	Tags         []Tag    `json:"tags"`
	Category     Category `json:"category"`
	Ingredients  []string `json:"ingredients"`
	CookingSteps []string `json:"cooking_steps"`
	IsVeg        bool     `json:"is_veg"`
}

// DefaultWeight returns the first weight variant
func (p *Product) DefaultWeight() Weight {
	return p.Weights[0]
}

// DiscountedPrice applies the product's own discount to a weight price
func (p *Product) DiscountedPrice(w Weight) decimal.Decimal {
	return w.Price.Mul(decimal.NewFromInt(int64(100 - p.Discount))).Div(decimal.NewFromInt(100))
}

// CartItem is one line in the cart. Identity key is (product ID, weight value).
type CartItem struct {
	Product        *Product `json:"product"`
	SelectedWeight Weight   `json:"selected_weight"`
	Quantity       int      `json:"quantity"`
}

// CartState holds the cart contents and active promo.
// Invariant: PromoDiscount is non-zero iff PromoCode is set, and always
// matches the promo table entry for that code.
type CartState struct {
	Items         []CartItem `json:"items"`
	PromoCode     *string    `json:"promo_code"`
	PromoDiscount int        `json:"promo_discount"` // percent
}

// EmptyCartState returns a fresh empty cart
func EmptyCartState() *CartState {
	return &CartState{Items: []CartItem{}, PromoCode: nil, PromoDiscount: 0}
}

// CustomerDetails is the validated delivery information collected at checkout
type CustomerDetails struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Pincode     string `json:"pincode"`
	CookingNote string `json:"cooking_note,omitempty"`
}

// Order is synthesized when a checkout flow reaches Success. Nothing leaves
// the process; it exists for the confirmation screen.
type Order struct {
	ID               uuid.UUID       `json:"id"`
	Reference        string          `json:"reference"` // display id, e.g. RM17240531
	Customer         CustomerDetails `json:"customer"`
	PaymentMethod    PaymentMethod   `json:"payment_method"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	Discount         decimal.Decimal `json:"discount"`
	Shipping         decimal.Decimal `json:"shipping"`
	Total            decimal.Decimal `json:"total"`
	ItemCount        int             `json:"item_count"`
	PlacedAt         time.Time       `json:"placed_at"`
	ExpectedDelivery string          `json:"expected_delivery"`
}
