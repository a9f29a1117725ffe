package repository

import (
	"encoding/json"
	"fmt"

	"github.com/shettigarlolith/LittoralWEB/internal/domain"
)

// schemaVersion tags the persisted cart document so future shape changes
// can be detected instead of misparsed.
const schemaVersion = 1

type persistedCart struct {
	Version       int               `json:"version"`
	Items         []domain.CartItem `json:"items"`
	PromoCode     *string           `json:"promo_code"`
	PromoDiscount int               `json:"promo_discount"`
}

// EncodeCart serializes a cart state with the schema version tag
func EncodeCart(state *domain.CartState) ([]byte, error) {
	doc := persistedCart{
		Version:       schemaVersion,
		Items:         state.Items,
		PromoCode:     state.PromoCode,
		PromoDiscount: state.PromoDiscount,
	}
	return json.Marshal(doc)
}

// DecodeCart deserializes a persisted cart document. Malformed JSON or an
// unknown schema version is an error; callers treat that as absent state.
func DecodeCart(data []byte) (*domain.CartState, error) {
	var doc persistedCart
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	if doc.Version != schemaVersion {
		return nil, fmt.Errorf("decode cart: unsupported schema version %d", doc.Version)
	}
	state := &domain.CartState{
		Items:         doc.Items,
		PromoCode:     doc.PromoCode,
		PromoDiscount: doc.PromoDiscount,
	}
	if state.Items == nil {
		state.Items = []domain.CartItem{}
	}
	return state, nil
}
