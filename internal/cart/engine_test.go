package cart_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shettigarlolith/LittoralWEB/internal/cart"
	"github.com/shettigarlolith/LittoralWEB/internal/config"
	"github.com/shettigarlolith/LittoralWEB/internal/domain"
	"github.com/shettigarlolith/LittoralWEB/internal/repository/file"
)

type stubPromos map[string]int

func (s stubPromos) LookupPromo(code string) (int, bool) {
	pct, ok := s[strings.ToUpper(strings.TrimSpace(code))]
	return pct, ok
}

var testPromos = stubPromos{
	"FLAT20":    20,
	"FIRST10":   10,
	"MILLET15":  15,
	"HEALTHY25": 25,
}

func testCartConfig() config.CartConfig {
	return config.CartConfig{
		Store:                 config.StoreFile,
		FreeShippingThreshold: 499,
		ShippingFlatFee:       49,
	}
}

func newTestEngine(t *testing.T) (*cart.Engine, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cart.json")
	store := file.NewStore(path)
	return cart.NewEngine(store, testPromos, testCartConfig(), zap.NewNop()), path
}

func testProduct(id string, discount int, prices map[string]int64) *domain.Product {
	p := &domain.Product{ID: id, Name: "Product " + id, Discount: discount}
	for value, price := range prices {
		p.Weights = append(p.Weights, domain.Weight{Value: value, Price: decimal.NewFromInt(price)})
	}
	return p
}

func weightOf(p *domain.Product, value string) domain.Weight {
	for _, w := range p.Weights {
		if w.Value == value {
			return w
		}
	}
	panic("unknown weight " + value)
}

func TestAddMergesSameProductAndWeight(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()
	p := testProduct("1", 0, map[string]int64{"500g": 100})
	w := weightOf(p, "500g")

	engine.Add(ctx, p, w, 1)
	engine.Add(ctx, p, w, 2)
	engine.Add(ctx, p, w, 3)

	snap := engine.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 6, snap.Items[0].Quantity)
	assert.Equal(t, 6, engine.ItemCount())
}

func TestAddDistinctWeightsCreateSeparateItems(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()
	p := testProduct("1", 0, map[string]int64{"500g": 100, "1kg": 180})

	engine.Add(ctx, p, weightOf(p, "500g"), 1)
	engine.Add(ctx, p, weightOf(p, "1kg"), 1)

	assert.Len(t, engine.Snapshot().Items, 2)
}

func TestUpdateQuantityZeroEquivalentToRemove(t *testing.T) {
	ctx := context.Background()
	p := testProduct("1", 0, map[string]int64{"500g": 100})
	w := weightOf(p, "500g")

	viaUpdate, _ := newTestEngine(t)
	viaUpdate.Add(ctx, p, w, 3)
	viaUpdate.UpdateQuantity(ctx, "1", "500g", 0)

	viaRemove, _ := newTestEngine(t)
	viaRemove.Add(ctx, p, w, 3)
	viaRemove.Remove(ctx, "1", "500g")

	assert.Equal(t, viaRemove.Snapshot(), viaUpdate.Snapshot())
	assert.Empty(t, viaUpdate.Snapshot().Items)
}

func TestUpdateQuantitySetsExactValue(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()
	p := testProduct("1", 0, map[string]int64{"500g": 100})

	engine.Add(ctx, p, weightOf(p, "500g"), 5)
	engine.UpdateQuantity(ctx, "1", "500g", 2)

	snap := engine.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 2, snap.Items[0].Quantity)
}

func TestUpdateQuantityAbsentItemIsNoop(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()
	p := testProduct("1", 0, map[string]int64{"500g": 100})

	engine.Add(ctx, p, weightOf(p, "500g"), 1)
	engine.UpdateQuantity(ctx, "2", "500g", 7)
	engine.Remove(ctx, "nope", "500g")

	snap := engine.Snapshot()
	require.Len(t, snap.Items, 1)
	assert.Equal(t, 1, snap.Items[0].Quantity)
}

func TestSubtotalInvariantUnderAddOrder(t *testing.T) {
	ctx := context.Background()
	a := testProduct("a", 10, map[string]int64{"500g": 100})
	b := testProduct("b", 0, map[string]int64{"250g": 75})

	first, _ := newTestEngine(t)
	first.Add(ctx, a, weightOf(a, "500g"), 2)
	first.Add(ctx, b, weightOf(b, "250g"), 1)

	second, _ := newTestEngine(t)
	second.Add(ctx, b, weightOf(b, "250g"), 1)
	second.Add(ctx, a, weightOf(a, "500g"), 1)
	second.Add(ctx, a, weightOf(a, "500g"), 1)

	assert.True(t, first.Subtotal().Equal(second.Subtotal()),
		"subtotals differ: %s vs %s", first.Subtotal(), second.Subtotal())
}

func TestPromoApplyThenRemoveRestoresTotal(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()
	p := testProduct("1", 0, map[string]int64{"500g": 250})
	engine.Add(ctx, p, weightOf(p, "500g"), 1)

	before := engine.Total()
	require.NoError(t, engine.ApplyPromoCode(ctx, "flat20"))
	assert.False(t, engine.Total().Equal(before))

	engine.RemovePromoCode(ctx)
	assert.True(t, engine.Total().Equal(before))
}

func TestApplyInvalidPromoLeavesStateUnchanged(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()
	p := testProduct("1", 0, map[string]int64{"500g": 250})
	engine.Add(ctx, p, weightOf(p, "500g"), 1)

	before := engine.Snapshot()
	err := engine.ApplyPromoCode(ctx, "NOSUCHCODE")
	require.Error(t, err)
	assert.Equal(t, before, engine.Snapshot())
}

func TestApplyPromoReplacesPreviousCode(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()
	p := testProduct("1", 0, map[string]int64{"500g": 250})
	engine.Add(ctx, p, weightOf(p, "500g"), 1)

	require.NoError(t, engine.ApplyPromoCode(ctx, "FIRST10"))
	require.NoError(t, engine.ApplyPromoCode(ctx, "HEALTHY25"))

	snap := engine.Snapshot()
	require.NotNil(t, snap.PromoCode)
	assert.Equal(t, "HEALTHY25", *snap.PromoCode)
	assert.Equal(t, 25, snap.PromoDiscount)
}

func TestShippingFreeAtThreshold(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()
	p := testProduct("1", 0, map[string]int64{"500g": 499})
	engine.Add(ctx, p, weightOf(p, "500g"), 1)

	assert.True(t, engine.ShippingCost().IsZero(),
		"subtotal 499 must ship free, got %s", engine.ShippingCost())
}

func TestShippingFlatFeeBelowThreshold(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()
	p := testProduct("1", 0, map[string]int64{"500g": 498})
	engine.Add(ctx, p, weightOf(p, "500g"), 1)

	assert.Equal(t, "49", engine.ShippingCost().String())
}

func TestScenarioFlat20WithItemDiscount(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()
	p := testProduct("a", 10, map[string]int64{"500g": 100})
	engine.Add(ctx, p, weightOf(p, "500g"), 1)

	assert.Equal(t, "90", engine.Subtotal().String())

	require.NoError(t, engine.ApplyPromoCode(ctx, "FLAT20"))
	assert.Equal(t, "18", engine.DiscountAmount().String())
	assert.Equal(t, "49", engine.ShippingCost().String())
	assert.Equal(t, "121", engine.Total().String())
}

func TestScenarioFreeShippingAboveThreshold(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()
	a := testProduct("a", 0, map[string]int64{"1kg": 350})
	b := testProduct("b", 0, map[string]int64{"500g": 250})
	engine.Add(ctx, a, weightOf(a, "1kg"), 1)
	engine.Add(ctx, b, weightOf(b, "500g"), 1)

	require.Equal(t, "600", engine.Subtotal().String())
	assert.True(t, engine.ShippingCost().IsZero())

	require.NoError(t, engine.ApplyPromoCode(ctx, "FIRST10"))
	expected := engine.Subtotal().Sub(engine.DiscountAmount())
	assert.True(t, engine.Total().Equal(expected))
}

func TestTotalFlooredAtShippingCost(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store := file.NewStore(path)
	promos := stubPromos{"MEGA150": 150}
	engine := cart.NewEngine(store, promos, testCartConfig(), zap.NewNop())

	ctx := context.Background()
	p := testProduct("1", 0, map[string]int64{"500g": 100})
	engine.Add(ctx, p, weightOf(p, "500g"), 1)
	require.NoError(t, engine.ApplyPromoCode(ctx, "MEGA150"))

	assert.True(t, engine.Total().Equal(engine.ShippingCost()),
		"total %s must clamp at shipping %s", engine.Total(), engine.ShippingCost())
}

func TestPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store := file.NewStore(path)
	ctx := context.Background()

	original := cart.NewEngine(store, testPromos, testCartConfig(), zap.NewNop())
	a := testProduct("a", 10, map[string]int64{"500g": 100})
	b := testProduct("b", 0, map[string]int64{"250g": 75})
	original.Add(ctx, a, weightOf(a, "500g"), 2)
	original.Add(ctx, b, weightOf(b, "250g"), 3)
	require.NoError(t, original.ApplyPromoCode(ctx, "MILLET15"))

	reloaded := cart.NewEngine(store, testPromos, testCartConfig(), zap.NewNop())
	assert.True(t, reloaded.Total().Equal(original.Total()),
		"reloaded total %s != %s", reloaded.Total(), original.Total())
	assert.Equal(t, original.ItemCount(), reloaded.ItemCount())
}

func TestMalformedPersistedStateFallsBackToEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	engine := cart.NewEngine(file.NewStore(path), testPromos, testCartConfig(), zap.NewNop())
	assert.True(t, engine.IsEmpty())
	assert.True(t, engine.Subtotal().IsZero())
}

func TestStalePersistedPromoIsDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	store := file.NewStore(path)
	ctx := context.Background()

	seeded := cart.NewEngine(store, stubPromos{"RETIRED5": 5}, testCartConfig(), zap.NewNop())
	p := testProduct("1", 0, map[string]int64{"500g": 100})
	seeded.Add(ctx, p, weightOf(p, "500g"), 1)
	require.NoError(t, seeded.ApplyPromoCode(ctx, "RETIRED5"))

	// reload against a promo table that no longer has the code
	reloaded := cart.NewEngine(store, testPromos, testCartConfig(), zap.NewNop())
	snap := reloaded.Snapshot()
	assert.Nil(t, snap.PromoCode)
	assert.Zero(t, snap.PromoDiscount)
}

func TestClearResetsItemsAndPromo(t *testing.T) {
	engine, _ := newTestEngine(t)
	ctx := context.Background()
	p := testProduct("1", 0, map[string]int64{"500g": 100})
	engine.Add(ctx, p, weightOf(p, "500g"), 2)
	require.NoError(t, engine.ApplyPromoCode(ctx, "FLAT20"))

	engine.Clear(ctx)

	snap := engine.Snapshot()
	assert.Empty(t, snap.Items)
	assert.Nil(t, snap.PromoCode)
	assert.Zero(t, snap.PromoDiscount)
	assert.True(t, engine.Subtotal().IsZero())
	assert.Zero(t, engine.ItemCount())
}
