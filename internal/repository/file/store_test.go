package file

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shettigarlolith/LittoralWEB/internal/domain"
	"github.com/shettigarlolith/LittoralWEB/pkg/errors"
)

func TestLoadMissingSlotIsNotFound(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "cart.json"))
	_, err := store.Load(context.Background())
	var nf *errors.ErrNotFound
	assert.ErrorAs(t, err, &nf)
}

func TestSaveThenLoad(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "data", "cart.json"))
	ctx := context.Background()

	state := domain.EmptyCartState()
	state.Items = append(state.Items, domain.CartItem{
		Product: &domain.Product{
			ID: "7", Name: "Vada Mix",
			Weights: []domain.Weight{{Value: "200g", Price: decimal.NewFromInt(99)}},
		},
		SelectedWeight: domain.Weight{Value: "200g", Price: decimal.NewFromInt(99)},
		Quantity:       4,
	})

	require.NoError(t, store.Save(ctx, state))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "7", loaded.Items[0].Product.ID)
	assert.Equal(t, 4, loaded.Items[0].Quantity)
}

func TestSaveOverwritesWholesale(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "cart.json"))
	ctx := context.Background()

	first := domain.EmptyCartState()
	first.Items = append(first.Items, domain.CartItem{
		Product:        &domain.Product{ID: "1", Weights: []domain.Weight{{Value: "200g", Price: decimal.NewFromInt(85)}}},
		SelectedWeight: domain.Weight{Value: "200g", Price: decimal.NewFromInt(85)},
		Quantity:       1,
	})
	require.NoError(t, store.Save(ctx, first))
	require.NoError(t, store.Save(ctx, domain.EmptyCartState()))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded.Items)
}
