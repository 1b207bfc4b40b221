package service

import (
	"context"
	"testing"

	"shop_system/internal/domain"
	"shop_system/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCartStore(t *testing.T, db *gorm.DB) *CartStore {
	t.Helper()
	return NewCartStore(newTestRedis(t), store.NewProductStore(db))
}

func TestCartAddItemCapturesPrice(t *testing.T) {
	db := newTestDB(t)
	carts := newCartStore(t, db)
	products := store.NewProductStore(db)
	ctx := context.Background()

	p := seedProduct(t, db, "Mug", "8.50", 10)

	cart, err := carts.AddItem(ctx, 1, p.ID, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.True(t, cart.Items[0].Price.Equal(dec("8.50")))

	// A later price change must not touch the captured line price
	p.Price = dec("12.00")
	require.NoError(t, products.Update(p))

	cart, err = carts.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, cart.Items[0].Price.Equal(dec("8.50")))
	assert.True(t, cart.Total().Equal(dec("17.00")))
}

func TestCartAddItemMergesLines(t *testing.T) {
	db := newTestDB(t)
	carts := newCartStore(t, db)
	ctx := context.Background()

	p := seedProduct(t, db, "Mug", "8.50", 10)

	_, err := carts.AddItem(ctx, 1, p.ID, 2)
	require.NoError(t, err)
	cart, err := carts.AddItem(ctx, 1, p.ID, 3)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1, "same product merges into one line")
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCartAddItemRespectsStock(t *testing.T) {
	db := newTestDB(t)
	carts := newCartStore(t, db)
	ctx := context.Background()

	p := seedProduct(t, db, "Mug", "8.50", 3)

	_, err := carts.AddItem(ctx, 1, p.ID, 4)
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "Mug", stockErr.ProductName)

	_, err = carts.AddItem(ctx, 1, p.ID, 0)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = carts.AddItem(ctx, 1, 9999, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCartUpdateAndRemove(t *testing.T) {
	db := newTestDB(t)
	carts := newCartStore(t, db)
	ctx := context.Background()

	p := seedProduct(t, db, "Mug", "8.50", 10)
	q := seedProduct(t, db, "Plate", "4.00", 10)

	_, err := carts.AddItem(ctx, 1, p.ID, 1)
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, 1, q.ID, 1)
	require.NoError(t, err)

	cart, err := carts.UpdateQuantity(ctx, 1, p.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, cart.Find(p.ID).Quantity)

	_, err = carts.UpdateQuantity(ctx, 1, p.ID, 11)
	var stockErr *domain.InsufficientStockError
	assert.ErrorAs(t, err, &stockErr)

	_, err = carts.UpdateQuantity(ctx, 1, 9999, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	cart, err = carts.RemoveItem(ctx, 1, p.ID)
	require.NoError(t, err)
	assert.Nil(t, cart.Find(p.ID))
	assert.Len(t, cart.Items, 1)

	_, err = carts.RemoveItem(ctx, 1, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCartClearAndIsolationBetweenUsers(t *testing.T) {
	db := newTestDB(t)
	carts := newCartStore(t, db)
	ctx := context.Background()

	p := seedProduct(t, db, "Mug", "8.50", 10)

	_, err := carts.AddItem(ctx, 1, p.ID, 2)
	require.NoError(t, err)
	_, err = carts.AddItem(ctx, 2, p.ID, 1)
	require.NoError(t, err)

	require.NoError(t, carts.Clear(ctx, 1))

	cart, err := carts.Get(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	other, err := carts.Get(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, other.Items, 1, "each session owns its cart exclusively")
}
