package service

import (
	"testing"

	"shop_system/internal/domain"
	"shop_system/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCheckout(db *gorm.DB) (*CheckoutService, *store.ProductStore, *store.OrderStore) {
	products := store.NewProductStore(db)
	orders := store.NewOrderStore(db)
	return NewCheckoutService(db, products, orders), products, orders
}

func cartOf(items ...domain.CartItem) *domain.Cart {
	return &domain.Cart{Items: items}
}

func TestPlaceOrderHappyPath(t *testing.T) {
	db := newTestDB(t)
	checkout, products, _ := newCheckout(db)

	a := seedProduct(t, db, "A", "10.00", 5)
	b := seedProduct(t, db, "B", "5.00", 1)

	cart := cartOf(
		domain.CartItem{ProductID: a.ID, ProductName: "A", Price: dec("10.00"), Quantity: 2},
		domain.CartItem{ProductID: b.ID, ProductName: "B", Price: dec("5.00"), Quantity: 1},
	)

	order, err := checkout.PlaceOrder(42, cart)
	require.NoError(t, err)
	require.NotZero(t, order.ID)
	assert.NotEmpty(t, order.Reference)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.True(t, order.TotalAmount.Equal(dec("25.00")), "total was %s", order.TotalAmount)
	require.Len(t, order.Items, 2)

	// Total always equals the sum of its items' quantity x price
	sum := order.Items[0].Price.Mul(dec("2")).Add(order.Items[1].Price)
	assert.True(t, order.TotalAmount.Equal(sum))

	// Stock decreased by exactly the ordered quantities
	gotA, err := products.GetByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, gotA.Stock)
	gotB, err := products.GetByID(b.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, gotB.Stock)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	db := newTestDB(t)
	checkout, _, orders := newCheckout(db)

	_, err := checkout.PlaceOrder(42, &domain.Cart{})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = checkout.PlaceOrder(42, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)

	orderCount, itemCount, err := orders.Count()
	require.NoError(t, err)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
}

func TestPlaceOrderInsufficientStockNamesProduct(t *testing.T) {
	db := newTestDB(t)
	checkout, products, orders := newCheckout(db)

	a := seedProduct(t, db, "A", "10.00", 5)
	b := seedProduct(t, db, "B", "5.00", 0)

	cart := cartOf(
		domain.CartItem{ProductID: a.ID, ProductName: "A", Price: dec("10.00"), Quantity: 2},
		domain.CartItem{ProductID: b.ID, ProductName: "B", Price: dec("5.00"), Quantity: 1},
	)

	_, err := checkout.PlaceOrder(42, cart)
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, b.ID, stockErr.ProductID)
	assert.Equal(t, "B", stockErr.ProductName)

	// Nothing persisted, no partial decrement
	orderCount, itemCount, err := orders.Count()
	require.NoError(t, err)
	assert.Zero(t, orderCount)
	assert.Zero(t, itemCount)
	gotA, err := products.GetByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, gotA.Stock, "no partial stock change on failure")
}

func TestPlaceOrderNonPositiveQuantity(t *testing.T) {
	db := newTestDB(t)
	checkout, _, _ := newCheckout(db)
	a := seedProduct(t, db, "A", "10.00", 5)

	cart := cartOf(domain.CartItem{ProductID: a.ID, ProductName: "A", Price: dec("10.00"), Quantity: 0})
	_, err := checkout.PlaceOrder(42, cart)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSecondCheckoutAgainstDepletedStockFailsCleanly(t *testing.T) {
	db := newTestDB(t)
	checkout, products, orders := newCheckout(db)

	a := seedProduct(t, db, "A", "10.00", 5)
	b := seedProduct(t, db, "B", "5.00", 1)

	// Two carts hold the same stock of B; only the first checkout can win
	cart := cartOf(
		domain.CartItem{ProductID: a.ID, ProductName: "A", Price: dec("10.00"), Quantity: 2},
		domain.CartItem{ProductID: b.ID, ProductName: "B", Price: dec("5.00"), Quantity: 1},
	)
	staleCart := cartOf(cart.Items[0], cart.Items[1])

	_, err := checkout.PlaceOrder(7, cart)
	require.NoError(t, err)

	beforeOrders, beforeItems, err := orders.Count()
	require.NoError(t, err)

	_, err = checkout.PlaceOrder(8, staleCart)
	var stockErr *domain.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, "B", stockErr.ProductName)

	// Row counts before and after the failed checkout are equal
	afterOrders, afterItems, err := orders.Count()
	require.NoError(t, err)
	assert.Equal(t, beforeOrders, afterOrders)
	assert.Equal(t, beforeItems, afterItems)

	// The first checkout's decrement on A is intact, the failed one left no trace
	gotA, err := products.GetByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, gotA.Stock)
}

func TestPlaceOrderChargesCapturedPriceNotLivePrice(t *testing.T) {
	db := newTestDB(t)
	checkout, products, _ := newCheckout(db)

	a := seedProduct(t, db, "A", "10.00", 5)

	// Price captured when the item went into the cart
	cart := cartOf(domain.CartItem{ProductID: a.ID, ProductName: "A", Price: dec("10.00"), Quantity: 1})

	// The product price changes before checkout
	live, err := products.GetByID(a.ID)
	require.NoError(t, err)
	live.Price = dec("99.00")
	require.NoError(t, products.Update(live))

	order, err := checkout.PlaceOrder(42, cart)
	require.NoError(t, err)
	assert.True(t, order.TotalAmount.Equal(dec("10.00")), "customer pays the price shown")
	assert.True(t, order.Items[0].Price.Equal(dec("10.00")))
}
