package service

import (
	"testing"

	"shop_system/internal/domain"
	"shop_system/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedOrder(t *testing.T, db *gorm.DB, userID uint, ref string, status domain.OrderStatus) *domain.Order {
	t.Helper()
	order := &domain.Order{
		UserID:      userID,
		Reference:   ref,
		TotalAmount: decimal.RequireFromString("10.00"),
		Status:      status,
	}
	require.NoError(t, store.NewOrderStore(db).Create(db, order))
	return order
}

func TestOrderStatusAdvancesForwardOnly(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(store.NewOrderStore(db))

	order := seedOrder(t, db, 1, "ref-1", domain.OrderStatusPending)

	require.NoError(t, orders.UpdateStatus(order.ID, domain.OrderStatusPaid))
	require.NoError(t, orders.UpdateStatus(order.ID, domain.OrderStatusDelivered), "skipping ahead is allowed")

	// No reverse transition, no no-op transition
	assert.ErrorIs(t, orders.UpdateStatus(order.ID, domain.OrderStatusShipped), domain.ErrValidation)
	assert.ErrorIs(t, orders.UpdateStatus(order.ID, domain.OrderStatusDelivered), domain.ErrValidation)

	got, err := orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusDelivered, got.Status)
}

func TestGetForUserHidesOtherUsersOrders(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderService(store.NewOrderStore(db))

	mine := seedOrder(t, db, 1, "ref-mine", domain.OrderStatusPending)
	theirs := seedOrder(t, db, 2, "ref-theirs", domain.OrderStatusPending)

	got, err := orders.GetForUser(mine.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, mine.ID, got.ID)

	// Someone else's order behaves exactly like a missing one
	_, err = orders.GetForUser(theirs.ID, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = orders.GetForUser(9999, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestParseOrderStatus(t *testing.T) {
	for _, valid := range []string{"pending", "paid", "shipped", "delivered"} {
		status, err := domain.ParseOrderStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatus(valid), status)
	}
	_, err := domain.ParseOrderStatus("cancelled")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
