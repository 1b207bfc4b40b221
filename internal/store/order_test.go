package store

import (
	"testing"
	"time"

	"shop_system/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderCreateWithItems(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderStore(db)

	order := &domain.Order{
		UserID:      1,
		Reference:   "ref-1",
		TotalAmount: decimal.RequireFromString("25.00"),
		Status:      domain.OrderStatusPending,
	}
	require.NoError(t, orders.Create(db, order))
	require.NotZero(t, order.ID)

	require.NoError(t, orders.AddItem(db, &domain.OrderItem{
		OrderID: order.ID, ProductID: 1, Quantity: 2, Price: decimal.RequireFromString("10.00"),
	}))
	require.NoError(t, orders.AddItem(db, &domain.OrderItem{
		OrderID: order.ID, ProductID: 2, Quantity: 1, Price: decimal.RequireFromString("5.00"),
	}))

	got, err := orders.GetByID(order.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("25.00")))

	items, err := orders.GetItems(order.ID)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestOrderListByUserNewestFirst(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderStore(db)

	now := time.Now()
	for i, offset := range []time.Duration{-2 * time.Hour, -1 * time.Hour, 0} {
		order := &domain.Order{
			UserID:      7,
			Reference:   "ref-" + time.Now().Add(offset).Format("150405") + string(rune('a'+i)),
			TotalAmount: decimal.RequireFromString("10.00"),
			Status:      domain.OrderStatusPending,
			CreatedAt:   now.Add(offset),
		}
		require.NoError(t, orders.Create(db, order))
	}
	other := &domain.Order{UserID: 8, Reference: "ref-other", TotalAmount: decimal.RequireFromString("1.00")}
	require.NoError(t, orders.Create(db, other))

	list, err := orders.ListByUser(7)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].CreatedAt.After(list[i-1].CreatedAt), "orders must sort newest first")
	}
}

func TestOrderUpdateStatus(t *testing.T) {
	db := newTestDB(t)
	orders := NewOrderStore(db)

	order := &domain.Order{UserID: 1, Reference: "ref-s", TotalAmount: decimal.RequireFromString("9.99")}
	require.NoError(t, orders.Create(db, order))

	require.NoError(t, orders.UpdateStatus(order.ID, domain.OrderStatusPaid))
	got, err := orders.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPaid, got.Status)

	assert.ErrorIs(t, orders.UpdateStatus(9999, domain.OrderStatusPaid), domain.ErrNotFound)
}
