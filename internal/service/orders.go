package service

import (
	"shop_system/internal/domain"
	"shop_system/internal/store"

	"github.com/sirupsen/logrus"
)

// OrderService covers reading orders and the admin status transition
type OrderService struct {
	orders *store.OrderStore
}

func NewOrderService(orders *store.OrderStore) *OrderService {
	return &OrderService{orders: orders}
}

func (s *OrderService) ListByUser(userID uint) ([]domain.Order, error) {
	return s.orders.ListByUser(userID)
}

// GetForUser returns one order with its items, but only to its owner.
// Someone else's order ID behaves exactly like a missing one.
func (s *OrderService) GetForUser(orderID, userID uint) (*domain.Order, error) {
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

func (s *OrderService) ListAll() ([]domain.Order, error) {
	return s.orders.ListAll()
}

func (s *OrderService) Get(orderID uint) (*domain.Order, error) {
	return s.orders.GetByID(orderID)
}

// UpdateStatus advances an order along pending -> paid -> shipped ->
// delivered. Moving backwards or staying put is rejected.
func (s *OrderService) UpdateStatus(orderID uint, next domain.OrderStatus) error {
	order, err := s.orders.GetByID(orderID)
	if err != nil {
		return err
	}
	if !order.Status.CanAdvanceTo(next) {
		return domain.ValidationError("cannot move order from %s to %s", order.Status, next)
	}
	if err := s.orders.UpdateStatus(orderID, next); err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"order_id": orderID,
		"from":     order.Status,
		"to":       next,
	}).Info("Order status updated")
	return nil
}
