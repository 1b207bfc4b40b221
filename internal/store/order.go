package store

import (
	"errors"

	"shop_system/internal/domain"

	"gorm.io/gorm"
)

// OrderStore is the order repository. Writes take an explicit *gorm.DB so
// the checkout workflow can run them inside its own transaction.
type OrderStore struct {
	db *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{db: db}
}

// Create inserts the order row within tx and fills in its generated ID
func (s *OrderStore) Create(tx *gorm.DB, order *domain.Order) error {
	if err := tx.Create(order).Error; err != nil {
		return domain.PersistenceError(err)
	}
	return nil
}

// AddItem inserts one order item within tx
func (s *OrderStore) AddItem(tx *gorm.DB, item *domain.OrderItem) error {
	if err := tx.Create(item).Error; err != nil {
		return domain.PersistenceError(err)
	}
	return nil
}

func (s *OrderStore) GetByID(id uint) (*domain.Order, error) {
	var order domain.Order
	if err := s.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.PersistenceError(err)
	}
	return &order, nil
}

// ListByUser returns a user's orders, newest first
func (s *OrderStore) ListByUser(userID uint) ([]domain.Order, error) {
	var orders []domain.Order
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, domain.PersistenceError(err)
	}
	return orders, nil
}

// ListAll returns every order, newest first
func (s *OrderStore) ListAll() ([]domain.Order, error) {
	var orders []domain.Order
	if err := s.db.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, domain.PersistenceError(err)
	}
	return orders, nil
}

func (s *OrderStore) GetItems(orderID uint) ([]domain.OrderItem, error) {
	var items []domain.OrderItem
	if err := s.db.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return nil, domain.PersistenceError(err)
	}
	return items, nil
}

// UpdateStatus overwrites the status. The forward-only transition rule is
// enforced by the order service, not here.
func (s *OrderStore) UpdateStatus(id uint, status domain.OrderStatus) error {
	res := s.db.Model(&domain.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return domain.PersistenceError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count returns row counts for orders and order items; tests use it to
// verify that failed checkouts persist nothing.
func (s *OrderStore) Count() (orders int64, items int64, err error) {
	if err = s.db.Model(&domain.Order{}).Count(&orders).Error; err != nil {
		return 0, 0, domain.PersistenceError(err)
	}
	if err = s.db.Model(&domain.OrderItem{}).Count(&items).Error; err != nil {
		return 0, 0, domain.PersistenceError(err)
	}
	return orders, items, nil
}
