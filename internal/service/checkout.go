package service

import (
	"time"

	"shop_system/internal/domain"
	"shop_system/internal/store"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// CheckoutService turns a session cart into a persisted order. The order
// row, its items and every stock decrement happen in one transaction:
// either the caller gets an order back, or nothing was persisted.
type CheckoutService struct {
	db       *gorm.DB
	products *store.ProductStore
	orders   *store.OrderStore
}

func NewCheckoutService(db *gorm.DB, products *store.ProductStore, orders *store.OrderStore) *CheckoutService {
	return &CheckoutService{db: db, products: products, orders: orders}
}

func newOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// PlaceOrder validates the cart against live stock, then atomically inserts
// the order with one item per cart line and decrements each product's stock.
// Item prices are the ones captured when the items were added to the cart.
// On failure the cart is untouched, so the customer can retry; on success
// the caller is expected to clear it.
func (s *CheckoutService) PlaceOrder(userID uint, cart *domain.Cart) (*domain.Order, error) {
	if cart == nil || len(cart.Items) == 0 {
		return nil, domain.ValidationError("cart is empty")
	}
	for _, line := range cart.Items {
		if line.Quantity <= 0 {
			return nil, domain.ValidationError("quantity for %s must be positive", line.ProductName)
		}
	}

	// Re-validate every line against the latest persisted stock, not the
	// value seen when the item was added: another customer may have bought
	// the product out in the meantime.
	for _, line := range cart.Items {
		product, err := s.products.GetByID(line.ProductID)
		if err != nil {
			return nil, err
		}
		if line.Quantity > product.Stock {
			return nil, &domain.InsufficientStockError{
				ProductID:   product.ID,
				ProductName: product.Name,
				Stock:       product.Stock,
				Requested:   line.Quantity,
			}
		}
	}

	order := &domain.Order{
		UserID:      userID,
		Reference:   newOrderRef(),
		TotalAmount: cart.Total(),
		Status:      domain.OrderStatusPending,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.orders.Create(tx, order); err != nil {
			return err
		}
		for _, line := range cart.Items {
			item := domain.OrderItem{
				OrderID:   order.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     line.Price,
			}
			if err := s.orders.AddItem(tx, &item); err != nil {
				return err
			}
			// Conditional decrement: if the stock no longer covers the
			// quantity the update matches no row and the whole transaction
			// rolls back, so racing checkouts cannot push stock negative.
			ok, err := s.products.DecrementStock(tx, line.ProductID, line.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				product, perr := s.productInTx(tx, line.ProductID)
				if perr != nil {
					return perr
				}
				return &domain.InsufficientStockError{
					ProductID:   product.ID,
					ProductName: product.Name,
					Stock:       product.Stock,
					Requested:   line.Quantity,
				}
			}
			order.Items = append(order.Items, item)
		}
		return nil
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"user_id": userID,
			"error":   err.Error(),
		}).Error("Checkout failed")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":  userID,
		"order_id": order.ID,
		"total":    order.TotalAmount.String(),
		"items":    len(order.Items),
	}).Info("Order placed")
	return order, nil
}

func (s *CheckoutService) productInTx(tx *gorm.DB, id uint) (*domain.Product, error) {
	var product domain.Product
	if err := tx.First(&product, id).Error; err != nil {
		return nil, domain.PersistenceError(err)
	}
	return &product, nil
}
