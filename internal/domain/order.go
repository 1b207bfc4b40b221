package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle stage of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, not yet paid
	OrderStatusPaid      OrderStatus = "paid"      // Payment received
	OrderStatusShipped   OrderStatus = "shipped"   // Out for delivery
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the order
)

// statusRank positions each status in the lifecycle; transitions only move forward
var statusRank = map[OrderStatus]int{
	OrderStatusPending:   0,
	OrderStatusPaid:      1,
	OrderStatusShipped:   2,
	OrderStatusDelivered: 3,
}

// ParseOrderStatus maps a raw string onto a known OrderStatus
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if _, ok := statusRank[status]; !ok {
		return "", ValidationError("unknown order status %q", s)
	}
	return status, nil
}

// CanAdvanceTo reports whether next is strictly later in the lifecycle.
// There is no reverse transition.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	return statusRank[next] > statusRank[s]
}

// Order Model
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`                                        // Primary key
	UserID      uint            `gorm:"not null;index" json:"user_id"`                               // Owning user
	Reference   string          `gorm:"uniqueIndex;size:64" json:"reference"`                        // Human-opaque order reference
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`             // Sum of item quantity x price at creation
	Status      OrderStatus     `gorm:"type:varchar(20);default:'pending'" json:"status"`            // Lifecycle stage
	Items       []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"` // Line items
	CreatedAt   time.Time       `json:"created_at"`                                                  // Timestamp of placement
}

// OrderItem Model. Price is a snapshot taken at order time so historical
// orders keep their value when the product price later changes.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`                     // Primary key
	OrderID   uint            `gorm:"index" json:"order_id"`                    // Owning order
	ProductID uint            `gorm:"not null" json:"product_id"`               // Ordered product
	Quantity  int             `gorm:"not null" json:"quantity"`                 // Positive quantity
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"` // Unit price at order time
}
