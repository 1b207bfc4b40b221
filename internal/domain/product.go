package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product Model
type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`         // Primary key
	CategoryID  *uint           `gorm:"index" json:"category_id"`                   // Optional category, nil when detached
	Name        string          `gorm:"not null" json:"name"`                       // Product name
	Description string          `json:"description"`                                // Optional description
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`   // Non-negative unit price
	Stock       int             `gorm:"not null;default:0" json:"stock"`            // Available inventory count
	Image       string          `json:"image"`                                      // Optional image reference
	CreatedAt   time.Time       `json:"created_at"`                                 // Timestamp of creation
}
