package domain

import "time"

// Roles gate which parts of the API a user can reach
const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

// User Model
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                          // Primary key
	Name      string    `gorm:"not null" json:"name"`                          // Display name
	Email     string    `gorm:"unique;not null" json:"email"`                  // Unique email, stored lowercase
	Password  string    `gorm:"not null" json:"-"`                             // Bcrypt hash, never serialized
	Role      string    `gorm:"type:varchar(16);default:customer" json:"role"` // Role: admin or customer
	CreatedAt time.Time `json:"created_at"`                                    // Timestamp of registration
}

// ValidRole reports whether role is one of the known roles
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleCustomer
}
