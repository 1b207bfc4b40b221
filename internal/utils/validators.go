package utils

import (
	"regexp" // Regular expressions

	"github.com/shopspring/decimal"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	namePattern  = regexp.MustCompile(`^[a-zA-Z\s\-]+$`)
)

// ValidEmail checks basic email shape
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPassword requires at least 8 characters
func ValidPassword(password string) bool {
	return len(password) >= 8
}

// ValidName requires at least 2 characters, letters, spaces and hyphens only
func ValidName(name string) bool {
	return len(name) >= 2 && namePattern.MatchString(name)
}

// ValidPrice requires a non-negative amount
func ValidPrice(price decimal.Decimal) bool {
	return !price.IsNegative()
}

// ValidStock requires a non-negative count
func ValidStock(stock int) bool {
	return stock >= 0
}
