package domain

import "github.com/shopspring/decimal"

// Cart is per-session state. It lives in Redis, never in the relational
// schema, and is discarded on logout or after a successful checkout.
type Cart struct {
	Items []CartItem `json:"items"`
}

// CartItem is one selected product. Price is captured when the item is
// added so the customer pays the price they were shown, not the live one.
type CartItem struct {
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// Find returns the line for productID, or nil if the cart has none
func (c *Cart) Find(productID uint) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// Remove drops the line for productID, reporting whether it was present
func (c *Cart) Remove(productID uint) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Total sums quantity x captured price over all lines
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
