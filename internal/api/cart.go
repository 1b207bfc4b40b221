package api

import (
	"net/http" // HTTP status codes

	"shop_system/internal/service" // Business workflows

	"github.com/gin-gonic/gin" // Gin web framework
)

// CartItemRequest adds or updates one cart line
type CartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// GetCartHandler returns the session cart with its running total
func GetCartHandler(carts *service.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		cart, err := carts.Get(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cart, "total": cart.Total()})
	}
}

// AddCartItemHandler puts a product in the cart at its current price
func AddCartItemHandler(carts *service.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		cart, err := carts.AddItem(c.Request.Context(), userID, req.ProductID, req.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cart, "total": cart.Total()})
	}
}

// UpdateCartItemHandler overwrites the quantity of one cart line
func UpdateCartItemHandler(carts *service.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		productID, ok := paramID(c, "productID")
		if !ok {
			return
		}
		var req struct {
			Quantity int `json:"quantity" binding:"required,gt=0"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		cart, err := carts.UpdateQuantity(c.Request.Context(), userID, productID, req.Quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cart, "total": cart.Total()})
	}
}

// RemoveCartItemHandler drops one product from the cart
func RemoveCartItemHandler(carts *service.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		productID, ok := paramID(c, "productID")
		if !ok {
			return
		}
		cart, err := carts.RemoveItem(c.Request.Context(), userID, productID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"cart": cart, "total": cart.Total()})
	}
}

// ClearCartHandler empties the cart
func ClearCartHandler(carts *service.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if err := carts.Clear(c.Request.Context(), userID); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
