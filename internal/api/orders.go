package api

import (
	"net/http" // HTTP status codes

	"shop_system/internal/service" // Business workflows

	"github.com/gin-gonic/gin" // Gin web framework
)

// CheckoutHandler converts the session cart into a persisted order. The
// workflow is all-or-nothing: on any failure the cart survives untouched
// so the customer can retry; on success the cart is discarded.
func CheckoutHandler(checkout *service.CheckoutService, carts *service.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		ctx := c.Request.Context()
		cart, err := carts.Get(ctx, userID)
		if err != nil {
			respondError(c, err)
			return
		}
		order, err := checkout.PlaceOrder(userID, cart)
		if err != nil {
			respondError(c, err)
			return
		}
		// The order is committed; a failed cart cleanup must not undo that.
		// The cart TTL will collect the leftovers if this delete fails.
		_ = carts.Clear(ctx, userID)
		c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
	}
}

// ListMyOrdersHandler returns the authenticated user's orders, newest first
func ListMyOrdersHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		list, err := orders.ListByUser(userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}

// GetMyOrderHandler returns one of the user's own orders with its items
func GetMyOrderHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		orderID, ok := paramID(c, "id")
		if !ok {
			return
		}
		order, err := orders.GetForUser(orderID, userID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
