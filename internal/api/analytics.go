package api

import (
	"net/http" // HTTP status codes

	"shop_system/internal/service" // Business workflows

	"github.com/gin-gonic/gin" // Gin web framework
)

// SalesReportHandler returns per-day order counts and revenue for the
// last 30 days of paid-or-later orders
func SalesReportHandler(analytics *service.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := analytics.SalesReport(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"sales": rows})
	}
}

// TopProductsHandler returns the ten best-selling products by quantity
func TopProductsHandler(analytics *service.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := analytics.TopProducts(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"top_products": rows})
	}
}
