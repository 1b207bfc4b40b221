package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Time durations

	"shop_system/internal/domain" // Importing domain models
	"shop_system/internal/store"  // Entity repositories
	"shop_system/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// The public catalog list is cached briefly; admin writes invalidate it
const productListCacheKey = "products:all"

func paramID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(v), true
}

// ListProductsHandler returns the whole catalog, read through a short cache
func ListProductsHandler(products *store.ProductStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var cached []domain.Product
		if found, err := utils.GetCache(ctx, rdb, productListCacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"products": cached, "cached": true})
			return
		}
		list, err := products.ListAll()
		if err != nil {
			respondError(c, err)
			return
		}
		_ = utils.SetCache(ctx, rdb, productListCacheKey, list, 60*time.Second)
		c.JSON(http.StatusOK, gin.H{"products": list, "cached": false})
	}
}

// GetProductHandler returns one product by ID
func GetProductHandler(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		product, err := products.GetByID(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

// SearchProductsHandler matches the q parameter against product names,
// case-insensitively
func SearchProductsHandler(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := c.Query("q")
		if q == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing search query"})
			return
		}
		list, err := products.SearchByName(q)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": list})
	}
}

// ListProductsByCategoryHandler filters the catalog by category
func ListProductsByCategoryHandler(products *store.ProductStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		list, err := products.ListByCategory(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": list})
	}
}
