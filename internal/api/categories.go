package api

import (
	"net/http" // HTTP status codes

	"shop_system/internal/store" // Entity repositories

	"github.com/gin-gonic/gin" // Gin web framework
)

// ListCategoriesHandler returns every category for the browse filter
func ListCategoriesHandler(categories *store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := categories.ListAll()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"categories": list})
	}
}

// GetCategoryHandler returns one category by ID
func GetCategoryHandler(categories *store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		category, err := categories.GetByID(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, category)
	}
}
