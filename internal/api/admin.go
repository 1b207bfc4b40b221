package api

import (
	"net/http" // HTTP status codes

	"shop_system/internal/domain"  // Importing domain models
	"shop_system/internal/service" // Business workflows
	"shop_system/internal/store"   // Entity repositories
	"shop_system/internal/utils"   // Utility functions

	"github.com/gin-gonic/gin"      // Gin web framework
	"github.com/redis/go-redis/v9"  // Redis client
	"github.com/shopspring/decimal" // Decimal money values
)

// ---- users ----

// AdminCreateUserRequest creates a user with an explicit role
type AdminCreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// AdminUpdateUserRequest rewrites name, email and role
type AdminUpdateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Role  string `json:"role" binding:"required"`
}

// ListUsersHandler returns all users (password hashes never serialize)
func ListUsersHandler(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.ListAll()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": list})
	}
}

// CreateUserHandler registers a user on behalf of an admin; unlike
// self-registration the role is caller-chosen
func CreateUserHandler(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdminCreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user, err := auth.Register(req.Name, req.Email, req.Password, req.Role)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"user": user})
	}
}

// UpdateUserHandler rewrites a user's profile fields
func UpdateUserHandler(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		var req AdminUpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if !domain.ValidRole(req.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role"})
			return
		}
		user := &domain.User{ID: id, Name: req.Name, Email: req.Email, Role: req.Role}
		if err := users.Update(user); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User updated"})
	}
}

// DeleteUserHandler removes a user
func DeleteUserHandler(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		if err := users.Delete(id); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
	}
}

// ---- products ----

// ProductRequest creates or updates a product
type ProductRequest struct {
	CategoryID  *uint           `json:"category_id"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Image       string          `json:"image"`
}

func (r *ProductRequest) validate() error {
	if !utils.ValidPrice(r.Price) {
		return domain.ValidationError("price must be non-negative")
	}
	if !utils.ValidStock(r.Stock) {
		return domain.ValidationError("stock must be non-negative")
	}
	return nil
}

func invalidateProductCache(c *gin.Context, rdb *redis.Client) {
	_ = utils.DeleteCache(c.Request.Context(), rdb, productListCacheKey)
}

// CreateProductHandler adds a product to the catalog
func CreateProductHandler(products *store.ProductStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if err := req.validate(); err != nil {
			respondError(c, err)
			return
		}
		product := &domain.Product{
			CategoryID:  req.CategoryID,
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Stock:       req.Stock,
			Image:       req.Image,
		}
		if err := products.Create(product); err != nil {
			respondError(c, err)
			return
		}
		invalidateProductCache(c, rdb)
		c.JSON(http.StatusCreated, product)
	}
}

// UpdateProductHandler rewrites a product
func UpdateProductHandler(products *store.ProductStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if err := req.validate(); err != nil {
			respondError(c, err)
			return
		}
		product := &domain.Product{
			ID:          id,
			CategoryID:  req.CategoryID,
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Stock:       req.Stock,
			Image:       req.Image,
		}
		if err := products.Update(product); err != nil {
			respondError(c, err)
			return
		}
		invalidateProductCache(c, rdb)
		c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
	}
}

// DeleteProductHandler removes a product from the catalog
func DeleteProductHandler(products *store.ProductStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		if err := products.Delete(id); err != nil {
			respondError(c, err)
			return
		}
		invalidateProductCache(c, rdb)
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}

// UpdateStockHandler overwrites a product's stock directly, bypassing the
// checkout decrement path
func UpdateStockHandler(products *store.ProductStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		var req struct {
			Stock int `json:"stock"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if err := products.UpdateStock(id, req.Stock); err != nil {
			respondError(c, err)
			return
		}
		invalidateProductCache(c, rdb)
		c.JSON(http.StatusOK, gin.H{"message": "Stock updated"})
	}
}

// ---- categories ----

// CategoryRequest creates or updates a category
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateCategoryHandler adds a category
func CreateCategoryHandler(categories *store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		category := &domain.Category{Name: req.Name, Description: req.Description}
		if err := categories.Create(category); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// UpdateCategoryHandler rewrites a category
func UpdateCategoryHandler(categories *store.CategoryStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		category := &domain.Category{ID: id, Name: req.Name, Description: req.Description}
		if err := categories.Update(category); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category updated"})
	}
}

// DeleteCategoryHandler removes a category; its products stay, detached
func DeleteCategoryHandler(categories *store.CategoryStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		if err := categories.Delete(id); err != nil {
			respondError(c, err)
			return
		}
		// Detached products changed, so the cached catalog is stale
		invalidateProductCache(c, rdb)
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
	}
}

// ---- orders ----

// ListOrdersHandler returns every order, newest first
func ListOrdersHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.ListAll()
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}

// GetOrderHandler returns any order with its items
func GetOrderHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		order, err := orders.Get(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// UpdateOrderStatusHandler advances an order's lifecycle status
func UpdateOrderStatusHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := paramID(c, "id")
		if !ok {
			return
		}
		var req struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		status, err := domain.ParseOrderStatus(req.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		if err := orders.UpdateStatus(id, status); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
	}
}
