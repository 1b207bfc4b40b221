package main

import (
	"context" // context package is needed for the Redis ping
	"log"     // log package is needed for logging
	"time"    // Time durations for CORS

	"shop_system/internal/api"        // Custom package for API handlers
	"shop_system/internal/config"     // Custom package for configuration
	"shop_system/internal/middleware" // Custom package for middleware
	"shop_system/internal/service"    // Custom package for business workflows
	"shop_system/internal/store"      // Custom package for repositories

	"github.com/gin-contrib/cors"  // CORS middleware
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client (session carts and read caches)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Repositories
	users := store.NewUserStore(db)
	categories := store.NewCategoryStore(db)
	products := store.NewProductStore(db)
	orders := store.NewOrderStore(db)

	// Workflows
	authSvc := service.NewAuthService(users)
	cartSvc := service.NewCartStore(redisClient, products)
	checkoutSvc := service.NewCheckoutService(db, products, orders)
	orderSvc := service.NewOrderService(orders)
	analyticsSvc := service.NewAnalyticsService(db, redisClient)

	// Setup Gin
	r := gin.Default()
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Auth routes
	r.POST("/auth/register", api.RegisterHandler(authSvc))
	r.POST("/auth/login", api.LoginHandler(authSvc, cfg.JWTSecret))

	// Public catalog routes
	r.GET("/products", api.ListProductsHandler(products, redisClient))
	r.GET("/products/search", api.SearchProductsHandler(products))
	r.GET("/products/:id", api.GetProductHandler(products))
	r.GET("/categories", api.ListCategoriesHandler(categories))
	r.GET("/categories/:id", api.GetCategoryHandler(categories))
	r.GET("/categories/:id/products", api.ListProductsByCategoryHandler(products))

	// Customer routes (protected by JWT)
	authGroup := r.Group("/")
	authGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))
	authGroup.POST("/auth/logout", api.LogoutHandler(cartSvc))
	authGroup.GET("/cart", api.GetCartHandler(cartSvc))
	authGroup.POST("/cart", api.AddCartItemHandler(cartSvc))
	authGroup.PUT("/cart/:productID", api.UpdateCartItemHandler(cartSvc))
	authGroup.DELETE("/cart/:productID", api.RemoveCartItemHandler(cartSvc))
	authGroup.DELETE("/cart", api.ClearCartHandler(cartSvc))
	authGroup.POST("/orders", api.CheckoutHandler(checkoutSvc, cartSvc))
	authGroup.GET("/orders", api.ListMyOrdersHandler(orderSvc))
	authGroup.GET("/orders/:id", api.GetMyOrderHandler(orderSvc))

	// Admin routes (protected, admin only)
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret), middleware.AdminOnlyMiddleware(db))
	adminGroup.GET("/users", api.ListUsersHandler(users))
	adminGroup.POST("/users", api.CreateUserHandler(authSvc))
	adminGroup.PUT("/users/:id", api.UpdateUserHandler(users))
	adminGroup.DELETE("/users/:id", api.DeleteUserHandler(users))
	adminGroup.POST("/products", api.CreateProductHandler(products, redisClient))
	adminGroup.PUT("/products/:id", api.UpdateProductHandler(products, redisClient))
	adminGroup.PUT("/products/:id/stock", api.UpdateStockHandler(products, redisClient))
	adminGroup.DELETE("/products/:id", api.DeleteProductHandler(products, redisClient))
	adminGroup.POST("/categories", api.CreateCategoryHandler(categories))
	adminGroup.PUT("/categories/:id", api.UpdateCategoryHandler(categories))
	adminGroup.DELETE("/categories/:id", api.DeleteCategoryHandler(categories, redisClient))
	adminGroup.GET("/orders", api.ListOrdersHandler(orderSvc))
	adminGroup.GET("/orders/:id", api.GetOrderHandler(orderSvc))
	adminGroup.PUT("/orders/:id/status", api.UpdateOrderStatusHandler(orderSvc))
	adminGroup.GET("/analytics/sales", api.SalesReportHandler(analyticsSvc))
	adminGroup.GET("/analytics/top-products", api.TopProductsHandler(analyticsSvc))

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
