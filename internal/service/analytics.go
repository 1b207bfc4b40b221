package service

import (
	"context"
	"time"

	"shop_system/internal/domain"
	"shop_system/internal/utils"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Aggregates are recomputed at most once per minute
const analyticsCacheTTL = 60 * time.Second

// SalesReportRow is one day of paid-or-later orders
type SalesReportRow struct {
	Date       string          `json:"date"`
	OrderCount int64           `json:"orders_count"`
	Revenue    decimal.Decimal `json:"total_revenue"`
}

// ProductSales is one entry of the top-sellers list
type ProductSales struct {
	Name      string `json:"name"`
	TotalSold int64  `json:"total_sold"`
}

// AnalyticsService runs the two read-only aggregate queries behind the
// admin dashboard, with a short Redis cache in front of each.
type AnalyticsService struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewAnalyticsService(db *gorm.DB, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{db: db, rdb: rdb}
}

// SalesReport returns per-day order count and revenue over orders in a
// paid-or-later status, most recent 30 days with any sales.
func (s *AnalyticsService) SalesReport(ctx context.Context) ([]SalesReportRow, error) {
	const cacheKey = "analytics:sales"
	var rows []SalesReportRow
	if found, err := utils.GetCache(ctx, s.rdb, cacheKey, &rows); err == nil && found {
		return rows, nil
	}
	err := s.db.Raw(`
		SELECT DATE(created_at) AS date,
		       COUNT(*) AS order_count,
		       SUM(total_amount) AS revenue
		FROM orders
		WHERE status IN ('paid', 'shipped', 'delivered')
		GROUP BY DATE(created_at)
		ORDER BY date DESC
		LIMIT 30`).Scan(&rows).Error
	if err != nil {
		return nil, domain.PersistenceError(err)
	}
	_ = utils.SetCache(ctx, s.rdb, cacheKey, rows, analyticsCacheTTL)
	return rows, nil
}

// TopProducts returns the ten products with the highest total quantity
// sold across paid-or-later orders.
func (s *AnalyticsService) TopProducts(ctx context.Context) ([]ProductSales, error) {
	const cacheKey = "analytics:top-products"
	var rows []ProductSales
	if found, err := utils.GetCache(ctx, s.rdb, cacheKey, &rows); err == nil && found {
		return rows, nil
	}
	err := s.db.Raw(`
		SELECT p.name AS name,
		       SUM(oi.quantity) AS total_sold
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		JOIN orders o ON oi.order_id = o.id
		WHERE o.status IN ('paid', 'shipped', 'delivered')
		GROUP BY p.id, p.name
		ORDER BY total_sold DESC
		LIMIT 10`).Scan(&rows).Error
	if err != nil {
		return nil, domain.PersistenceError(err)
	}
	_ = utils.SetCache(ctx, s.rdb, cacheKey, rows, analyticsCacheTTL)
	return rows, nil
}
