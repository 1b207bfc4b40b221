package service

import (
	"context"
	"strconv"
	"time"

	"shop_system/internal/domain"
	"shop_system/internal/store"
	"shop_system/internal/utils"

	"github.com/redis/go-redis/v9"
)

// Abandoned carts expire on their own
const cartTTL = 24 * time.Hour

// CartStore keeps each customer's session cart in Redis, one key per user.
// Carts are never written to the relational database; they disappear on
// logout, after checkout, or when the TTL runs out.
type CartStore struct {
	rdb      *redis.Client
	products *store.ProductStore
}

func NewCartStore(rdb *redis.Client, products *store.ProductStore) *CartStore {
	return &CartStore{rdb: rdb, products: products}
}

func cartKey(userID uint) string {
	return "cart:user:" + strconv.Itoa(int(userID))
}

// Get loads the user's cart; a missing key is an empty cart
func (s *CartStore) Get(ctx context.Context, userID uint) (*domain.Cart, error) {
	var cart domain.Cart
	found, err := utils.GetCache(ctx, s.rdb, cartKey(userID), &cart)
	if err != nil {
		return nil, domain.PersistenceError(err)
	}
	if !found {
		return &domain.Cart{}, nil
	}
	return &cart, nil
}

func (s *CartStore) save(ctx context.Context, userID uint, cart *domain.Cart) error {
	if err := utils.SetCache(ctx, s.rdb, cartKey(userID), cart, cartTTL); err != nil {
		return domain.PersistenceError(err)
	}
	return nil
}

// AddItem puts quantity units of a product in the cart, capturing the
// product's current name and price. Adding a product already in the cart
// raises that line's quantity instead of creating a second line.
func (s *CartStore) AddItem(ctx context.Context, userID, productID uint, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, domain.ValidationError("quantity must be positive")
	}
	product, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	newQuantity := quantity
	if line := cart.Find(productID); line != nil {
		newQuantity += line.Quantity
	}
	if newQuantity > product.Stock {
		return nil, &domain.InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Stock:       product.Stock,
			Requested:   newQuantity,
		}
	}

	if line := cart.Find(productID); line != nil {
		line.Quantity = newQuantity
	} else {
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price, // checkout charges this price, not the live one
			Quantity:    quantity,
		})
	}
	if err := s.save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity overwrites the quantity of an existing cart line
func (s *CartStore) UpdateQuantity(ctx context.Context, userID, productID uint, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, domain.ValidationError("quantity must be positive")
	}
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	line := cart.Find(productID)
	if line == nil {
		return nil, domain.ErrNotFound
	}
	product, err := s.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if quantity > product.Stock {
		return nil, &domain.InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Stock:       product.Stock,
			Requested:   quantity,
		}
	}
	line.Quantity = quantity
	if err := s.save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// RemoveItem drops one product from the cart
func (s *CartStore) RemoveItem(ctx context.Context, userID, productID uint) (*domain.Cart, error) {
	cart, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !cart.Remove(productID) {
		return nil, domain.ErrNotFound
	}
	if err := s.save(ctx, userID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear discards the cart entirely (logout, or after a successful checkout)
func (s *CartStore) Clear(ctx context.Context, userID uint) error {
	if err := utils.DeleteCache(ctx, s.rdb, cartKey(userID)); err != nil {
		return domain.PersistenceError(err)
	}
	return nil
}
