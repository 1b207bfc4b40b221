package store

import (
	"errors"
	"strings"

	"shop_system/internal/domain"

	"gorm.io/gorm"
)

// ProductStore is the product repository
type ProductStore struct {
	db *gorm.DB
}

func NewProductStore(db *gorm.DB) *ProductStore {
	return &ProductStore{db: db}
}

func (s *ProductStore) Create(product *domain.Product) error {
	if err := s.db.Create(product).Error; err != nil {
		return domain.PersistenceError(err)
	}
	return nil
}

func (s *ProductStore) GetByID(id uint) (*domain.Product, error) {
	var product domain.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.PersistenceError(err)
	}
	return &product, nil
}

func (s *ProductStore) ListAll() ([]domain.Product, error) {
	var products []domain.Product
	if err := s.db.Find(&products).Error; err != nil {
		return nil, domain.PersistenceError(err)
	}
	return products, nil
}

func (s *ProductStore) ListByCategory(categoryID uint) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.db.Where("category_id = ?", categoryID).Find(&products).Error; err != nil {
		return nil, domain.PersistenceError(err)
	}
	return products, nil
}

// SearchByName does a case-insensitive substring match on the product name
func (s *ProductStore) SearchByName(name string) ([]domain.Product, error) {
	var products []domain.Product
	pattern := "%" + strings.ToLower(name) + "%"
	if err := s.db.Where("LOWER(name) LIKE ?", pattern).Find(&products).Error; err != nil {
		return nil, domain.PersistenceError(err)
	}
	return products, nil
}

func (s *ProductStore) Update(product *domain.Product) error {
	res := s.db.Model(&domain.Product{}).Where("id = ?", product.ID).
		Select("category_id", "name", "description", "price", "stock", "image").
		Updates(map[string]any{
			"category_id": product.CategoryID,
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"stock":       product.Stock,
			"image":       product.Image,
		})
	if res.Error != nil {
		return domain.PersistenceError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *ProductStore) Delete(id uint) error {
	res := s.db.Delete(&domain.Product{}, id)
	if res.Error != nil {
		return domain.PersistenceError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateStock overwrites the stock value directly. Admin tooling only;
// checkout uses DecrementStock.
func (s *ProductStore) UpdateStock(id uint, stock int) error {
	if stock < 0 {
		return domain.ValidationError("stock must be non-negative")
	}
	res := s.db.Model(&domain.Product{}).Where("id = ?", id).Update("stock", stock)
	if res.Error != nil {
		return domain.PersistenceError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DecrementStock subtracts quantity from stock inside the caller's
// transaction. The update is conditional on stock covering the quantity, so
// stock can never go negative even when two checkouts race on the same
// product; the false return tells the caller to abort and roll back.
func (s *ProductStore) DecrementStock(tx *gorm.DB, id uint, quantity int) (bool, error) {
	res := tx.Model(&domain.Product{}).
		Where("id = ? AND stock >= ?", id, quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
	if res.Error != nil {
		return false, domain.PersistenceError(res.Error)
	}
	return res.RowsAffected == 1, nil
}
