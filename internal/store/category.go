package store

import (
	"errors"

	"shop_system/internal/domain"

	"gorm.io/gorm"
)

// CategoryStore is the category repository
type CategoryStore struct {
	db *gorm.DB
}

func NewCategoryStore(db *gorm.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

func (s *CategoryStore) Create(category *domain.Category) error {
	if err := s.db.Create(category).Error; err != nil {
		return domain.PersistenceError(err)
	}
	return nil
}

func (s *CategoryStore) GetByID(id uint) (*domain.Category, error) {
	var category domain.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.PersistenceError(err)
	}
	return &category, nil
}

func (s *CategoryStore) ListAll() ([]domain.Category, error) {
	var categories []domain.Category
	if err := s.db.Find(&categories).Error; err != nil {
		return nil, domain.PersistenceError(err)
	}
	return categories, nil
}

func (s *CategoryStore) Update(category *domain.Category) error {
	res := s.db.Model(&domain.Category{}).Where("id = ?", category.ID).
		Select("name", "description").
		Updates(map[string]any{"name": category.Name, "description": category.Description})
	if res.Error != nil {
		return domain.PersistenceError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a category. Dependent products survive: their category
// reference is set to nil in the same transaction, never cascaded away.
func (s *CategoryStore) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Product{}).Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return domain.PersistenceError(err)
		}
		res := tx.Delete(&domain.Category{}, id)
		if res.Error != nil {
			return domain.PersistenceError(res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}
