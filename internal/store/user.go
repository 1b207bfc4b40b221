package store

import (
	"errors"

	"shop_system/internal/domain"

	"gorm.io/gorm"
)

// UserStore is the user repository. Uniqueness of email is enforced by the
// database; callers that want a friendly error check GetByEmail first.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

func (s *UserStore) Create(user *domain.User) error {
	if err := s.db.Create(user).Error; err != nil {
		return domain.PersistenceError(err)
	}
	return nil
}

func (s *UserStore) GetByID(id uint) (*domain.User, error) {
	var user domain.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.PersistenceError(err)
	}
	return &user, nil
}

func (s *UserStore) GetByEmail(email string) (*domain.User, error) {
	var user domain.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.PersistenceError(err)
	}
	return &user, nil
}

func (s *UserStore) ListAll() ([]domain.User, error) {
	var users []domain.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, domain.PersistenceError(err)
	}
	return users, nil
}

// Update rewrites name, email and role. The password hash is managed by the
// auth service and is deliberately not touched here.
func (s *UserStore) Update(user *domain.User) error {
	res := s.db.Model(&domain.User{}).Where("id = ?", user.ID).
		Select("name", "email", "role").
		Updates(map[string]any{"name": user.Name, "email": user.Email, "role": user.Role})
	if res.Error != nil {
		return domain.PersistenceError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (s *UserStore) Delete(id uint) error {
	res := s.db.Delete(&domain.User{}, id)
	if res.Error != nil {
		return domain.PersistenceError(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
