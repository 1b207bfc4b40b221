package service

import (
	"errors"
	"strings"

	"shop_system/internal/domain"
	"shop_system/internal/store"
	"shop_system/internal/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AuthService owns registration and credential verification. Plaintext
// passwords never leave this package; only bcrypt hashes are stored.
type AuthService struct {
	users *store.UserStore
}

func NewAuthService(users *store.UserStore) *AuthService {
	return &AuthService{users: users}
}

// Register creates a user with the given role. Self-registration always
// passes RoleCustomer; only the admin user endpoint passes RoleAdmin.
func (s *AuthService) Register(name, email, password, role string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if !utils.ValidName(name) {
		return nil, domain.ValidationError("name must be at least 2 characters, letters, spaces and hyphens only")
	}
	if !utils.ValidEmail(email) {
		return nil, domain.ValidationError("invalid email address")
	}
	if !utils.ValidPassword(password) {
		return nil, domain.ValidationError("password must be at least 8 characters")
	}
	if !domain.ValidRole(role) {
		return nil, domain.ValidationError("unknown role %q", role)
	}

	// Friendly duplicate check before hitting the unique constraint
	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &domain.User{Name: name, Email: email, Password: string(hash), Role: role}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
	}).Info("User registered")

	user.Password = ""
	return user, nil
}

// Authenticate verifies credentials and returns the user with the hash
// scrubbed. Unknown email and wrong password both come back as
// ErrInvalidCredentials so callers cannot probe which emails exist.
func (s *AuthService) Authenticate(email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	user.Password = ""
	return user, nil
}
