package store

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sudhev0011/VoterMngmtServer/models"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Register stores a new user with a bcrypt-hashed password and role "user".
// Returns ErrConflict when the username is taken; the unique index backs the
// pre-check under concurrent registrations.
func (s *UserStore) Register(username, password string) (*models.User, error) {
	var existing models.User
	err := s.db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil, ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{Username: username, Password: string(hash), Role: models.RoleUser}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// Authenticate returns the user when the username exists and the password
// matches its hash. Unknown username and wrong password both return
// ErrInvalidCredentials so callers cannot enumerate usernames.
func (s *UserStore) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

// FindOrCreateByUsername backs federated login: the first login with a
// verified external identity creates a local user with role "user" and no
// usable password.
func (s *UserStore) FindOrCreateByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	user = models.User{Username: username, Role: models.RoleUser}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost the race to a concurrent first login; the row exists now.
			if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
				return nil, fmt.Errorf("lookup user: %w", err)
			}
			return &user, nil
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}
