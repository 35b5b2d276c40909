package storage

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/xerodma/panel/storage/model"
)

// bcryptCost is the fixed work factor for all password hashes. It is a
// constant rather than a per-call parameter so hashing latency stays
// predictable under load.
const bcryptCost = 10

// hashPassword returns a bcrypt hash of the given password
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}
	return string(hash), nil
}

// verifyPassword checks a password against a stored bcrypt hash
func verifyPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// UsersStorage implements model.UsersStore using GORM
type UsersStorage struct {
	db *gorm.DB
}

// Count returns the number of users present in the store
func (s *UsersStorage) Count() (int64, error) {
	var count int64
	if err := s.db.Model(&model.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// List returns all users (without password hashes)
func (s *UsersStorage) List() ([]model.User, error) {
	var users []model.User
	if err := s.db.Model(&model.User{}).Find(&users).Error; err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// Get returns a user by username
func (s *UsersStorage) Get(username string) (*model.User, error) {
	var u model.User
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.NotFoundErrorFmt("user not found: %s", username)
		}
		return nil, err
	}
	u.PasswordHash = ""
	return &u, nil
}

// Create creates a user with a bcrypt-hashed password
func (s *UsersStorage) Create(username, password, role, displayName string) (*model.User, error) {
	if len(username) == 0 || len(password) == 0 {
		return nil, errors.Errorf("username and password are required")
	}
	if role == "" {
		role = model.RoleStaff
	}
	var existing int64
	if err := s.db.Model(&model.User{}).Where("username = ?", username).Count(&existing).Error; err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, model.AlreadyExistsErrorFmt("user already exists: %s", username)
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	u := model.User{Username: username, PasswordHash: hash, Role: role, DisplayName: displayName}
	if err := s.db.Create(&u).Error; err != nil {
		return nil, err
	}
	u.PasswordHash = ""
	return &u, nil
}

// Update updates role / display name / password / disabled
func (s *UsersStorage) Update(username string, role, displayName, newPassword *string, disabled *bool) (*model.User, error) {
	var u model.User
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.NotFoundErrorFmt("user not found: %s", username)
		}
		return nil, err
	}
	if role != nil {
		u.Role = *role
	}
	if displayName != nil {
		u.DisplayName = *displayName
	}
	if disabled != nil {
		u.Disabled = *disabled
	}
	if newPassword != nil {
		if len(*newPassword) == 0 {
			return nil, errors.Errorf("password cannot be empty")
		}
		hash, err := hashPassword(*newPassword)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	if err := s.db.Save(&u).Error; err != nil {
		return nil, err
	}
	u.PasswordHash = ""
	return &u, nil
}

// Delete deletes a user by username
func (s *UsersStorage) Delete(username string) error {
	res := s.db.Where("username = ?", username).Delete(&model.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return model.NotFoundErrorFmt("user not found: %s", username)
	}
	return nil
}

// Authenticate checks a username/password combo and returns the user.
// An unknown username and a wrong password both yield
// model.InvalidCredentialsError so callers cannot distinguish them; only a
// failure of the store itself is returned as any other error.
func (s *UsersStorage) Authenticate(username, password string) (*model.User, error) {
	if len(username) == 0 || len(password) == 0 {
		return nil, model.MissingCredentialsError("username and password are required")
	}
	var u model.User
	if err := s.db.Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, model.InvalidCredentialsError("invalid credentials")
		}
		return nil, err
	}
	if u.Disabled || !verifyPassword(u.PasswordHash, password) {
		return nil, model.InvalidCredentialsError("invalid credentials")
	}
	u.PasswordHash = ""
	return &u, nil
}
