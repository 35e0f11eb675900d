package store

import (
	"context"
	"errors"
	"fmt"

	"dailydiet/server/internal/models"

	"gorm.io/gorm"
)

// CreateUser inserts a new user row.
func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByCredentials looks up a user by exact username and password
// equality. Returns (nil, nil) when no row matches so callers can treat a
// failed login as a normal outcome rather than a store error.
func (s *Store) FindUserByCredentials(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("username = ? AND password = ?", username, password).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}
