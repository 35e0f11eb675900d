package store

import (
	"context"
	"errors"
	"fmt"

	"dailydiet/server/internal/models"

	"gorm.io/gorm"
)

// MealFields are the client-updatable columns of a meal. Update writes all
// of them, matching the full-replace semantics of PUT.
type MealFields struct {
	Name        string
	Description string
	MealDate    string
	OnDiet      bool
}

// CreateMeal inserts a new meal row.
func (s *Store) CreateMeal(ctx context.Context, meal *models.Meal) error {
	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return fmt.Errorf("failed to create meal: %w", err)
	}
	return nil
}

// ListMeals returns every meal owned by the given user.
func (s *Store) ListMeals(ctx context.Context, userID string) ([]models.Meal, error) {
	var meals []models.Meal
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	return meals, nil
}

// GetMeal returns the meal matching both id and owner, or (nil, nil) when
// nothing matches. A meal owned by another user is indistinguishable from a
// missing one.
func (s *Store) GetMeal(ctx context.Context, id, userID string) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&meal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get meal: %w", err)
	}
	return &meal, nil
}

// UpdateMeal writes the given fields to the meal matching both id and
// owner. Zero matched rows is not an error: the caller cannot tell a no-op
// from a real update, which mirrors the store's documented contract.
func (s *Store) UpdateMeal(ctx context.Context, id, userID string, fields MealFields) error {
	// Updates via map so a false on_diet is written rather than skipped.
	err := s.db.WithContext(ctx).
		Model(&models.Meal{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"name":        fields.Name,
			"description": fields.Description,
			"meal_date":   fields.MealDate,
			"on_diet":     fields.OnDiet,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update meal: %w", err)
	}
	return nil
}

// DeleteMeal removes the meal matching both id and owner. Deleting a meal
// that does not exist (or belongs to someone else) succeeds silently.
func (s *Store) DeleteMeal(ctx context.Context, id, userID string) error {
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Meal{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}
	return nil
}
