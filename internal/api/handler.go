package api

import (
	"context"

	"dailydiet/server/internal/models"
	"dailydiet/server/internal/store"
)

// Store is the persistence surface the handlers need. The gorm-backed
// implementation lives in internal/store; tests substitute an in-memory
// fake.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByCredentials(ctx context.Context, username, password string) (*models.User, error)

	CreateMeal(ctx context.Context, meal *models.Meal) error
	ListMeals(ctx context.Context, userID string) ([]models.Meal, error)
	GetMeal(ctx context.Context, id, userID string) (*models.Meal, error)
	UpdateMeal(ctx context.Context, id, userID string, fields store.MealFields) error
	DeleteMeal(ctx context.Context, id, userID string) error
}

// Handler contains API handlers
type Handler struct {
	store Store
}

// NewHandler creates a new API handler
func NewHandler(store Store) *Handler {
	return &Handler{
		store: store,
	}
}
