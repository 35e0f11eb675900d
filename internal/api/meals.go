package api

import (
	"net/http"

	"dailydiet/server/internal/models"
	"dailydiet/server/internal/session"
	"dailydiet/server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// mealRequest is the body for POST /meals and PUT /meals/:id. OnDiet is a
// pointer so a literal false still satisfies the required check.
type mealRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	MealDate    string `json:"mealDate" binding:"required"`
	OnDiet      *bool  `json:"onDiet" binding:"required"`
}

// mealURI validates the :id path parameter
type mealURI struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// MealMetrics is the aggregate returned by GET /meals/metrics
type MealMetrics struct {
	TotalMeals          int `json:"totalMeals"`
	TotalMealsOnDiet    int `json:"totalMealsOnDiet"`
	TotalMealsNotOnDiet int `json:"totalMealsNotOnDiet"`
}

// ListMeals returns every meal owned by the session's user
func (h *Handler) ListMeals(c *gin.Context) {
	userID := session.UserID(c)

	meals, err := h.store.ListMeals(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if meals == nil {
		meals = []models.Meal{}
	}

	c.JSON(http.StatusOK, gin.H{"meals": meals})
}

// GetMeal returns a single meal, or a null meal when nothing matches the
// id under this session's user
func (h *Handler) GetMeal(c *gin.Context) {
	var uri mealURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := session.UserID(c)

	meal, err := h.store.GetMeal(c.Request.Context(), uri.ID, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"meal": meal})
}

// CreateMeal inserts a meal owned by the session's user
func (h *Handler) CreateMeal(c *gin.Context) {
	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meal := &models.Meal{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		MealDate:    req.MealDate,
		OnDiet:      *req.OnDiet,
		UserID:      session.UserID(c),
	}

	if err := h.store.CreateMeal(c.Request.Context(), meal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusCreated)
}

// UpdateMeal rewrites a meal's fields. A mismatched id or owner updates
// nothing and still reports success; callers cannot tell the difference.
func (h *Handler) UpdateMeal(c *gin.Context) {
	var uri mealURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req mealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := store.MealFields{
		Name:        req.Name,
		Description: req.Description,
		MealDate:    req.MealDate,
		OnDiet:      *req.OnDiet,
	}

	if err := h.store.UpdateMeal(c.Request.Context(), uri.ID, session.UserID(c), fields); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusOK)
}

// DeleteMeal removes a meal, succeeding silently when nothing matches
func (h *Handler) DeleteMeal(c *gin.Context) {
	var uri mealURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.DeleteMeal(c.Request.Context(), uri.ID, session.UserID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusOK)
}

// GetMealMetrics folds the user's meals into the on/off diet counters
func (h *Handler) GetMealMetrics(c *gin.Context) {
	userID := session.UserID(c)

	meals, err := h.store.ListMeals(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"metrics": computeMetrics(meals)})
}

// computeMetrics counts totals in a single pass over an already
// user-scoped result set.
func computeMetrics(meals []models.Meal) MealMetrics {
	var m MealMetrics
	for _, meal := range meals {
		m.TotalMeals++
		if meal.OnDiet {
			m.TotalMealsOnDiet++
		} else {
			m.TotalMealsNotOnDiet++
		}
	}
	return m
}
