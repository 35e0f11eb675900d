package api

import (
	"net/http"

	"dailydiet/server/internal/models"
	"dailydiet/server/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// registerRequest is the body for POST /users
type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// loginRequest is the body for POST /users/login
type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterUser creates a new user account
func (h *Handler) RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &models.User{
		ID:       uuid.New().String(),
		Username: req.Username,
		Password: req.Password,
	}

	if err := h.store.CreateUser(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusCreated)
}

// LoginUser checks credentials and establishes a session cookie. An
// already-present session cookie is left alone even when it does not match
// the user logging in; login still reports success in that case.
func (h *Handler) LoginUser(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.store.FindUserByCredentials(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	if _, ok := session.FromRequest(c); !ok {
		session.Set(c, user.ID)
	}

	c.Status(http.StatusOK)
}

// LogoutUser clears the session cookie. There is no server-side session
// state to invalidate.
func (h *Handler) LogoutUser(c *gin.Context) {
	session.Clear(c)
	c.Status(http.StatusOK)
}
