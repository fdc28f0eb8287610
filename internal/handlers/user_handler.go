package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gadget-galaxy/internal/models"
	"gadget-galaxy/internal/repository"
)

// UserStore is the persistence surface the user handlers need.
type UserStore interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateRole(ctx context.Context, id, role string) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type UserHandler struct {
	store UserStore
}

func NewUserHandler(store UserStore) *UserHandler {
	return &UserHandler{store: store}
}

type createUserRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedBy string `json:"createdBy"`
}

type roleRequest struct {
	Role string `json:"role" binding:"required"`
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GET /users
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.store.FindAll(c.Request.Context())
	if err != nil {
		storeError(c, err, "user")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /users/:email
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	user, err := h.store.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		storeError(c, err, "user")
		return
	}
	c.JSON(http.StatusOK, user)
}

// POST /users
//
// Creating an already-registered email is a no-op with a message, not
// an error.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		Status:    req.Status,
		CreatedBy: req.CreatedBy,
	}

	if err := h.store.Create(c.Request.Context(), &user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			c.JSON(http.StatusOK, gin.H{"message": "user already exists"})
			return
		}
		storeError(c, err, "user")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// PATCH /users/role/:id
func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	var req roleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.UpdateRole(c.Request.Context(), c.Param("id"), req.Role); err != nil {
		storeError(c, err, "user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user role updated"})
}

// PATCH /users/status/:id
func (h *UserHandler) UpdateUserStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		storeError(c, err, "user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user status updated"})
}

// DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		storeError(c, err, "user")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
}
