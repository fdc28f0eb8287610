package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"gadget-galaxy/internal/models"
)

// CartStore is the persistence surface the cart handlers need.
type CartStore interface {
	FindByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	Create(ctx context.Context, item *models.CartItem) error
	UpdateQuantity(ctx context.Context, id string, quantity int) error
	Delete(ctx context.Context, id string) error
}

type CartHandler struct {
	store CartStore
}

func NewCartHandler(store CartStore) *CartHandler {
	return &CartHandler{store: store}
}

type addCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type quantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// GET /carts/:email
func (h *CartHandler) GetCart(c *gin.Context) {
	items, err := h.store.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		storeError(c, err, "cart")
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /carts
func (h *CartHandler) AddToCart(c *gin.Context) {
	var req addCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.CartItem{
		ProductID: req.ProductID,
		Email:     req.Email,
		Quantity:  req.Quantity,
	}

	if err := h.store.Create(c.Request.Context(), &item); err != nil {
		storeError(c, err, "cart")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// PATCH /carts/:id
func (h *CartHandler) UpdateCartQuantity(c *gin.Context) {
	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.UpdateQuantity(c.Request.Context(), c.Param("id"), req.Quantity); err != nil {
		storeError(c, err, "cart")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart updated"})
}

// DELETE /carts/:id
func (h *CartHandler) DeleteCartItem(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		storeError(c, err, "cart")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cart item deleted"})
}
