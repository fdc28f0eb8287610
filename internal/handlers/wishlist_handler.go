package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"gadget-galaxy/internal/models"
)

// WishlistStore is the persistence surface the wishlist handlers need.
type WishlistStore interface {
	FindByEmail(ctx context.Context, email string) ([]models.WishlistItem, error)
	Create(ctx context.Context, item *models.WishlistItem) error
	Delete(ctx context.Context, id string) error
}

type WishlistHandler struct {
	store WishlistStore
}

func NewWishlistHandler(store WishlistStore) *WishlistHandler {
	return &WishlistHandler{store: store}
}

type addWishlistRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
}

// GET /wishlist/:email
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	items, err := h.store.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		storeError(c, err, "wishlist")
		return
	}
	c.JSON(http.StatusOK, items)
}

// POST /wishlist
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	var req addWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.WishlistItem{
		ProductID: req.ProductID,
		Email:     req.Email,
	}

	if err := h.store.Create(c.Request.Context(), &item); err != nil {
		storeError(c, err, "wishlist")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// DELETE /wishlist/:id
func (h *WishlistHandler) DeleteWishlistItem(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		storeError(c, err, "wishlist")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "wishlist item deleted"})
}
