package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"gadget-galaxy/internal/models"
)

// CategoryStore is the persistence surface the category handler needs.
type CategoryStore interface {
	FindAll(ctx context.Context) ([]models.Category, error)
}

type CategoryHandler struct {
	store CategoryStore
}

func NewCategoryHandler(store CategoryStore) *CategoryHandler {
	return &CategoryHandler{store: store}
}

// GET /category
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.store.FindAll(c.Request.Context())
	if err != nil {
		storeError(c, err, "category")
		return
	}
	c.JSON(http.StatusOK, categories)
}
