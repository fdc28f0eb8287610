package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"gadget-galaxy/internal/models"
	"gadget-galaxy/internal/query"
)

// ProductStore is the persistence surface the product handlers need.
type ProductStore interface {
	Create(ctx context.Context, product *models.Product) error
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Search(ctx context.Context, params query.Params) (*models.ProductPage, error)
	Update(ctx context.Context, id string, fields bson.M) error
	Delete(ctx context.Context, id string) error
}

// CartCleaner removes cart items that reference a product.
type CartCleaner interface {
	DeleteByProduct(ctx context.Context, productID string) (int64, error)
}

type ProductHandler struct {
	store ProductStore
	carts CartCleaner
}

func NewProductHandler(store ProductStore, carts CartCleaner) *ProductHandler {
	return &ProductHandler{store: store, carts: carts}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.store.FindAll(c.Request.Context())
	if err != nil {
		storeError(c, err, "product")
		return
	}
	c.JSON(http.StatusOK, products)
}

// GET /products/:id
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	product, err := h.store.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err, "product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// GET /all-product
//
// The filtered, sorted, paginated listing with page-scoped facets.
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	params := query.FromValues(c.Request.URL.Query())

	page, err := h.store.Search(c.Request.Context(), params)
	if err != nil {
		storeError(c, err, "product")
		return
	}
	c.JSON(http.StatusOK, page)
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.Create(c.Request.Context(), &product); err != nil {
		storeError(c, err, "product")
		return
	}
	c.JSON(http.StatusCreated, product)
}

// PATCH /products/:id
//
// Merge-updates arbitrary product fields; identity and creation
// timestamp stay server-owned.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var fields bson.M
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sanitizeUpdate(fields)
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no valid fields to update"})
		return
	}

	if err := h.store.Update(c.Request.Context(), c.Param("id"), fields); err != nil {
		storeError(c, err, "product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product updated"})
}

// DELETE /products/:id
//
// Cart entries referencing the product are removed first, best-effort:
// a cleanup failure is logged and never blocks the product delete.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.carts.DeleteByProduct(c.Request.Context(), id); err != nil {
		log.Println("could not clean up cart entries for product", id, ":", err)
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		storeError(c, err, "product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
}

// sanitizeUpdate strips fields clients must not set directly.
func sanitizeUpdate(fields bson.M) {
	for _, field := range []string{"_id", "id", "createdAt", "updatedAt"} {
		delete(fields, field)
	}
}
