package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gadget-galaxy/internal/models"
	"gadget-galaxy/internal/repository"
)

type fakeCartStore struct {
	items []models.CartItem

	quantityID string
	quantity   int
	deletedID  string
	err        error
}

func (f *fakeCartStore) FindByEmail(_ context.Context, email string) ([]models.CartItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	items := make([]models.CartItem, 0)
	for _, item := range f.items {
		if item.Email == email {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakeCartStore) Create(_ context.Context, item *models.CartItem) error {
	if f.err != nil {
		return f.err
	}
	item.ID = primitive.NewObjectID()
	f.items = append(f.items, *item)
	return nil
}

func (f *fakeCartStore) UpdateQuantity(_ context.Context, id string, quantity int) error {
	f.quantityID, f.quantity = id, quantity
	return f.err
}

func (f *fakeCartStore) Delete(_ context.Context, id string) error {
	f.deletedID = id
	return f.err
}

func cartRouter(store *fakeCartStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCartHandler(store)
	r := gin.New()
	r.GET("/carts/:email", h.GetCart)
	r.POST("/carts", h.AddToCart)
	r.PATCH("/carts/:id", h.UpdateCartQuantity)
	r.DELETE("/carts/:id", h.DeleteCartItem)
	return r
}

func TestGetCart_ScopedByEmail(t *testing.T) {
	store := &fakeCartStore{items: []models.CartItem{
		{Email: "ada@example.com", ProductID: "p1", Quantity: 2},
		{Email: "bob@example.com", ProductID: "p2", Quantity: 1},
	}}
	r := cartRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/carts/ada@example.com", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"p1"`)
	assert.NotContains(t, w.Body.String(), `"p2"`)
}

func TestAddToCart(t *testing.T) {
	store := &fakeCartStore{}
	r := cartRouter(store)

	w := postJSON(r, http.MethodPost, "/carts", `{"productId": "p1", "email": "ada@example.com", "quantity": 2}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.items, 1)
	assert.Equal(t, 2, store.items[0].Quantity)
}

func TestAddToCart_RejectsZeroQuantity(t *testing.T) {
	r := cartRouter(&fakeCartStore{})

	w := postJSON(r, http.MethodPost, "/carts", `{"productId": "p1", "email": "ada@example.com", "quantity": 0}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCartQuantity(t *testing.T) {
	store := &fakeCartStore{}
	r := cartRouter(store)

	w := postJSON(r, http.MethodPatch, "/carts/abc123", `{"quantity": 5}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc123", store.quantityID)
	assert.Equal(t, 5, store.quantity)
}

func TestDeleteCartItem_NotFound(t *testing.T) {
	store := &fakeCartStore{err: repository.ErrNotFound}
	r := cartRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/carts/abc123", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "cart not found"}`, w.Body.String())
}
