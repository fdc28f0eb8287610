package handlers

import (
	"bytes"
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

type fakeUserStore struct {
	users []models.User

	roleID, role     string
	statusID, status string
	deletedID        string
	err              error
}

func (f *fakeUserStore) FindAll(context.Context) ([]models.User, error) {
	return f.users, f.err
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			return &f.users[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if f.err != nil {
		return f.err
	}
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserStore) UpdateRole(_ context.Context, id, role string) error {
	f.roleID, f.role = id, role
	return f.err
}

func (f *fakeUserStore) UpdateStatus(_ context.Context, id, status string) error {
	f.statusID, f.status = id, status
	return f.err
}

func (f *fakeUserStore) Delete(_ context.Context, id string) error {
	f.deletedID = id
	return f.err
}

func userRouter(store *fakeUserStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(store)
	r := gin.New()
	r.GET("/users", h.GetUsers)
	r.GET("/users/:email", h.GetUserByEmail)
	r.POST("/users", h.CreateUser)
	r.PATCH("/users/role/:id", h.UpdateUserRole)
	r.PATCH("/users/status/:id", h.UpdateUserStatus)
	r.DELETE("/users/:id", h.DeleteUser)
	return r
}

func postJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateUser(t *testing.T) {
	store := &fakeUserStore{}
	r := userRouter(store)

	w := postJSON(r, http.MethodPost, "/users", `{"name": "Ada", "email": "ada@example.com", "role": "buyer"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, store.users, 1)
	assert.Equal(t, "ada@example.com", store.users[0].Email)
}

func TestCreateUser_ExistingEmailIsNoOp(t *testing.T) {
	store := &fakeUserStore{users: []models.User{{Email: "ada@example.com"}}}
	r := userRouter(store)

	w := postJSON(r, http.MethodPost, "/users", `{"name": "Ada", "email": "ada@example.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message": "user already exists"}`, w.Body.String())
	assert.Len(t, store.users, 1)
}

func TestCreateUser_InvalidEmail(t *testing.T) {
	r := userRouter(&fakeUserStore{})

	w := postJSON(r, http.MethodPost, "/users", `{"name": "Ada", "email": "not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserByEmail_NotFound(t *testing.T) {
	r := userRouter(&fakeUserStore{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/missing@example.com", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "user not found"}`, w.Body.String())
}

func TestUpdateUserRole(t *testing.T) {
	store := &fakeUserStore{}
	r := userRouter(store)

	w := postJSON(r, http.MethodPatch, "/users/role/abc123", `{"role": "admin"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc123", store.roleID)
	assert.Equal(t, "admin", store.role)
}

func TestUpdateUserStatus_MissingField(t *testing.T) {
	r := userRouter(&fakeUserStore{})

	w := postJSON(r, http.MethodPatch, "/users/status/abc123", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteUser(t *testing.T) {
	store := &fakeUserStore{}
	r := userRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/users/abc123", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc123", store.deletedID)
}
