package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gadget-galaxy/internal/auth"
)

func tokenRouter(svc *auth.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewTokenHandler(svc)
	r := gin.New()
	r.POST("/jwt", h.IssueToken)
	return r
}

func TestIssueToken(t *testing.T) {
	svc := auth.NewService("test-secret", time.Hour)
	r := tokenRouter(svc)

	w := postJSON(r, http.MethodPost, "/jwt", `{"email": "ada@example.com"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	claims, err := svc.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestIssueToken_InvalidBody(t *testing.T) {
	r := tokenRouter(auth.NewService("test-secret", time.Hour))

	w := postJSON(r, http.MethodPost, "/jwt", `{"email": "not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
