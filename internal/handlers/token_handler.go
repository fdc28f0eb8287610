package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TokenIssuer signs an access token for an identity.
type TokenIssuer interface {
	Issue(email string) (string, error)
}

type TokenHandler struct {
	issuer TokenIssuer
}

func NewTokenHandler(issuer TokenIssuer) *TokenHandler {
	return &TokenHandler{issuer: issuer}
}

type tokenRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// POST /jwt
func (h *TokenHandler) IssueToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.issuer.Issue(req.Email)
	if err != nil {
		log.Println("could not sign token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
