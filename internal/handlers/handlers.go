// Package handlers exposes the HTTP surface of the catalog. Each
// resource gets one handler type over a small store interface so the
// handlers can be exercised against fakes.
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"gadget-galaxy/internal/repository"
)

// storeError maps repository sentinel errors onto HTTP statuses. Every
// single-document miss is a 404 with a uniform body.
func storeError(c *gin.Context, err error, resource string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + resource + " ID"})
	default:
		log.Printf("%s: storage error: %v", c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
	}
}
