package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"gadget-galaxy/internal/media"
)

// maxUploadImages caps one upload request.
const maxUploadImages = 20

type MediaHandler struct {
	uploader media.Uploader
}

func NewMediaHandler(uploader media.Uploader) *MediaHandler {
	return &MediaHandler{uploader: uploader}
}

// POST /upload-images
//
// Relays each file of the multipart "images" field to the media host
// and returns their public URLs in request order.
func (h *MediaHandler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no images provided"})
		return
	}
	if len(files) > maxUploadImages {
		c.JSON(http.StatusBadRequest, gin.H{"error": "too many images"})
		return
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
			return
		}

		url, err := h.uploader.Upload(c.Request.Context(), f)
		f.Close()
		if err != nil {
			log.Println("error uploading images:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "error uploading images"})
			return
		}
		urls = append(urls, url)
	}

	c.JSON(http.StatusOK, gin.H{"images": urls})
}
