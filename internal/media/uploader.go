// Package media relays uploaded images to the Cloudinary media host.
package media

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

//go:generate mockgen -source=uploader.go -destination=mocks/uploader.go -package=mocks

// Uploader stores one image and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader) (string, error)
}

// CloudinaryUploader uploads images to Cloudinary with automatic
// quality and AVIF delivery.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cloudName, apiKey, apiSecret string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader) (string, error) {
	result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Transformation: "q_auto,f_avif",
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}
