package utils

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	config "github.com/phillip/topup-intake-go/config"
)

// CloudinaryStore is the alternative screenshot store. Uploads are public
// by default and served from the returned secure URL.
type CloudinaryStore struct {
	cld *cloudinary.Cloudinary
	now func() time.Time
}

func NewCloudinaryStore(cfg config.Cloudinary) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary config error: %w", err)
	}
	return &CloudinaryStore{cld: cld, now: time.Now}, nil
}

// ✅ Upload to "orders/"
func (c *CloudinaryStore) Upload(ctx context.Context, shot Screenshot) (string, error) {
	object := ObjectName(shot.Filename, c.now())

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := c.cld.Upload.Upload(ctx, bytes.NewReader(shot.Data), cloudinaryParams(object))
	if err != nil {
		return "", fmt.Errorf("upload error: %w", err)
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("upload error: %s", resp.Error.Message)
	}

	return resp.SecureURL, nil
}

// 🔹 Helper: public id is the object name without its extension
func cloudinaryParams(object string) uploader.UploadParams {
	return uploader.UploadParams{
		PublicID:     strings.TrimSuffix(object, path.Ext(object)),
		Format:       strings.TrimPrefix(path.Ext(object), "."),
		Overwrite:    api.Bool(false),
		ResourceType: "image",
	}
}
