package service

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/foodgram/backend/internal/storage"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const maxImageBytes = 5 << 20

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ImageService turns the image field of a recipe request into a stored URL
type ImageService struct {
	store storage.BlobStore
}

func NewImageService(store storage.BlobStore) *ImageService {
	return &ImageService{store: store}
}

// StoredImage is the outcome of Store. Key is empty when nothing was uploaded.
type StoredImage struct {
	URL string
	Key string
}

// Store uploads a base64 data URI (data:image/png;base64,...) and returns the
// object URL. Absolute http(s) URLs are returned unchanged.
func (s *ImageService) Store(ctx context.Context, image string) (StoredImage, error) {
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return StoredImage{URL: image}, nil
	}
	if !strings.HasPrefix(image, "data:") {
		return StoredImage{}, fieldError("image", "must be a base64 data URI or an http(s) URL")
	}

	header, payload, ok := strings.Cut(strings.TrimPrefix(image, "data:"), ",")
	if !ok || !strings.HasSuffix(header, ";base64") {
		return StoredImage{}, fieldError("image", "malformed data URI")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return StoredImage{}, fieldError("image", "invalid base64 payload")
	}
	if len(data) > maxImageBytes {
		return StoredImage{}, fieldError("image", "image is larger than 5 MB")
	}

	contentType := strings.TrimSuffix(header, ";base64")
	if sniffed := http.DetectContentType(data); sniffed != "application/octet-stream" {
		contentType = sniffed
	}
	ext, ok := imageExtensions[contentType]
	if !ok {
		return StoredImage{}, fieldError("image", "unsupported image type "+contentType)
	}

	if s.store == nil {
		return StoredImage{}, errors.New("image storage is not configured")
	}
	key := "recipes/images/" + uuid.NewString() + ext
	url, err := s.store.Upload(ctx, key, data, contentType)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("image upload failed")
		return StoredImage{}, err
	}
	return StoredImage{URL: url, Key: key}, nil
}

// Discard removes an object uploaded by Store. It runs even when ctx is
// already cancelled and only logs failures.
func (s *ImageService) Discard(ctx context.Context, img StoredImage) {
	if img.Key == "" || s.store == nil {
		return
	}
	if err := s.store.Delete(context.WithoutCancel(ctx), img.Key); err != nil {
		log.Warn().Err(err).Str("key", img.Key).Msg("failed to remove orphaned image")
	}
}
