package service_test

import (
	"context"
	"testing"

	"github.com/foodgram/backend/internal/service"
	"github.com/foodgram/backend/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const onePixelPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

func TestImageStore(t *testing.T) {
	store := testhelpers.NewMemoryBlobStore()
	svc := service.NewImageService(store)
	ctx := context.Background()

	img, err := svc.Store(ctx, onePixelPNG)
	require.NoError(t, err)
	assert.Regexp(t, `^https://media\.test/recipes/images/[0-9a-f-]+\.png$`, img.URL)
	assert.Contains(t, store.Objects, img.Key)

	linked, err := svc.Store(ctx, "https://example.com/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/a.jpg", linked.URL)
	assert.Empty(t, linked.Key)

	svc.Discard(ctx, linked)
	assert.Len(t, store.Objects, 1)
	svc.Discard(ctx, img)
	assert.Empty(t, store.Objects)

	var verr *service.ValidationError
	for _, bad := range []string{"ftp://x", "data:image/png,notbase64", "data:image/png;base64,!!!", "data:text/plain;base64,aGVsbG8="} {
		_, err := svc.Store(ctx, bad)
		assert.ErrorAs(t, err, &verr, bad)
	}
}
