package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventure/events-api/internal/validation"
	appErrors "github.com/eventure/events-api/pkg/errors"
)

type blobStoreStub struct {
	objects map[string][]byte
	err     error
}

func newBlobStoreStub() *blobStoreStub {
	return &blobStoreStub{objects: make(map[string][]byte)}
}

func (s *blobStoreStub) Put(name string, r io.Reader) error {
	if s.err != nil {
		return s.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.objects[name] = data
	return nil
}

func (s *blobStoreStub) URL(name string) string {
	return "https://cdn.example.com/uploads/" + name
}

func newUploadService(store *blobStoreStub) *UploadService {
	return NewUploadService(store, validation.NewImageValidator(0, nil), nil, nil)
}

func TestUploadStoresObjectAndReturnsURL(t *testing.T) {
	store := newBlobStoreStub()
	svc := newUploadService(store)

	payload := bytes.Repeat([]byte{0x89}, 1024)
	url, err := svc.Upload(context.Background(), ImageUpload{
		Size:     int64(len(payload)),
		MimeType: "image/png",
		Content:  bytes.NewReader(payload),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))
	require.Len(t, store.objects, 1)
	for _, stored := range store.objects {
		assert.Equal(t, payload, stored)
	}
}

func TestUploadGeneratesDistinctObjectNames(t *testing.T) {
	store := newBlobStoreStub()
	svc := newUploadService(store)

	for i := 0; i < 2; i++ {
		_, err := svc.Upload(context.Background(), ImageUpload{
			Size:     4,
			MimeType: "image/jpeg",
			Content:  strings.NewReader("data"),
		})
		require.NoError(t, err)
	}
	assert.Len(t, store.objects, 2)
}

func TestUploadEmptyPayloadRejectedBeforeStore(t *testing.T) {
	store := newBlobStoreStub()
	svc := newUploadService(store)

	_, err := svc.Upload(context.Background(), ImageUpload{Size: 0, MimeType: "image/png", Content: strings.NewReader("")})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NO_FILE", appErr.Code)
	assert.Empty(t, store.objects)
}

func TestUploadInvalidTypeRejectedBeforeStore(t *testing.T) {
	store := newBlobStoreStub()
	svc := newUploadService(store)

	_, err := svc.Upload(context.Background(), ImageUpload{Size: 16, MimeType: "image/gif", Content: strings.NewReader("GIF89a")})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_FILE", appErr.Code)
	assert.Empty(t, store.objects)
}

func TestUploadStoreFailureSignalsRetry(t *testing.T) {
	store := newBlobStoreStub()
	store.err = errors.New("disk full")
	svc := newUploadService(store)

	_, err := svc.Upload(context.Background(), ImageUpload{Size: 8, MimeType: "image/webp", Content: strings.NewReader("RIFFwebp")})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "STORAGE_TIMEOUT", appErr.Code)
	assert.Equal(t, "Upload failed. Please try again.", appErr.Message)
}
