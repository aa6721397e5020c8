package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appErrors "github.com/eventure/events-api/pkg/errors"
)

type blobStore interface {
	Put(name string, r io.Reader) error
	URL(name string) string
}

type imageValidator interface {
	ValidateImageFile(size int64, contentType string) *appErrors.Error
}

// ImageUpload carries the transient upload payload. Nothing of it is
// retained after the store write except the resulting URL.
type ImageUpload struct {
	Size     int64
	MimeType string
	Content  io.Reader
}

// UploadService streams validated images into blob storage under a
// generated object name and hands back the public URL.
type UploadService struct {
	store     blobStore
	validator imageValidator
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewUploadService constructs the service.
func NewUploadService(store blobStore, validator imageValidator, metrics *MetricsService, logger *zap.Logger) *UploadService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadService{store: store, validator: validator, metrics: metrics, logger: logger}
}

// Upload validates the file, writes it as a single object and returns
// its URL. An empty payload is rejected before the store is touched.
// Store-side failures surface as a generic retryable signal; the cause
// is logged with a correlation token.
func (s *UploadService) Upload(ctx context.Context, upload ImageUpload) (string, error) {
	if upload.Content == nil || upload.Size <= 0 {
		return "", appErrors.ErrNoFile
	}
	if err := s.validator.ValidateImageFile(upload.Size, upload.MimeType); err != nil {
		return "", err
	}

	name := objectName(upload.MimeType)
	if err := s.store.Put(name, upload.Content); err != nil {
		correlation := uuid.NewString()
		s.logger.Error("image upload failed",
			zap.String("correlation_id", correlation),
			zap.String("object", name),
			zap.Error(err),
		)
		return "", appErrors.Wrap(err, appErrors.ErrStorageTimeout.Code, appErrors.ErrStorageTimeout.Status, appErrors.ErrStorageTimeout.Message)
	}

	s.metrics.ObserveUploadSize(upload.Size)
	return s.store.URL(name), nil
}

// objectName derives a collision-free name from a random token plus a
// timestamp, with the extension carrying the declared content type.
func objectName(mimeType string) string {
	return fmt.Sprintf("%s-%d%s", uuid.NewString(), time.Now().UnixNano(), extensionFor(mimeType))
}

func extensionFor(mimeType string) string {
	switch strings.ToLower(mimeType) {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	}
	return ".bin"
}
