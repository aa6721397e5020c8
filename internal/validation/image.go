package validation

import (
	"fmt"
	"strings"

	appErrors "github.com/eventure/events-api/pkg/errors"
)

// ImageValidator checks uploaded file metadata. Trust is placed in the
// declared content type only; bytes are not sniffed. That is an
// accepted limitation of the upload contract, not an oversight.
type ImageValidator struct {
	maxSize int64
	mimeSet map[string]struct{}
}

// NewImageValidator applies the configured limits, falling back to
// 5 MiB and the JPEG/PNG/WebP set.
func NewImageValidator(maxSize int64, allowedMIMEs []string) *ImageValidator {
	if maxSize <= 0 {
		maxSize = 5 * 1024 * 1024
	}
	if len(allowedMIMEs) == 0 {
		allowedMIMEs = []string{"image/jpeg", "image/png", "image/webp"}
	}
	mimeSet := make(map[string]struct{}, len(allowedMIMEs))
	for _, mt := range allowedMIMEs {
		mimeSet[strings.ToLower(mt)] = struct{}{}
	}
	return &ImageValidator{maxSize: maxSize, mimeSet: mimeSet}
}

// ValidateImageFile accepts or rejects a file by declared size and
// content type. The size message reports the actual size in MiB to two
// decimal places.
func (iv *ImageValidator) ValidateImageFile(size int64, contentType string) *appErrors.Error {
	if size > iv.maxSize {
		return appErrors.Clone(appErrors.ErrInvalidFile,
			fmt.Sprintf("File size must be less than 5MB (current: %.2fMB)", float64(size)/1024/1024))
	}
	if _, ok := iv.mimeSet[strings.ToLower(contentType)]; !ok {
		return appErrors.Clone(appErrors.ErrInvalidFile, "Only JPEG, PNG, and WebP images are allowed")
	}
	return nil
}
