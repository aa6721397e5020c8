package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/eventure/events-api/internal/dto"
	"github.com/eventure/events-api/internal/service"
	appErrors "github.com/eventure/events-api/pkg/errors"
	"github.com/eventure/events-api/pkg/response"
)

type uploadService interface {
	Upload(ctx context.Context, upload service.ImageUpload) (string, error)
}

// UploadHandler serves the image upload endpoint.
type UploadHandler struct {
	service uploadService
}

// NewUploadHandler constructs the handler.
func NewUploadHandler(service uploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload godoc
// @Summary Upload an event image
// @Tags Submissions
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} dto.UploadImageResponse
// @Failure 400 {object} errors.Error
// @Failure 503 {object} errors.Error
// @Router /events/upload-image [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.ErrNoFile)
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open file"))
		return
	}
	defer src.Close() //nolint:errcheck

	url, err := h.service.Upload(c.Request.Context(), service.ImageUpload{
		Size:     fileHeader.Size,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Content:  src,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.UploadImageResponse{ImageURL: url})
}
