package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eventure/events-api/internal/dto"
	"github.com/eventure/events-api/internal/models"
	appErrors "github.com/eventure/events-api/pkg/errors"
	"github.com/eventure/events-api/pkg/response"
)

type submissionService interface {
	Submit(ctx context.Context, req dto.SubmitEventRequest) (*models.SubmittedEvent, error)
	Recent(ctx context.Context, limit int) ([]models.SubmittedEvent, error)
}

// SubmissionHandler serves the event submission endpoints.
type SubmissionHandler struct {
	service submissionService
}

// NewSubmissionHandler constructs the handler.
func NewSubmissionHandler(service submissionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// Submit godoc
// @Summary Submit a new event
// @Tags Submissions
// @Accept json
// @Produce json
// @Param payload body dto.SubmitEventRequest true "Submission"
// @Success 200 {object} dto.SubmitEventResponse
// @Failure 400 {object} errors.FieldErrors
// @Failure 500 {object} errors.Error
// @Router /events/submit [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req dto.SubmitEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid submission payload"))
		return
	}

	event, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.SubmitEventResponse{ID: event.ID, CreatedAt: event.CreatedAt})
}

// Recent godoc
// @Summary List recently submitted events
// @Tags Submissions
// @Produce json
// @Param limit query int false "Maximum rows, default 10, cap 100"
// @Success 200 {object} dto.RecentSubmissionsResponse
// @Router /events/recent [get]
func (h *SubmissionHandler) Recent(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	records, err := h.service.Recent(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.RecentSubmissionsResponse{Events: records, Total: len(records)})
}
