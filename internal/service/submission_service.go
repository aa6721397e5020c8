package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/eventure/events-api/internal/dto"
	"github.com/eventure/events-api/internal/models"
	appErrors "github.com/eventure/events-api/pkg/errors"
)

type submissionStore interface {
	Create(ctx context.Context, event *models.SubmittedEvent) error
	ListRecent(ctx context.Context, limit int) ([]models.SubmittedEvent, error)
}

type submissionValidator interface {
	ValidateSubmission(req dto.SubmitEventRequest) *appErrors.FieldErrors
}

// SubmissionService orchestrates the write path: validate, assign an
// identifier, persist one row, return the store-confirmed record.
type SubmissionService struct {
	repo      submissionStore
	validator submissionValidator
	metrics   *MetricsService
	logger    *zap.Logger
}

// NewSubmissionService constructs the service.
func NewSubmissionService(repo submissionStore, validator submissionValidator, metrics *MetricsService, logger *zap.Logger) *SubmissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionService{repo: repo, validator: validator, metrics: metrics, logger: logger}
}

// Submit validates the payload and persists it. The identifier is an
// opaque random token assigned here, never client-supplied. On a store
// failure the caller sees only an opaque SQL_INSERT_FAILED; the cause
// is logged with a correlation token for operators.
func (s *SubmissionService) Submit(ctx context.Context, req dto.SubmitEventRequest) (*models.SubmittedEvent, error) {
	if fieldErrs := s.validator.ValidateSubmission(req); fieldErrs != nil {
		return nil, fieldErrs
	}

	event := &models.SubmittedEvent{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Description:  req.Description,
		EventDate:    req.EventDate,
		StartTime:    req.StartTime,
		EndTime:      nilIfEmpty(req.EndTime),
		Location:     req.Location,
		Category:     req.Category,
		ContactEmail: nilIfEmpty(req.ContactEmail),
		ContactPhone: nilIfEmpty(req.ContactPhone),
		Website:      nilIfEmpty(req.Website),
		ImageURL:     nilIfEmpty(req.ImageURL),
	}

	start := time.Now()
	err := s.repo.Create(ctx, event)
	s.metrics.ObserveInsert(time.Since(start))
	if err != nil {
		correlation := uuid.NewString()
		s.logger.Error("event insert failed",
			zap.String("correlation_id", correlation),
			zap.String("event_id", event.ID),
			zap.Error(err),
		)
		return nil, appErrors.Wrap(err, appErrors.ErrInsertFailed.Code, appErrors.ErrInsertFailed.Status, appErrors.ErrInsertFailed.Message)
	}

	return event, nil
}

// Recent returns the newest submissions.
func (s *SubmissionService) Recent(ctx context.Context, limit int) ([]models.SubmittedEvent, error) {
	records, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		correlation := uuid.NewString()
		s.logger.Error("recent submissions query failed",
			zap.String("correlation_id", correlation),
			zap.Error(err),
		)
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Failed to fetch events")
	}
	return records, nil
}

func nilIfEmpty(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
