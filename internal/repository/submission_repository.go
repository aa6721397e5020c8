package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/eventure/events-api/internal/models"
)

// SubmissionRepository persists user-submitted events. There is no
// update or delete path; a row is written exactly once.
type SubmissionRepository struct {
	db *sqlx.DB
}

// NewSubmissionRepository constructs the repository.
func NewSubmissionRepository(db *sqlx.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create inserts a single row. The insert is atomic: either the row
// becomes visible in full or nothing is written. created_at is assigned
// by the store and written back onto the event so the caller returns a
// store-confirmed timestamp.
func (r *SubmissionRepository) Create(ctx context.Context, event *models.SubmittedEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	const query = `INSERT INTO submitted_events
	(id, title, description, event_date, start_time, end_time, location, category, contact_email, contact_phone, website, image_url)
	VALUES (:id, :title, :description, :event_date, :start_time, :end_time, :location, :category, :contact_email, :contact_phone, :website, :image_url)
	RETURNING created_at`

	rows, err := r.db.NamedQueryContext(ctx, query, event)
	if err != nil {
		return fmt.Errorf("insert submitted event: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	if !rows.Next() {
		return fmt.Errorf("insert submitted event: no created_at returned")
	}
	if err := rows.Scan(&event.CreatedAt); err != nil {
		return fmt.Errorf("scan created_at: %w", err)
	}
	return rows.Err()
}

// ListRecent returns the newest submissions in insertion order, newest
// first.
func (r *SubmissionRepository) ListRecent(ctx context.Context, limit int) ([]models.SubmittedEvent, error) {
	if limit <= 0 {
		limit = 10
	} else if limit > 100 {
		limit = 100
	}
	const query = `SELECT id, title, description, event_date::text AS event_date, start_time, end_time, location, category,
       contact_email, contact_phone, website, image_url, created_at
	FROM submitted_events ORDER BY created_at DESC LIMIT $1`

	var records []models.SubmittedEvent
	if err := r.db.SelectContext(ctx, &records, query, limit); err != nil {
		return nil, fmt.Errorf("list recent submissions: %w", err)
	}
	return records, nil
}
