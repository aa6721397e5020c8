package models

import "time"

// SubmittedEvent is a user-submitted event persisted via the submission
// pipeline. The row is created exactly once and never mutated or
// deleted. Category stays free text here while the read side validates
// against the fixed enumeration; the asymmetry is carried over from the
// submission form, which accepts categories the gallery does not yet
// render.
type SubmittedEvent struct {
	ID           string    `db:"id" json:"id"`
	Title        string    `db:"title" json:"title"`
	Description  string    `db:"description" json:"description"`
	EventDate    string    `db:"event_date" json:"eventDate"`
	StartTime    string    `db:"start_time" json:"startTime"`
	EndTime      *string   `db:"end_time" json:"endTime,omitempty"`
	Location     string    `db:"location" json:"location"`
	Category     string    `db:"category" json:"category"`
	ContactEmail *string   `db:"contact_email" json:"contactEmail,omitempty"`
	ContactPhone *string   `db:"contact_phone" json:"contactPhone,omitempty"`
	Website      *string   `db:"website" json:"website,omitempty"`
	ImageURL     *string   `db:"image_url" json:"imageUrl,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}
