package dto

import "time"

// SubmitEventRequest carries an untrusted submission payload. Wire
// names use snake_case to match the submission form. Validation rules
// live in internal/validation, not in binding tags, so every violated
// field can be reported at once.
type SubmitEventRequest struct {
	Title        string `json:"title" validate:"required,min=1,max=200"`
	Description  string `json:"description" validate:"required,min=1,max=2000"`
	EventDate    string `json:"event_date" validate:"required,futuredate"`
	StartTime    string `json:"start_time" validate:"required,hhmm"`
	EndTime      string `json:"end_time" validate:"omitempty,hhmm"`
	Location     string `json:"location" validate:"required,min=1,max=300"`
	Category     string `json:"category" validate:"required"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone" validate:"max=32"`
	Website      string `json:"website" validate:"omitempty,url"`
	ImageURL     string `json:"image_url"`
}

// SubmitEventResponse confirms a persisted submission.
type SubmitEventResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// UploadImageResponse returns the public URL of a stored image.
type UploadImageResponse struct {
	ImageURL string `json:"imageUrl"`
}
