package dto

import "github.com/eventure/events-api/internal/models"

// EventListResponse wraps the visible subset of the gallery.
type EventListResponse struct {
	Events []models.Event `json:"events"`
	Total  int            `json:"total"`
}

// FAQListResponse wraps the FAQ listing.
type FAQListResponse struct {
	FAQs  []models.FAQ `json:"faqs"`
	Total int          `json:"total"`
}

// RecentSubmissionsResponse wraps the newest user submissions.
type RecentSubmissionsResponse struct {
	Events []models.SubmittedEvent `json:"events"`
	Total  int                     `json:"total"`
}
