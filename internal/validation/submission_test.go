package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventure/events-api/internal/dto"
)

func validSubmission() dto.SubmitEventRequest {
	return dto.SubmitEventRequest{
		Title:       "Community Hack Night",
		Description: "An evening of pairing on open source.",
		EventDate:   time.Now().AddDate(0, 0, 30).Format("2006-01-02"),
		StartTime:   "18:30",
		Location:    "Downtown Hub",
		Category:    "Networking",
	}
}

func TestValidateSubmissionAcceptsValidPayload(t *testing.T) {
	sv := NewSubmissionValidator()
	assert.Nil(t, sv.ValidateSubmission(validSubmission()))
}

func TestValidateSubmissionAcceptsOptionalFields(t *testing.T) {
	sv := NewSubmissionValidator()
	req := validSubmission()
	req.EndTime = "21:00"
	req.ContactEmail = "host@example.com"
	req.ContactPhone = "+1 555 0100"
	req.Website = "https://example.com/hack-night"
	req.ImageURL = "anything goes here"
	assert.Nil(t, sv.ValidateSubmission(req))
}

func TestValidateSubmissionEmptyTitle(t *testing.T) {
	sv := NewSubmissionValidator()
	req := validSubmission()
	req.Title = ""

	errs := sv.ValidateSubmission(req)
	require.NotNil(t, errs)
	require.Contains(t, errs.Fields, "title")
	assert.Equal(t, []string{"Title is required"}, errs.Fields["title"])
}

func TestValidateSubmissionReportsEveryViolatedField(t *testing.T) {
	sv := NewSubmissionValidator()
	req := dto.SubmitEventRequest{
		EventDate:    "2000-01-01",
		StartTime:    "6pm",
		EndTime:      "late",
		ContactEmail: "not-an-email",
		ContactPhone: "123456789012345678901234567890123",
		Website:      "not a url",
	}

	errs := sv.ValidateSubmission(req)
	require.NotNil(t, errs)
	for _, field := range []string{
		"title", "description", "event_date", "start_time", "end_time",
		"location", "category", "contact_email", "contact_phone", "website",
	} {
		assert.Contains(t, errs.Fields, field)
	}
}

func TestValidateSubmissionDateMustBeStrictlyFuture(t *testing.T) {
	sv := NewSubmissionValidator()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	sv.now = func() time.Time { return now }

	req := validSubmission()
	req.EventDate = now.Format(time.RFC3339)
	errs := sv.ValidateSubmission(req)
	require.NotNil(t, errs)
	assert.Equal(t, []string{"Event date must be in the future"}, errs.Fields["event_date"])

	req.EventDate = now.Add(time.Second).Format(time.RFC3339)
	assert.Nil(t, sv.ValidateSubmission(req))
}

func TestValidateSubmissionPastDate(t *testing.T) {
	sv := NewSubmissionValidator()
	req := validSubmission()
	req.EventDate = "2001-06-01"

	errs := sv.ValidateSubmission(req)
	require.NotNil(t, errs)
	assert.Contains(t, errs.Fields, "event_date")
}

func TestValidateSubmissionTimePattern(t *testing.T) {
	sv := NewSubmissionValidator()

	for _, bad := range []string{"9:00", "0900", "24h00", "morning"} {
		req := validSubmission()
		req.StartTime = bad
		errs := sv.ValidateSubmission(req)
		require.NotNil(t, errs, "start time %q should fail", bad)
		assert.Equal(t, []string{"Start time must be in HH:mm format"}, errs.Fields["start_time"])
	}

	req := validSubmission()
	req.StartTime = "09:00"
	assert.Nil(t, sv.ValidateSubmission(req))
}

func TestValidateSubmissionLengthLimits(t *testing.T) {
	sv := NewSubmissionValidator()

	req := validSubmission()
	req.Title = strings.Repeat("x", 201)
	errs := sv.ValidateSubmission(req)
	require.NotNil(t, errs)
	assert.Equal(t, []string{"Title must be 200 characters or less"}, errs.Fields["title"])

	req = validSubmission()
	req.ContactPhone = errs.Fields["title"][0] // any string over 32 chars
	errs = sv.ValidateSubmission(req)
	require.NotNil(t, errs)
	assert.Equal(t, []string{"Phone must be 32 characters or less"}, errs.Fields["contact_phone"])
}
