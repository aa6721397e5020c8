// Package validation checks untrusted submission payloads and uploaded
// file metadata before anything reaches a store.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/eventure/events-api/internal/dto"
	appErrors "github.com/eventure/events-api/pkg/errors"
)

var hhmmPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

// SubmissionValidator validates event submissions against the
// structural and semantic rules of the submission form.
type SubmissionValidator struct {
	validate *validator.Validate
	now      func() time.Time
}

// NewSubmissionValidator registers the custom rules and returns a
// ready-to-use validator.
func NewSubmissionValidator() *SubmissionValidator {
	v := validator.New()

	// Report wire field names, not Go struct names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmPattern.MatchString(fl.Field().String())
	})

	sv := &SubmissionValidator{validate: v, now: time.Now}

	_ = v.RegisterValidation("futuredate", func(fl validator.FieldLevel) bool {
		parsed, err := parseEventDate(fl.Field().String())
		if err != nil {
			return false
		}
		// Strict future check: a date equal to "now" fails.
		return parsed.After(sv.now())
	})

	return sv
}

// ValidateSubmission checks the payload and returns nil when it is
// acceptable, or a FieldErrors reporting every violated field so the
// caller can highlight all of them in a single round trip.
func (sv *SubmissionValidator) ValidateSubmission(req dto.SubmitEventRequest) *appErrors.FieldErrors {
	err := sv.validate.Struct(req)
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrs := appErrors.NewFieldErrors()
		fieldErrs.Add("payload", "invalid submission payload")
		return fieldErrs
	}

	fieldErrs := appErrors.NewFieldErrors()
	for _, violation := range violations {
		fieldErrs.Add(violation.Field(), messageFor(violation))
	}
	return fieldErrs
}

func messageFor(v validator.FieldError) string {
	switch v.Field() {
	case "title":
		if v.Tag() == "max" {
			return "Title must be 200 characters or less"
		}
		return "Title is required"
	case "description":
		if v.Tag() == "max" {
			return "Description must be 2000 characters or less"
		}
		return "Description is required"
	case "event_date":
		if v.Tag() == "required" {
			return "Event date is required"
		}
		return "Event date must be in the future"
	case "start_time":
		if v.Tag() == "required" {
			return "Start time is required"
		}
		return "Start time must be in HH:mm format"
	case "end_time":
		return "End time must be in HH:mm format"
	case "location":
		if v.Tag() == "max" {
			return "Location must be 300 characters or less"
		}
		return "Location is required"
	case "category":
		return "Category is required"
	case "contact_email":
		return "Invalid email format"
	case "contact_phone":
		return "Phone must be 32 characters or less"
	case "website":
		return "Invalid URL format"
	}
	return fmt.Sprintf("Invalid value for %s", v.Field())
}

// parseEventDate accepts a calendar date or a full timestamp.
func parseEventDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, raw)
}
