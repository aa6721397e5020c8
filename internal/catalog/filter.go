// Package catalog holds the read-side event gallery: the seeded
// listing plus the pure filter and sort primitives applied to it. The
// read pipeline is always Filter followed by Sort.
package catalog

import (
	"strings"

	"github.com/eventure/events-api/internal/models"
)

// PriceFilter selects events by price bucket.
type PriceFilter string

const (
	PriceAll  PriceFilter = "all"
	PriceFree PriceFilter = "free"
	PricePaid PriceFilter = "paid"
)

// FilterState describes which events should be visible. It is owned by
// the caller and rebuilt per query; an empty category set means "all".
type FilterState struct {
	Categories []models.Category
	Price      PriceFilter
	Query      string
}

// Filter returns the events satisfying every predicate of the state,
// preserving input order. The input slice is never modified.
func Filter(events []models.Event, state FilterState) []models.Event {
	result := make([]models.Event, 0, len(events))
	for _, event := range events {
		if Matches(event, state) {
			result = append(result, event)
		}
	}
	return result
}

// Matches reports whether a single event satisfies the filter state.
func Matches(event models.Event, state FilterState) bool {
	if len(state.Categories) > 0 && !containsCategory(state.Categories, event.Category) {
		return false
	}

	switch state.Price {
	case PriceFree:
		if event.Price > 0 {
			return false
		}
	case PricePaid:
		if event.Price == 0 {
			return false
		}
	}

	if state.Query != "" && !matchesSearch(event, state.Query) {
		return false
	}

	return true
}

func matchesSearch(event models.Event, query string) bool {
	needle := strings.ToLower(query)
	return strings.Contains(strings.ToLower(event.Title), needle) ||
		strings.Contains(strings.ToLower(event.Description), needle) ||
		strings.Contains(strings.ToLower(event.Location), needle)
}

func containsCategory(set []models.Category, c models.Category) bool {
	for _, candidate := range set {
		if candidate == c {
			return true
		}
	}
	return false
}
