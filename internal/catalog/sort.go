package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/eventure/events-api/internal/models"
)

// SortKey names a supported ordering of the listing.
type SortKey string

const (
	SortDateAsc  SortKey = "date-asc"
	SortDateDesc SortKey = "date-desc"
	SortNameAsc  SortKey = "name-asc"
	SortNameDesc SortKey = "name-desc"
)

// Valid reports whether the key is one of the supported orderings.
func (k SortKey) Valid() bool {
	switch k {
	case SortDateAsc, SortDateDesc, SortNameAsc, SortNameDesc:
		return true
	}
	return false
}

// Sort returns a new slice ordered by the given key; the input is never
// mutated. Date ordering is stable: events sharing a date keep their
// relative input order. Title ordering uses locale-aware collation
// rather than byte comparison. An unknown key returns an unordered
// copy.
func Sort(events []models.Event, key SortKey) []models.Event {
	sorted := make([]models.Event, len(events))
	copy(sorted, events)

	switch key {
	case SortDateAsc:
		// Dates are ISO-8601, so lexical order is chronological.
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date < sorted[j].Date
		})
	case SortDateDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Date > sorted[j].Date
		})
	case SortNameAsc:
		c := newCollator()
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Title, sorted[j].Title) < 0
		})
	case SortNameDesc:
		c := newCollator()
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Title, sorted[j].Title) > 0
		})
	}

	return sorted
}

// Collators carry internal buffers, so each Sort gets its own.
func newCollator() *collate.Collator {
	return collate.New(language.English, collate.Loose)
}
