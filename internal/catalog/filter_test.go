package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventure/events-api/internal/models"
)

func testEvents() []models.Event {
	return []models.Event{
		{ID: 1, Title: "Go Conference", Description: "talks about Go", Category: models.CategoryConference, Date: "2026-05-01", Location: "Berlin", Price: 100},
		{ID: 2, Title: "Rust Workshop", Description: "hands-on systems", Category: models.CategoryWorkshop, Date: "2026-04-01", Location: "Munich", Price: 0},
		{ID: 3, Title: "Community Mixer", Description: "meet people", Category: models.CategoryNetworking, Date: "2026-05-01", Location: "Berlin", Price: 0},
		{ID: 4, Title: "Database Talk", Description: "all about Postgres", Category: models.CategoryTechTalk, Date: "2026-03-15", Location: "Virtual", Price: 25},
	}
}

func TestFilterEmptyStateMatchesAll(t *testing.T) {
	events := testEvents()
	result := Filter(events, FilterState{Price: PriceAll})
	require.Len(t, result, len(events))
	for i, event := range result {
		assert.Equal(t, events[i].ID, event.ID)
	}
}

func TestFilterByCategorySet(t *testing.T) {
	result := Filter(testEvents(), FilterState{
		Categories: []models.Category{models.CategoryWorkshop, models.CategoryTechTalk},
		Price:      PriceAll,
	})
	require.Len(t, result, 2)
	assert.Equal(t, 2, result[0].ID)
	assert.Equal(t, 4, result[1].ID)
}

func TestFilterPriceBuckets(t *testing.T) {
	free := Filter(testEvents(), FilterState{Price: PriceFree})
	require.Len(t, free, 2)
	for _, event := range free {
		assert.Zero(t, event.Price)
	}

	paid := Filter(testEvents(), FilterState{Price: PricePaid})
	require.Len(t, paid, 2)
	for _, event := range paid {
		assert.Positive(t, event.Price)
	}
}

func TestFilterSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	byTitle := Filter(testEvents(), FilterState{Price: PriceAll, Query: "go conf"})
	require.Len(t, byTitle, 1)
	assert.Equal(t, 1, byTitle[0].ID)

	byDescription := Filter(testEvents(), FilterState{Price: PriceAll, Query: "POSTGRES"})
	require.Len(t, byDescription, 1)
	assert.Equal(t, 4, byDescription[0].ID)

	byLocation := Filter(testEvents(), FilterState{Price: PriceAll, Query: "berlin"})
	require.Len(t, byLocation, 2)
}

func TestFilterPredicatesCombineWithAnd(t *testing.T) {
	result := Filter(testEvents(), FilterState{
		Categories: []models.Category{models.CategoryConference, models.CategoryNetworking},
		Price:      PriceFree,
		Query:      "berlin",
	})
	require.Len(t, result, 1)
	assert.Equal(t, 3, result[0].ID)
}

func TestFilterIsIdempotent(t *testing.T) {
	state := FilterState{Price: PriceFree, Query: "e"}
	once := Filter(testEvents(), state)
	twice := Filter(once, state)
	assert.Equal(t, once, twice)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	events := testEvents()
	_ = Filter(events, FilterState{Price: PricePaid})
	assert.Equal(t, testEvents(), events)
}
