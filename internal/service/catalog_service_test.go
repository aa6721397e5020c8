package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventure/events-api/internal/catalog"
	"github.com/eventure/events-api/internal/models"
	appErrors "github.com/eventure/events-api/pkg/errors"
)

type catalogCacheStub struct {
	entries  map[string][]models.Event
	getErr   error
	setErr   error
	getCalls int
	setCalls int
}

func newCatalogCacheStub() *catalogCacheStub {
	return &catalogCacheStub{entries: make(map[string][]models.Event)}
}

func (c *catalogCacheStub) Get(ctx context.Context, key string, dest interface{}) error {
	c.getCalls++
	if c.getErr != nil {
		return c.getErr
	}
	cached, ok := c.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	*dest.(*[]models.Event) = cached
	return nil
}

func (c *catalogCacheStub) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	c.setCalls++
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[key] = value.([]models.Event)
	return nil
}

func TestListWithoutCacheComputesListing(t *testing.T) {
	svc := NewCatalogService(nil, nil, nil, 0)

	events, err := svc.List(context.Background(), catalog.FilterState{}, catalog.SortDateAsc)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	for i := 1; i < len(events); i++ {
		assert.LessOrEqual(t, events[i-1].Date, events[i].Date)
	}
}

func TestListFiltersBeforeSorting(t *testing.T) {
	svc := NewCatalogService(nil, nil, nil, 0)

	state := catalog.FilterState{Categories: []models.Category{models.CategoryWorkshop}}
	events, err := svc.List(context.Background(), state, catalog.SortNameAsc)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	for _, e := range events {
		assert.Equal(t, models.CategoryWorkshop, e.Category)
	}
}

func TestListPopulatesCacheOnMiss(t *testing.T) {
	cache := newCatalogCacheStub()
	svc := NewCatalogService(cache, nil, nil, time.Minute)

	first, err := svc.List(context.Background(), catalog.FilterState{Price: catalog.PriceFree}, catalog.SortDateDesc)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.getCalls)
	assert.Equal(t, 1, cache.setCalls)

	second, err := svc.List(context.Background(), catalog.FilterState{Price: catalog.PriceFree}, catalog.SortDateDesc)
	require.NoError(t, err)
	assert.Equal(t, 2, cache.getCalls)
	assert.Equal(t, 1, cache.setCalls)
	assert.Equal(t, first, second)
}

func TestListDistinctQueriesUseDistinctKeys(t *testing.T) {
	cache := newCatalogCacheStub()
	svc := NewCatalogService(cache, nil, nil, time.Minute)

	_, err := svc.List(context.Background(), catalog.FilterState{}, catalog.SortDateAsc)
	require.NoError(t, err)
	_, err = svc.List(context.Background(), catalog.FilterState{}, catalog.SortDateDesc)
	require.NoError(t, err)
	assert.Len(t, cache.entries, 2)
}

func TestListCacheKeyEscapesDelimiters(t *testing.T) {
	// Category and search strings arrive verbatim from request params;
	// a delimiter inside one must not alias another descriptor.
	a := catalog.FilterState{
		Categories: []models.Category{"x|free"},
		Price:      catalog.PriceAll,
		Query:      "q",
	}
	b := catalog.FilterState{
		Categories: []models.Category{"x"},
		Price:      catalog.PriceFree,
		Query:      "all|q",
	}
	assert.NotEqual(t, listCacheKey(a, catalog.SortDateAsc), listCacheKey(b, catalog.SortDateAsc))

	c := catalog.FilterState{Categories: []models.Category{"a,b"}}
	d := catalog.FilterState{Categories: []models.Category{"a", "b"}}
	assert.NotEqual(t, listCacheKey(c, catalog.SortDateAsc), listCacheKey(d, catalog.SortDateAsc))
}

func TestListCacheFailureDegradesToCompute(t *testing.T) {
	cache := newCatalogCacheStub()
	cache.getErr = errors.New("redis: connection refused")
	cache.setErr = errors.New("redis: connection refused")
	svc := NewCatalogService(cache, nil, nil, time.Minute)

	events, err := svc.List(context.Background(), catalog.FilterState{}, catalog.SortDateAsc)
	require.NoError(t, err)
	assert.NotEmpty(t, events)
}

func TestFAQsReturnsAllWithoutCategory(t *testing.T) {
	svc := NewCatalogService(nil, nil, nil, 0)

	faqs := svc.FAQs("")
	assert.NotEmpty(t, faqs)
}

func TestFAQsFiltersByCategoryCaseInsensitive(t *testing.T) {
	svc := NewCatalogService(nil, nil, nil, 0)

	all := svc.FAQs("")
	require.NotEmpty(t, all)
	want := string(all[0].Category)

	faqs := svc.FAQs(want)
	require.NotEmpty(t, faqs)
	upper := svc.FAQs(strings.ToUpper(want))
	assert.Equal(t, faqs, upper)
	for _, faq := range faqs {
		assert.Equal(t, want, string(faq.Category))
	}
}
