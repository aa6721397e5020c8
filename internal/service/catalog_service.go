package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/eventure/events-api/internal/catalog"
	"github.com/eventure/events-api/internal/models"
	appErrors "github.com/eventure/events-api/pkg/errors"
)

type catalogCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// CatalogService serves the read-side gallery: the seeded events pushed
// through the filter-then-sort pipeline, with a read-through cache per
// query descriptor. Cache failures degrade to computing the listing.
type CatalogService struct {
	events  []models.Event
	faqs    []models.FAQ
	cache   catalogCache
	ttl     time.Duration
	metrics *MetricsService
	logger  *zap.Logger
}

// NewCatalogService seeds the gallery and wires the optional cache.
func NewCatalogService(cache catalogCache, metrics *MetricsService, logger *zap.Logger, ttl time.Duration) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CatalogService{
		events:  catalog.Seed(),
		faqs:    catalog.SeedFAQs(),
		cache:   cache,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

// List returns the ordered visible subset for the given filter state
// and sort key. Filter always runs before Sort.
func (s *CatalogService) List(ctx context.Context, state catalog.FilterState, key catalog.SortKey) ([]models.Event, error) {
	cacheKey := listCacheKey(state, key)

	if s.cache != nil {
		var cached []models.Event
		err := s.cache.Get(ctx, cacheKey, &cached)
		if err == nil {
			s.metrics.RecordCacheLookup(true)
			return cached, nil
		}
		s.metrics.RecordCacheLookup(false)
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("catalog cache get failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	visible := catalog.Sort(catalog.Filter(s.events, state), key)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, visible, s.ttl); err != nil {
			s.logger.Warn("catalog cache set failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	return visible, nil
}

// FAQs returns the seeded FAQ entries, optionally limited to one
// category.
func (s *CatalogService) FAQs(category string) []models.FAQ {
	if category == "" {
		result := make([]models.FAQ, len(s.faqs))
		copy(result, s.faqs)
		return result
	}
	result := make([]models.FAQ, 0, len(s.faqs))
	for _, faq := range s.faqs {
		if strings.EqualFold(string(faq.Category), category) {
			result = append(result, faq)
		}
	}
	return result
}

// listCacheKey derives the cache key from the query descriptor. The
// category and search components come straight from request params, so
// each one is escaped before joining; otherwise a delimiter inside a
// component would alias a different descriptor and serve its cached
// listing.
func listCacheKey(state catalog.FilterState, key catalog.SortKey) string {
	cats := make([]string, 0, len(state.Categories))
	for _, c := range state.Categories {
		cats = append(cats, url.QueryEscape(string(c)))
	}
	return fmt.Sprintf("catalog:list:%s|%s|%s|%s",
		strings.Join(cats, ","), state.Price, url.QueryEscape(strings.ToLower(state.Query)), key)
}
