package handler

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/eventure/events-api/internal/catalog"
	"github.com/eventure/events-api/internal/dto"
	"github.com/eventure/events-api/internal/models"
	appErrors "github.com/eventure/events-api/pkg/errors"
	"github.com/eventure/events-api/pkg/response"
)

type catalogService interface {
	List(ctx context.Context, state catalog.FilterState, key catalog.SortKey) ([]models.Event, error)
	FAQs(category string) []models.FAQ
}

// EventHandler serves the public gallery endpoints.
type EventHandler struct {
	service catalogService
}

// NewEventHandler constructs the handler.
func NewEventHandler(service catalogService) *EventHandler {
	return &EventHandler{service: service}
}

// List godoc
// @Summary List gallery events
// @Tags Events
// @Produce json
// @Param categories query string false "Comma-separated category filter"
// @Param price query string false "Price bucket: all, free or paid"
// @Param q query string false "Free-text search"
// @Param sort query string false "Sort key: date-asc, date-desc, name-asc, name-desc"
// @Success 200 {object} dto.EventListResponse
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	state := catalog.FilterState{
		Price: catalog.PriceAll,
		Query: strings.TrimSpace(c.Query("q")),
	}

	if raw := strings.TrimSpace(c.Query("categories")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				state.Categories = append(state.Categories, models.Category(trimmed))
			}
		}
	}

	if raw := c.Query("price"); raw != "" {
		price := catalog.PriceFilter(raw)
		switch price {
		case catalog.PriceAll, catalog.PriceFree, catalog.PricePaid:
			state.Price = price
		default:
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "price must be one of all, free, paid"))
			return
		}
	}

	key := catalog.SortDateAsc
	if raw := c.Query("sort"); raw != "" {
		key = catalog.SortKey(raw)
		if !key.Valid() {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown sort key"))
			return
		}
	}

	events, err := h.service.List(c.Request.Context(), state, key)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.EventListResponse{Events: events, Total: len(events)})
}

// FAQs godoc
// @Summary List frequently asked questions
// @Tags Events
// @Produce json
// @Param category query string false "FAQ category filter"
// @Success 200 {object} dto.FAQListResponse
// @Router /faqs [get]
func (h *EventHandler) FAQs(c *gin.Context) {
	faqs := h.service.FAQs(strings.TrimSpace(c.Query("category")))
	response.OK(c, dto.FAQListResponse{FAQs: faqs, Total: len(faqs)})
}
