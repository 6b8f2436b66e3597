package item

import (
	"context"

	"gateway/domain"
	"gateway/internal/middleware"
	"gateway/pkg/httperror"

	"github.com/shopspring/decimal"
)

type ListItemsHandler struct {
	aggregator Aggregator
}

func NewListItemsHandler(aggregator Aggregator) *ListItemsHandler {
	return &ListItemsHandler{
		aggregator: aggregator,
	}
}

type ListItemsRequest struct {
	Category      string `query:"category"`
	MinPrice      string `query:"minPrice"`
	MaxPrice      string `query:"maxPrice"`
	Page          int    `query:"page"`
	Limit         int    `query:"limit"`
	Authorization string `reqHeader:"Authorization"`
}

func (h ListItemsHandler) Handle(ctx context.Context, req *ListItemsRequest) (*domain.EnrichedListing, error) {
	page := max(req.Page, 1)
	limit := req.Limit
	if limit < 1 {
		limit = 10
	}

	minPrice, err := parsePrice(req.MinPrice)
	if err != nil {
		return nil, httperror.BadRequest(
			"item.index.invalid_price_filter",
			"minPrice must be a decimal number",
			nil,
		)
	}

	maxPrice, err := parsePrice(req.MaxPrice)
	if err != nil {
		return nil, httperror.BadRequest(
			"item.index.invalid_price_filter",
			"maxPrice must be a decimal number",
			nil,
		)
	}

	filter := domain.ItemFilter{
		Category: req.Category,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Page:     page,
		Limit:    limit,
	}

	return h.aggregator.ListWithSellers(ctx, req.Authorization, filter, middleware.RequestBase(ctx))
}

func parsePrice(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &price, nil
}
