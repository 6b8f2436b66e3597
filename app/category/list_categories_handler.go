package category

import (
	"context"

	"gateway/domain"
	"gateway/internal/middleware"
)

type ListCategoriesHandler struct {
	aggregator Aggregator
}

func NewListCategoriesHandler(aggregator Aggregator) *ListCategoriesHandler {
	return &ListCategoriesHandler{
		aggregator: aggregator,
	}
}

type ListCategoriesRequest struct{}

func (h ListCategoriesHandler) Handle(ctx context.Context, req *ListCategoriesRequest) (*domain.CategoryListing, error) {
	return h.aggregator.ListWithItems(ctx, middleware.RequestBase(ctx))
}
