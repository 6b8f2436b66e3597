package item

import (
	"context"

	"gateway/domain"
	"gateway/internal/middleware"
)

type UsersWithItemsHandler struct {
	aggregator Aggregator
}

func NewUsersWithItemsHandler(aggregator Aggregator) *UsersWithItemsHandler {
	return &UsersWithItemsHandler{
		aggregator: aggregator,
	}
}

type UsersWithItemsRequest struct{}

func (h UsersWithItemsHandler) Handle(ctx context.Context, req *UsersWithItemsRequest) (*domain.UsersWithItems, error) {
	return h.aggregator.ListUsersWithItems(ctx, middleware.Authorization(ctx))
}
