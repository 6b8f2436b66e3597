package item

import (
	"context"

	"gateway/infra/upstream"
	"gateway/internal/middleware"
)

type DeleteItemHandler struct {
	store Store
}

func NewDeleteItemHandler(store Store) *DeleteItemHandler {
	return &DeleteItemHandler{
		store: store,
	}
}

type DeleteItemRequest struct {
	ItemID string `params:"itemId"`
}

func (h DeleteItemHandler) Handle(ctx context.Context, req *DeleteItemRequest) (*upstream.Response, error) {
	return h.store.DeleteItem(ctx, req.ItemID, middleware.UserID(ctx))
}
