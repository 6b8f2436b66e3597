package item

import (
	"context"

	"gateway/infra/upstream"
)

type GetItemHandler struct {
	store Store
}

func NewGetItemHandler(store Store) *GetItemHandler {
	return &GetItemHandler{
		store: store,
	}
}

type GetItemRequest struct {
	ItemID string `params:"itemId"`
}

func (h GetItemHandler) Handle(ctx context.Context, req *GetItemRequest) (*upstream.Response, error) {
	return h.store.GetItem(ctx, req.ItemID)
}
