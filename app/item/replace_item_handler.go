package item

import (
	"context"

	"gateway/domain"
	"gateway/infra/upstream"
	"gateway/internal/middleware"
	"gateway/pkg/httperror"
)

type ReplaceItemHandler struct {
	store Store
}

func NewReplaceItemHandler(store Store) *ReplaceItemHandler {
	return &ReplaceItemHandler{
		store: store,
	}
}

type ReplaceItemRequest struct {
	domain.RawBody
	ItemID string `params:"itemId"`
}

func (h ReplaceItemHandler) Handle(ctx context.Context, req *ReplaceItemRequest) (*upstream.Response, error) {
	if len(req.Body) == 0 {
		return nil, httperror.BadRequest(
			"item.replace.missing_body",
			"Request body is required",
			nil,
		)
	}

	return h.store.ReplaceItem(ctx, req.ItemID, middleware.UserID(ctx), req.Body)
}
