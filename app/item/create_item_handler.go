package item

import (
	"context"

	"gateway/domain"
	"gateway/infra/upstream"
	"gateway/internal/middleware"
	"gateway/pkg/httperror"
)

type CreateItemHandler struct {
	store Store
}

func NewCreateItemHandler(store Store) *CreateItemHandler {
	return &CreateItemHandler{
		store: store,
	}
}

type CreateItemRequest struct {
	domain.RawBody
}

func (h CreateItemHandler) Handle(ctx context.Context, req *CreateItemRequest) (*upstream.Response, error) {
	if len(req.Body) == 0 {
		return nil, httperror.BadRequest(
			"item.create.missing_body",
			"Request body is required",
			nil,
		)
	}

	return h.store.CreateItem(ctx, middleware.UserID(ctx), req.Body)
}
