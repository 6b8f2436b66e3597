package item

import (
	"context"

	"gateway/domain"
	"gateway/internal/middleware"
	"gateway/pkg/httperror"
)

type UserItemsHandler struct {
	store Store
}

func NewUserItemsHandler(store Store) *UserItemsHandler {
	return &UserItemsHandler{
		store: store,
	}
}

type UserItemsRequest struct {
	UserID string `params:"userId"`
}

func (h UserItemsHandler) Handle(ctx context.Context, req *UserItemsRequest) (*domain.UserItems, error) {
	if req.UserID != middleware.UserID(ctx) {
		return nil, httperror.Forbidden(
			"item.user_items.forbidden",
			"You can only list your own items",
			nil,
		)
	}

	return h.store.ListUserItems(ctx, req.UserID)
}
