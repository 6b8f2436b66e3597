package account

import (
	"context"

	"gateway/infra/upstream"
	"gateway/internal/middleware"
)

type ListUsersHandler struct {
	accounts Accounts
}

func NewListUsersHandler(accounts Accounts) *ListUsersHandler {
	return &ListUsersHandler{
		accounts: accounts,
	}
}

type ListUsersRequest struct{}

func (h ListUsersHandler) Handle(ctx context.Context, req *ListUsersRequest) (*upstream.Response, error) {
	return h.accounts.ListUsersRaw(ctx, middleware.Authorization(ctx))
}
