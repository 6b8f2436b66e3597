package account

import (
	"context"

	"gateway/infra/upstream"
	"gateway/internal/middleware"
)

type LogoutHandler struct {
	accounts Accounts
}

func NewLogoutHandler(accounts Accounts) *LogoutHandler {
	return &LogoutHandler{
		accounts: accounts,
	}
}

type LogoutRequest struct{}

func (h LogoutHandler) Handle(ctx context.Context, req *LogoutRequest) (*upstream.Response, error) {
	return h.accounts.Logout(ctx, middleware.Authorization(ctx))
}
