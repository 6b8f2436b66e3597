package account

import (
	"context"

	"gateway/domain"
	"gateway/infra/upstream"
	"gateway/pkg/httperror"
)

type LoginHandler struct {
	accounts Accounts
}

func NewLoginHandler(accounts Accounts) *LoginHandler {
	return &LoginHandler{
		accounts: accounts,
	}
}

type LoginRequest struct {
	domain.RawBody
}

func (h LoginHandler) Handle(ctx context.Context, req *LoginRequest) (*upstream.Response, error) {
	if len(req.Body) == 0 {
		return nil, httperror.BadRequest(
			"account.login.missing_body",
			"Request body is required",
			nil,
		)
	}

	return h.accounts.Login(ctx, req.Body)
}
