package account

import (
	"context"

	"gateway/domain"
	"gateway/infra/upstream"
	"gateway/pkg/httperror"
)

type RegisterUserHandler struct {
	accounts Accounts
}

func NewRegisterUserHandler(accounts Accounts) *RegisterUserHandler {
	return &RegisterUserHandler{
		accounts: accounts,
	}
}

type RegisterUserRequest struct {
	domain.RawBody
}

func (h RegisterUserHandler) Handle(ctx context.Context, req *RegisterUserRequest) (*upstream.Response, error) {
	if len(req.Body) == 0 {
		return nil, httperror.BadRequest(
			"account.register.missing_body",
			"Request body is required",
			nil,
		)
	}

	return h.accounts.Register(ctx, req.Body)
}
