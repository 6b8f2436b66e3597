package account

import (
	"context"

	"gateway/domain"
	"gateway/infra/upstream"
	"gateway/pkg/httperror"
)

type RegisterAdminHandler struct {
	accounts Accounts
}

func NewRegisterAdminHandler(accounts Accounts) *RegisterAdminHandler {
	return &RegisterAdminHandler{
		accounts: accounts,
	}
}

type RegisterAdminRequest struct {
	domain.RawBody
}

func (h RegisterAdminHandler) Handle(ctx context.Context, req *RegisterAdminRequest) (*upstream.Response, error) {
	if len(req.Body) == 0 {
		return nil, httperror.BadRequest(
			"account.register_admin.missing_body",
			"Request body is required",
			nil,
		)
	}

	return h.accounts.RegisterAdmin(ctx, req.Body)
}
