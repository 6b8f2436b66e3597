package account

import (
	"context"
	"encoding/json"

	"gateway/infra/upstream"
)

// Accounts is the slice of the account service the auth passthrough
// handlers use. Implemented by upstream.AccountClient.
type Accounts interface {
	Register(ctx context.Context, body json.RawMessage) (*upstream.Response, error)
	RegisterAdmin(ctx context.Context, body json.RawMessage) (*upstream.Response, error)
	Login(ctx context.Context, body json.RawMessage) (*upstream.Response, error)
	Logout(ctx context.Context, authorization string) (*upstream.Response, error)
	ListUsersRaw(ctx context.Context, authorization string) (*upstream.Response, error)
}
