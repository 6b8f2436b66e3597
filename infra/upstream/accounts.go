package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"gateway/domain"
)

// AccountClient is the typed client for the external account service.
type AccountClient struct {
	client *Client
}

func NewAccountClient(baseURL string, timeout time.Duration) *AccountClient {
	return &AccountClient{
		client: NewClient("account-service", baseURL, timeout),
	}
}

// ListUsers fetches the full user directory. The caller's bearer token
// is forwarded so the account service applies its own admin check.
func (a *AccountClient) ListUsers(ctx context.Context, authorization string) (*domain.UserDirectory, error) {
	resp, err := a.client.Do(ctx, http.MethodGet, "/auth/admin/users", map[string]string{
		"Authorization": authorization,
	}, nil)
	if err != nil {
		return nil, err
	}

	var directory domain.UserDirectory
	if err := resp.Decode(&directory); err != nil {
		return nil, err
	}

	return &directory, nil
}

// Register forwards a user registration verbatim.
func (a *AccountClient) Register(ctx context.Context, body json.RawMessage) (*Response, error) {
	return a.client.Do(ctx, http.MethodPost, "/auth/register", nil, body)
}

// RegisterAdmin forwards an admin registration verbatim.
func (a *AccountClient) RegisterAdmin(ctx context.Context, body json.RawMessage) (*Response, error) {
	return a.client.Do(ctx, http.MethodPost, "/auth/register-admin", nil, body)
}

// Login forwards a login request verbatim.
func (a *AccountClient) Login(ctx context.Context, body json.RawMessage) (*Response, error) {
	return a.client.Do(ctx, http.MethodPost, "/auth/login", nil, body)
}

// Logout forwards a logout request with the caller's token.
func (a *AccountClient) Logout(ctx context.Context, authorization string) (*Response, error) {
	return a.client.Do(ctx, http.MethodPost, "/auth/logout", map[string]string{
		"Authorization": authorization,
	}, nil)
}

// ListUsersRaw fetches the user directory without decoding, for the
// admin passthrough route.
func (a *AccountClient) ListUsersRaw(ctx context.Context, authorization string) (*Response, error) {
	return a.client.Do(ctx, http.MethodGet, "/auth/admin/users", map[string]string{
		"Authorization": authorization,
	}, nil)
}
