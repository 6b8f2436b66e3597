package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"gateway/domain"
)

// ItemClient is the typed client for the external item/category store.
type ItemClient struct {
	client *Client
}

func NewItemClient(baseURL string, timeout time.Duration) *ItemClient {
	return &ItemClient{
		client: NewClient("item-store", baseURL, timeout),
	}
}

// ListItems fetches one page of items. Filter semantics belong to the
// store; the gateway only relays them.
func (i *ItemClient) ListItems(ctx context.Context, filter domain.ItemFilter) (*domain.ItemPage, error) {
	resp, err := i.client.Do(ctx, http.MethodGet, "/items"+filterQuery(filter), nil, nil)
	if err != nil {
		return nil, err
	}

	var page domain.ItemPage
	if err := resp.Decode(&page); err != nil {
		return nil, err
	}

	return &page, nil
}

// ListUserItems fetches every item owned by one user.
func (i *ItemClient) ListUserItems(ctx context.Context, userID string) (*domain.UserItems, error) {
	resp, err := i.client.Do(ctx, http.MethodGet, "/items/user/"+url.PathEscape(userID)+"/items", nil, nil)
	if err != nil {
		return nil, err
	}

	var items domain.UserItems
	if err := resp.Decode(&items); err != nil {
		return nil, err
	}

	return &items, nil
}

func (i *ItemClient) GetItem(ctx context.Context, itemID string) (*Response, error) {
	return i.client.Do(ctx, http.MethodGet, "/items/"+url.PathEscape(itemID), nil, nil)
}

// CreateItem forwards a creation request, stamping the authenticated
// caller as the owning user.
func (i *ItemClient) CreateItem(ctx context.Context, userID string, body json.RawMessage) (*Response, error) {
	merged, err := withUserID(body, userID)
	if err != nil {
		return nil, err
	}
	return i.client.Do(ctx, http.MethodPost, "/items/create", nil, merged)
}

func (i *ItemClient) ReplaceItem(ctx context.Context, itemID, userID string, body json.RawMessage) (*Response, error) {
	return i.client.Do(ctx, http.MethodPut, "/items/"+url.PathEscape(itemID), map[string]string{
		"X-User-ID": userID,
	}, body)
}

func (i *ItemClient) ModifyItem(ctx context.Context, itemID, userID string, body json.RawMessage) (*Response, error) {
	return i.client.Do(ctx, http.MethodPatch, "/items/"+url.PathEscape(itemID), map[string]string{
		"X-User-ID": userID,
	}, body)
}

func (i *ItemClient) DeleteItem(ctx context.Context, itemID, userID string) (*Response, error) {
	return i.client.Do(ctx, http.MethodDelete, "/items/"+url.PathEscape(itemID), map[string]string{
		"X-User-ID": userID,
	}, nil)
}

func (i *ItemClient) ListCategories(ctx context.Context) (*domain.CategoryPage, error) {
	resp, err := i.client.Do(ctx, http.MethodGet, "/categories", nil, nil)
	if err != nil {
		return nil, err
	}

	var page domain.CategoryPage
	if err := resp.Decode(&page); err != nil {
		return nil, err
	}

	return &page, nil
}

func (i *ItemClient) CreateCategory(ctx context.Context, userID string, body json.RawMessage) (*Response, error) {
	return i.client.Do(ctx, http.MethodPost, "/categories", map[string]string{
		"X-User-ID": userID,
	}, body)
}

func filterQuery(filter domain.ItemFilter) string {
	values := url.Values{}
	if filter.Page > 0 {
		values.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		values.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Category != "" {
		values.Set("category", filter.Category)
	}
	if filter.MinPrice != nil {
		values.Set("minPrice", filter.MinPrice.String())
	}
	if filter.MaxPrice != nil {
		values.Set("maxPrice", filter.MaxPrice.String())
	}
	if len(values) == 0 {
		return ""
	}
	return "?" + values.Encode()
}

func withUserID(body json.RawMessage, userID string) (map[string]any, error) {
	payload := map[string]any{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, fmt.Errorf("failed to parse item body: %w", err)
		}
	}
	payload["userId"] = userID
	return payload, nil
}
