package item

import (
	"context"
	"encoding/json"
	"testing"

	"gateway/domain"
	"gateway/infra/upstream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	modifyResp *upstream.Response
	modifyErr  error

	modifiedItemID string
	modifiedUserID string
	modifiedBody   json.RawMessage
}

func (f *fakeStore) ListUserItems(ctx context.Context, userID string) (*domain.UserItems, error) {
	return &domain.UserItems{}, nil
}

func (f *fakeStore) GetItem(ctx context.Context, itemID string) (*upstream.Response, error) {
	return nil, nil
}

func (f *fakeStore) CreateItem(ctx context.Context, userID string, body json.RawMessage) (*upstream.Response, error) {
	return nil, nil
}

func (f *fakeStore) ReplaceItem(ctx context.Context, itemID, userID string, body json.RawMessage) (*upstream.Response, error) {
	return nil, nil
}

func (f *fakeStore) ModifyItem(ctx context.Context, itemID, userID string, body json.RawMessage) (*upstream.Response, error) {
	f.modifiedItemID = itemID
	f.modifiedUserID = userID
	f.modifiedBody = body
	if f.modifyErr != nil {
		return nil, f.modifyErr
	}
	return f.modifyResp, nil
}

func (f *fakeStore) DeleteItem(ctx context.Context, itemID, userID string) (*upstream.Response, error) {
	return nil, nil
}

type fakeNotifier struct {
	calls    int
	itemID   string
	newPrice any
}

func (f *fakeNotifier) NotifyPriceChange(ctx context.Context, itemID string, newPrice any) {
	f.calls++
	f.itemID = itemID
	f.newPrice = newPrice
}

func modifyRequest(t *testing.T, itemID string, body string) *ModifyItemRequest {
	t.Helper()

	req := &ModifyItemRequest{ItemID: itemID}
	require.NoError(t, json.Unmarshal([]byte(body), req))
	req.SetRawBody([]byte(body))
	return req
}

func TestModifyItemNotifiesOnPriceChange(t *testing.T) {
	store := &fakeStore{modifyResp: &upstream.Response{Status: 200, Body: []byte(`{}`)}}
	notifier := &fakeNotifier{}
	handler := NewModifyItemHandler(store, notifier, nil, "gateway")

	req := modifyRequest(t, "item42", `{"itemPrice":"150 kr"}`)

	resp, err := handler.Handle(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)

	assert.Equal(t, 1, notifier.calls)
	assert.Equal(t, "item42", notifier.itemID)
	assert.Equal(t, "150 kr", notifier.newPrice)
	assert.Equal(t, "item42", store.modifiedItemID)
	assert.JSONEq(t, `{"itemPrice":"150 kr"}`, string(store.modifiedBody))
}

func TestModifyItemSkipsNotificationWithoutPriceField(t *testing.T) {
	store := &fakeStore{modifyResp: &upstream.Response{Status: 200, Body: []byte(`{}`)}}
	notifier := &fakeNotifier{}
	handler := NewModifyItemHandler(store, notifier, nil, "gateway")

	req := modifyRequest(t, "item42", `{"description":"like new"}`)

	_, err := handler.Handle(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 0, notifier.calls)
}

func TestModifyItemSkipsNotificationWhenStoreRejects(t *testing.T) {
	storeErr := &upstream.Error{Upstream: "item-store", Status: 403, Body: []byte(`{"message":"not yours"}`)}
	store := &fakeStore{modifyErr: storeErr}
	notifier := &fakeNotifier{}
	handler := NewModifyItemHandler(store, notifier, nil, "gateway")

	req := modifyRequest(t, "item42", `{"itemPrice":"150 kr"}`)

	_, err := handler.Handle(context.Background(), req)
	require.ErrorAs(t, err, &storeErr)

	assert.Equal(t, 0, notifier.calls)
}

func TestModifyItemRejectsEmptyBody(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	handler := NewModifyItemHandler(store, notifier, nil, "gateway")

	_, err := handler.Handle(context.Background(), &ModifyItemRequest{ItemID: "item42"})
	require.Error(t, err)

	assert.Empty(t, store.modifiedItemID)
	assert.Equal(t, 0, notifier.calls)
}
