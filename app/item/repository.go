package item

import (
	"context"
	"encoding/json"

	"gateway/domain"
	"gateway/infra/upstream"
)

// Store is everything the item handlers need from the external item
// store. Implemented by upstream.ItemClient.
type Store interface {
	ListUserItems(ctx context.Context, userID string) (*domain.UserItems, error)
	GetItem(ctx context.Context, itemID string) (*upstream.Response, error)
	CreateItem(ctx context.Context, userID string, body json.RawMessage) (*upstream.Response, error)
	ReplaceItem(ctx context.Context, itemID, userID string, body json.RawMessage) (*upstream.Response, error)
	ModifyItem(ctx context.Context, itemID, userID string, body json.RawMessage) (*upstream.Response, error)
	DeleteItem(ctx context.Context, itemID, userID string) (*upstream.Response, error)
}

// Aggregator joins items with seller identity. Implemented by
// aggregate.ItemAggregator.
type Aggregator interface {
	ListWithSellers(ctx context.Context, authorization string, filter domain.ItemFilter, base domain.RequestBase) (*domain.EnrichedListing, error)
	ListUsersWithItems(ctx context.Context, authorization string) (*domain.UsersWithItems, error)
}

// Notifier fans price changes out to registered webhooks. Implemented
// by webhook.Manager.
type Notifier interface {
	NotifyPriceChange(ctx context.Context, itemID string, newPrice any)
}
