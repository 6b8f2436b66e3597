package category

import (
	"context"
	"encoding/json"

	"gateway/domain"
	"gateway/infra/upstream"
)

// Catalog is the slice of the item store the category handlers use.
// Implemented by upstream.ItemClient.
type Catalog interface {
	CreateCategory(ctx context.Context, userID string, body json.RawMessage) (*upstream.Response, error)
}

// Aggregator builds the grouped category view. Implemented by
// aggregate.CategoryAggregator.
type Aggregator interface {
	ListWithItems(ctx context.Context, base domain.RequestBase) (*domain.CategoryListing, error)
}
