package events

import (
	"time"
)

// Domain constants
const (
	ItemDomain   = "item"
	ItemExchange = "gateway.item"
)

// Event names
const (
	ItemPriceChangedEvent = "item.price_changed"
)

// Event versions
const (
	EventVersionV1 = "v1"
)

// ItemPriceChangedPayload represents the payload for item.price_changed event.
// NewPrice carries whatever the caller submitted, string or number.
type ItemPriceChangedPayload struct {
	ItemID    string    `json:"itemId"`
	NewPrice  any       `json:"newPrice"`
	ChangedAt time.Time `json:"changedAt"`
}
