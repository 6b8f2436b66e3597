package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is the record shape owned by the external item store. The
// gateway never mutates it locally; it only reads and re-emits it.
type Item struct {
	ItemID      string    `json:"itemId"`
	ItemName    string    `json:"itemName"`
	ItemPrice   string    `json:"itemPrice"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	OwnerUserID string    `json:"ownerUserId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ItemFilter carries the listing filters forwarded to the item store.
// Filter application is the store's job; the gateway only validates and
// relays them.
type ItemFilter struct {
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Page     int
	Limit    int
}

// ItemPage is one page of items as returned by the item store.
type ItemPage struct {
	Items       []Item `json:"items"`
	CurrentPage int    `json:"currentPage"`
	TotalPages  int    `json:"totalPages"`
	TotalItems  int    `json:"totalItems"`
	Message     string `json:"message,omitempty"`
}

// UserItems is the item store's "items of one user" response.
type UserItems struct {
	Items []Item `json:"items"`
}
