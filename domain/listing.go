package domain

import "time"

// Link is a single HATEOAS navigation link.
type Link struct {
	Href   string `json:"href"`
	Method string `json:"method,omitempty"`
}

// Links maps relation names to navigation links.
type Links map[string]Link

// RequestBase captures where an inbound request landed so response
// links can be built against the caller-facing scheme and host.
type RequestBase struct {
	Scheme string
	Host   string
	Path   string
}

func (b RequestBase) Href(path string) string {
	return b.Scheme + "://" + b.Host + path
}

// Self returns the link to the request itself.
func (b RequestBase) Self() Link {
	return Link{Href: b.Href(b.Path)}
}

// EnrichedItem is an item decorated with resolved seller identity and
// navigation links. Seller is null when the owning user no longer
// exists in the account service.
type EnrichedItem struct {
	Name        string    `json:"name"`
	Price       string    `json:"price"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	Seller      *Seller   `json:"seller"`
	Links       Links     `json:"_links"`
}

// EnrichedListing is the gateway's aggregated item listing.
type EnrichedListing struct {
	Items       []EnrichedItem `json:"items"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
	TotalItems  int            `json:"totalItems"`
	Message     string         `json:"message"`
	Links       Links          `json:"_links"`
}
