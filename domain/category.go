package domain

// Category is the record shape owned by the external item store.
type Category struct {
	CategoryID  string `json:"categoryId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CategoryPage is the item store's category listing.
type CategoryPage struct {
	Categories []Category `json:"categories"`
}

// CategoryItemRef is a lightweight pointer to an item shown inside a
// category view.
type CategoryItemRef struct {
	ItemName string `json:"itemName"`
	Link     string `json:"link"`
}

// CategoryWithItems groups the items currently listed in a category.
type CategoryWithItems struct {
	CategoryName string            `json:"categoryName"`
	Items        []CategoryItemRef `json:"items"`
}

// CategoryListing is the gateway's aggregated category view.
type CategoryListing struct {
	Categories []CategoryWithItems `json:"categories"`
	Message    string              `json:"message"`
	Links      Links               `json:"_links"`
}
