package aggregate

import (
	"context"

	"gateway/domain"
)

// CategoryStore is the slice of the item store the category view needs.
type CategoryStore interface {
	ListCategories(ctx context.Context) (*domain.CategoryPage, error)
	ListItems(ctx context.Context, filter domain.ItemFilter) (*domain.ItemPage, error)
}

// CategoryAggregator builds the category browse view: every category
// with the items currently listed under it.
type CategoryAggregator struct {
	store CategoryStore
}

func NewCategoryAggregator(store CategoryStore) *CategoryAggregator {
	return &CategoryAggregator{
		store: store,
	}
}

// ListWithItems fetches all categories and all items, then groups the
// items per category. Categories with nothing for sale come back with
// an empty list rather than being dropped.
func (a *CategoryAggregator) ListWithItems(ctx context.Context, base domain.RequestBase) (*domain.CategoryListing, error) {
	links := domain.Links{
		"self": base.Self(),
	}

	categories, err := a.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	if len(categories.Categories) == 0 {
		return &domain.CategoryListing{
			Categories: []domain.CategoryWithItems{},
			Message:    "No categories found or invalid response from items server",
			Links:      links,
		}, nil
	}

	page, err := a.store.ListItems(ctx, domain.ItemFilter{})
	if err != nil {
		return nil, err
	}

	itemsByCategory := make(map[string][]domain.CategoryItemRef)
	for _, item := range page.Items {
		itemsByCategory[item.Category] = append(itemsByCategory[item.Category], domain.CategoryItemRef{
			ItemName: item.ItemName,
			Link:     base.Href("/api/v1/items/" + item.ItemID),
		})
	}

	grouped := make([]domain.CategoryWithItems, 0, len(categories.Categories))
	for _, category := range categories.Categories {
		items := itemsByCategory[category.CategoryID]
		if items == nil {
			items = []domain.CategoryItemRef{}
		}
		grouped = append(grouped, domain.CategoryWithItems{
			CategoryName: category.Name,
			Items:        items,
		})
	}

	return &domain.CategoryListing{
		Categories: grouped,
		Message:    "Categories with items fetched successfully",
		Links:      links,
	}, nil
}
