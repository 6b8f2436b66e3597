package aggregate

import (
	"context"
	"errors"
	"testing"

	"gateway/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoryStore struct {
	categories    *domain.CategoryPage
	categoriesErr error

	listCalls int
	page      *domain.ItemPage
	listErr   error
}

func (f *fakeCategoryStore) ListCategories(ctx context.Context) (*domain.CategoryPage, error) {
	if f.categoriesErr != nil {
		return nil, f.categoriesErr
	}
	return f.categories, nil
}

func (f *fakeCategoryStore) ListItems(ctx context.Context, filter domain.ItemFilter) (*domain.ItemPage, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.page, nil
}

func TestListWithItemsGroupsItemsByCategory(t *testing.T) {
	store := &fakeCategoryStore{
		categories: &domain.CategoryPage{Categories: []domain.Category{
			{CategoryID: "c1", Name: "Furniture"},
			{CategoryID: "c2", Name: "Lighting"},
		}},
		page: &domain.ItemPage{Items: []domain.Item{
			{ItemID: "i1", ItemName: "Chair", Category: "c1"},
			{ItemID: "i2", ItemName: "Lamp", Category: "c2"},
			{ItemID: "i3", ItemName: "Sofa", Category: "c1"},
		}},
	}

	aggregator := NewCategoryAggregator(store)

	listing, err := aggregator.ListWithItems(context.Background(), testBase)
	require.NoError(t, err)
	require.Len(t, listing.Categories, 2)

	assert.Equal(t, "Furniture", listing.Categories[0].CategoryName)
	require.Len(t, listing.Categories[0].Items, 2)
	assert.Equal(t, "Chair", listing.Categories[0].Items[0].ItemName)
	assert.Equal(t, "http://gateway.test/api/v1/items/i1", listing.Categories[0].Items[0].Link)
	assert.Equal(t, "Sofa", listing.Categories[0].Items[1].ItemName)

	assert.Equal(t, "Lighting", listing.Categories[1].CategoryName)
	require.Len(t, listing.Categories[1].Items, 1)
	assert.Equal(t, "Lamp", listing.Categories[1].Items[0].ItemName)

	assert.Equal(t, "Categories with items fetched successfully", listing.Message)
}

func TestListWithItemsKeepsItemlessCategoryEmpty(t *testing.T) {
	store := &fakeCategoryStore{
		categories: &domain.CategoryPage{Categories: []domain.Category{
			{CategoryID: "c1", Name: "Furniture"},
			{CategoryID: "c2", Name: "Lighting"},
		}},
		page: &domain.ItemPage{Items: []domain.Item{
			{ItemID: "i1", ItemName: "Chair", Category: "c1"},
		}},
	}

	aggregator := NewCategoryAggregator(store)

	listing, err := aggregator.ListWithItems(context.Background(), testBase)
	require.NoError(t, err)
	require.Len(t, listing.Categories, 2)

	assert.Empty(t, listing.Categories[1].Items)
	assert.NotNil(t, listing.Categories[1].Items)
}

func TestListWithItemsEmptyCategoriesSkipsItemFetch(t *testing.T) {
	store := &fakeCategoryStore{
		categories: &domain.CategoryPage{Categories: []domain.Category{}},
	}

	aggregator := NewCategoryAggregator(store)

	listing, err := aggregator.ListWithItems(context.Background(), testBase)
	require.NoError(t, err)

	assert.Equal(t, 0, store.listCalls)
	assert.Empty(t, listing.Categories)
	assert.NotNil(t, listing.Categories)
	assert.Equal(t, "No categories found or invalid response from items server", listing.Message)
}

func TestListWithItemsItemFetchFailureFailsAggregation(t *testing.T) {
	storeErr := errors.New("store down")
	store := &fakeCategoryStore{
		categories: &domain.CategoryPage{Categories: []domain.Category{
			{CategoryID: "c1", Name: "Furniture"},
		}},
		listErr: storeErr,
	}

	aggregator := NewCategoryAggregator(store)

	_, err := aggregator.ListWithItems(context.Background(), testBase)
	require.ErrorIs(t, err, storeErr)
}
