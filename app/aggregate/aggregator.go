package aggregate

import (
	"context"

	"gateway/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AccountDirectory is the slice of the account service the aggregators
// depend on.
type AccountDirectory interface {
	ListUsers(ctx context.Context, authorization string) (*domain.UserDirectory, error)
}

// ItemStore is the slice of the item store the aggregators depend on.
type ItemStore interface {
	ListItems(ctx context.Context, filter domain.ItemFilter) (*domain.ItemPage, error)
	ListUserItems(ctx context.Context, userID string) (*domain.UserItems, error)
}

// ItemAggregator joins item data with seller identity across the two
// upstreams. It owns no state and performs no re-filtering; both
// upstreams stay the source of truth for their own records.
type ItemAggregator struct {
	accounts AccountDirectory
	items    ItemStore
}

func NewItemAggregator(accounts AccountDirectory, items ItemStore) *ItemAggregator {
	return &ItemAggregator{
		accounts: accounts,
		items:    items,
	}
}

// ListWithSellers produces one page of items decorated with seller
// identity and navigation links. An empty page short-circuits before
// the account service is ever called. A directory fetch failure fails
// the whole aggregation; there is no degraded all-sellers-null mode.
func (a *ItemAggregator) ListWithSellers(ctx context.Context, authorization string, filter domain.ItemFilter, base domain.RequestBase) (*domain.EnrichedListing, error) {
	page, err := a.items.ListItems(ctx, filter)
	if err != nil {
		return nil, err
	}

	links := domain.Links{
		"self": base.Self(),
		"createItem": domain.Link{
			Href:   base.Href("/api/v1/items"),
			Method: "POST",
		},
	}

	if len(page.Items) == 0 {
		return &domain.EnrichedListing{
			Items:       []domain.EnrichedItem{},
			CurrentPage: page.CurrentPage,
			TotalPages:  page.TotalPages,
			TotalItems:  page.TotalItems,
			Message:     "No items found matching the criteria",
			Links:       links,
		}, nil
	}

	directory, err := a.accounts.ListUsers(ctx, authorization)
	if err != nil {
		return nil, err
	}

	usersByID := make(map[string]domain.UserSummary, len(directory.Users))
	for _, user := range directory.Users {
		usersByID[user.ID] = user
	}

	enriched := make([]domain.EnrichedItem, 0, len(page.Items))
	for _, item := range page.Items {
		// A deleted owner is not an error; the item simply has no
		// resolvable seller.
		var seller *domain.Seller
		if user, ok := usersByID[item.OwnerUserID]; ok {
			seller = &domain.Seller{
				Username: user.Username,
				Email:    user.Email,
			}
		}

		enriched = append(enriched, domain.EnrichedItem{
			Name:        item.ItemName,
			Price:       item.ItemPrice,
			Description: item.Description,
			CreatedAt:   item.CreatedAt,
			Seller:      seller,
			Links: domain.Links{
				"self": domain.Link{Href: base.Href("/api/v1/items/" + item.ItemID)},
			},
		})
	}

	message := page.Message
	if message == "" {
		message = "Items fetching successful!"
	}

	return &domain.EnrichedListing{
		Items:       enriched,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
		TotalItems:  page.TotalItems,
		Message:     message,
		Links:       links,
	}, nil
}

// ListUsersWithItems answers the admin view: every user paired with
// everything they have for sale. Item fetches run concurrently, one
// per user, first failure wins and aborts the whole aggregation.
// Output order follows the user directory.
func (a *ItemAggregator) ListUsersWithItems(ctx context.Context, authorization string) (*domain.UsersWithItems, error) {
	directory, err := a.accounts.ListUsers(ctx, authorization)
	if err != nil {
		return nil, err
	}

	zap.L().Debug("Fetching items per user",
		zap.Int("users", len(directory.Users)))

	itemsByUser := make([][]domain.Item, len(directory.Users))
	group, groupCtx := errgroup.WithContext(ctx)
	for idx, user := range directory.Users {
		group.Go(func() error {
			items, err := a.items.ListUserItems(groupCtx, user.ID)
			if err != nil {
				return err
			}
			itemsByUser[idx] = items.Items
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	users := make([]domain.UserWithItems, 0, len(directory.Users))
	for idx, user := range directory.Users {
		items := itemsByUser[idx]
		if items == nil {
			items = []domain.Item{}
		}
		users = append(users, domain.UserWithItems{
			UserSummary: user,
			Items:       items,
		})
	}

	return &domain.UsersWithItems{
		Users:   users,
		Message: "All users and their items retrieved successfully.",
	}, nil
}
