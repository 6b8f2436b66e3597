package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Notification is one per-user entry inside a price-change delivery.
type Notification struct {
	UserID  string `json:"userId"`
	Message string `json:"message"`
}

// PriceChangePayload is the wire format POSTed to every registered
// webhook. NewPrice is relayed exactly as submitted, string or number.
type PriceChangePayload struct {
	ItemObjectID  string         `json:"itemObjectId"`
	NewPrice      any            `json:"newPrice"`
	Notifications []Notification `json:"notifications"`
}

type subscription struct {
	id  string
	url string
}

// Manager owns the webhook registry and the per-item favorites index.
// Both live in memory for the process lifetime; subscriptions never
// expire and there is no unregister. Neither map is validated against
// the external stores: favorites and webhooks are a side channel, not a
// system of record.
type Manager struct {
	mu        sync.RWMutex
	webhooks  map[string]string
	favorites map[string]map[string]struct{}

	httpClient *http.Client
}

func NewManager(deliveryTimeout time.Duration) *Manager {
	return &Manager{
		webhooks:  make(map[string]string),
		favorites: make(map[string]map[string]struct{}),
		httpClient: &http.Client{
			Timeout: deliveryTimeout,
		},
	}
}

// RegisterWebhook stores a callback URL and returns its fresh id. Ids
// are random UUIDs so concurrent registrations never collide.
func (m *Manager) RegisterWebhook(url string) string {
	id := uuid.New().String()

	m.mu.Lock()
	m.webhooks[id] = url
	m.mu.Unlock()

	return id
}

// WebhookCount returns the number of registered webhooks.
func (m *Manager) WebhookCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.webhooks)
}

// AddFavorite marks an item as favorited by a user. Favoriting the same
// item twice is a no-op.
func (m *Manager) AddFavorite(userID, itemID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	set, ok := m.favorites[itemID]
	if !ok {
		set = make(map[string]struct{})
		m.favorites[itemID] = set
	}
	set[userID] = struct{}{}
}

// FavoriteCount returns how many users favorited an item.
func (m *Manager) FavoriteCount(itemID string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.favorites[itemID])
}

// NotifyPriceChange fans a price-change event out to every registered
// webhook. Registration is global: every callback receives the same
// payload regardless of which users favorited the item; only the
// notifications list is per-item. Deliveries run concurrently, each
// failure is logged and isolated, and the call returns once every
// attempt has settled. Delivery outcome is never surfaced to the
// caller; the price mutation has already committed by the time this
// runs.
func (m *Manager) NotifyPriceChange(ctx context.Context, itemID string, newPrice any) {
	targets, userIDs := m.snapshot(itemID)

	zap.L().Info("Notifying price change",
		zap.String("itemId", itemID),
		zap.Any("newPrice", newPrice),
		zap.Int("favoritedBy", len(userIDs)),
		zap.Int("webhooks", len(targets)),
	)

	notifications := make([]Notification, 0, len(userIDs))
	for _, userID := range userIDs {
		notifications = append(notifications, Notification{
			UserID:  userID,
			Message: fmt.Sprintf("Price of item with id : %s has changed to %v kr", itemID, newPrice),
		})
	}

	payload, err := json.Marshal(PriceChangePayload{
		ItemObjectID:  itemID,
		NewPrice:      newPrice,
		Notifications: notifications,
	})
	if err != nil {
		zap.L().Error("Failed to serialize webhook payload",
			zap.String("itemId", itemID),
			zap.Error(err))
		return
	}

	var wg sync.WaitGroup
	for _, target := range targets {
		wg.Add(1)
		go func(target subscription) {
			defer wg.Done()
			m.deliver(ctx, target, payload)
		}(target)
	}
	wg.Wait()
}

// snapshot copies the registry and the item's favoriting users under
// the read lock so deliveries run without holding it. User ids come
// back sorted for a stable payload.
func (m *Manager) snapshot(itemID string) ([]subscription, []string) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	targets := make([]subscription, 0, len(m.webhooks))
	for id, url := range m.webhooks {
		targets = append(targets, subscription{id: id, url: url})
	}

	userIDs := make([]string, 0, len(m.favorites[itemID]))
	for userID := range m.favorites[itemID] {
		userIDs = append(userIDs, userID)
	}
	sort.Strings(userIDs)

	return targets, userIDs
}

func (m *Manager) deliver(ctx context.Context, target subscription, payload []byte) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.url, bytes.NewReader(payload))
	if err != nil {
		zap.L().Error("Failed to build webhook request",
			zap.String("webhookId", target.id),
			zap.Error(err))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		zap.L().Error("Failed to notify webhook",
			zap.String("webhookId", target.id),
			zap.Error(err))
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		zap.L().Warn("Webhook rejected notification",
			zap.String("webhookId", target.id),
			zap.Int("status", resp.StatusCode))
		return
	}

	zap.L().Info("Webhook notified",
		zap.String("webhookId", target.id),
		zap.Int("status", resp.StatusCode))
}
