package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterWebhookReturnsUniqueIDsUnderConcurrency(t *testing.T) {
	manager := NewManager(time.Second)

	const registrations = 100
	ids := make(chan string, registrations)

	var wg sync.WaitGroup
	for i := 0; i < registrations; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- manager.RegisterWebhook("https://hook.example/cb")
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, registrations)
	for id := range ids {
		require.NotEmpty(t, id)
		seen[id] = struct{}{}
	}

	assert.Len(t, seen, registrations)
	assert.Equal(t, registrations, manager.WebhookCount())
}

func TestAddFavoriteIsIdempotent(t *testing.T) {
	manager := NewManager(time.Second)

	manager.AddFavorite("u1", "item42")
	manager.AddFavorite("u1", "item42")
	manager.AddFavorite("u2", "item42")

	assert.Equal(t, 2, manager.FavoriteCount("item42"))
	assert.Equal(t, 0, manager.FavoriteCount("item43"))
}

func TestNotifyPriceChangeDeliversExpectedPayload(t *testing.T) {
	var payload PriceChangePayload
	var received atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &payload))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		received.Add(1)
	}))
	defer server.Close()

	manager := NewManager(time.Second)
	manager.RegisterWebhook(server.URL)
	manager.AddFavorite("u1", "item42")

	manager.NotifyPriceChange(context.Background(), "item42", "150")

	require.Equal(t, int32(1), received.Load())
	assert.Equal(t, "item42", payload.ItemObjectID)
	assert.Equal(t, "150", payload.NewPrice)
	require.Len(t, payload.Notifications, 1)
	assert.Equal(t, "u1", payload.Notifications[0].UserID)
	assert.Equal(t, "Price of item with id : item42 has changed to 150 kr", payload.Notifications[0].Message)
}

func TestNotifyPriceChangeDeliversWithoutFavorites(t *testing.T) {
	var notifications []Notification
	var received atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload PriceChangePayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		notifications = payload.Notifications
		received.Add(1)
	}))
	defer server.Close()

	manager := NewManager(time.Second)
	manager.RegisterWebhook(server.URL)

	manager.NotifyPriceChange(context.Background(), "item7", 99)

	require.Equal(t, int32(1), received.Load())
	assert.Empty(t, notifications)
	assert.NotNil(t, notifications)
}

func TestNotifyPriceChangeIsolatesFailures(t *testing.T) {
	var healthyHits atomic.Int32

	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		healthyHits.Add(1)
	}))
	defer healthy.Close()

	rejecting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer rejecting.Close()

	unreachable := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	unreachable.Close()

	healthySecond := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		healthyHits.Add(1)
	}))
	defer healthySecond.Close()

	manager := NewManager(time.Second)
	manager.RegisterWebhook(healthy.URL)
	manager.RegisterWebhook(rejecting.URL)
	manager.RegisterWebhook(unreachable.URL)
	manager.RegisterWebhook(healthySecond.URL)

	manager.NotifyPriceChange(context.Background(), "item1", "200")

	assert.Equal(t, int32(2), healthyHits.Load())
}
