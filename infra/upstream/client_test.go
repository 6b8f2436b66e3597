package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoDecodesSuccessfulResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/items", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"totalItems": 3}`))
	}))
	defer server.Close()

	client := NewClient("item-store", server.URL, time.Second)

	resp, err := client.Do(context.Background(), http.MethodGet, "/items", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)

	var decoded struct {
		TotalItems int `json:"totalItems"`
	}
	require.NoError(t, resp.Decode(&decoded))
	assert.Equal(t, 3, decoded.TotalItems)
}

func TestDoSerializesBodyAndForwardsHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "u1", r.Header.Get("X-User-ID"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient("item-store", server.URL, time.Second)

	resp, err := client.Do(context.Background(), http.MethodPost, "/items/create", map[string]string{
		"X-User-ID": "u1",
		"Empty":     "",
	}, map[string]string{"itemName": "Lamp"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.Status)
}

func TestDoNormalizesRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"The item document you requested does not exist."}`))
	}))
	defer server.Close()

	client := NewClient("item-store", server.URL, time.Second)

	resp, err := client.Do(context.Background(), http.MethodGet, "/items/missing", nil, nil)
	assert.Nil(t, resp)

	var upstreamErr *Error
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, http.StatusNotFound, upstreamErr.Status)
	assert.False(t, upstreamErr.Unreachable())
	assert.False(t, upstreamErr.Timeout())
	assert.JSONEq(t, `{"message":"The item document you requested does not exist."}`, string(upstreamErr.Body))
}

func TestDoClassifiesUnreachableUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient("account-service", server.URL, time.Second)

	_, err := client.Do(context.Background(), http.MethodGet, "/auth/admin/users", nil, nil)

	var upstreamErr *Error
	require.ErrorAs(t, err, &upstreamErr)
	assert.True(t, upstreamErr.Unreachable())
	assert.False(t, upstreamErr.Timeout())
	assert.Equal(t, "account-service", upstreamErr.Upstream)
}

func TestDoClassifiesTimeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		server.Close()
	}()

	client := NewClient("item-store", server.URL, 20*time.Millisecond)

	_, err := client.Do(context.Background(), http.MethodGet, "/items", nil, nil)

	var upstreamErr *Error
	require.ErrorAs(t, err, &upstreamErr)
	assert.True(t, upstreamErr.Unreachable())
	assert.True(t, upstreamErr.Timeout())
}

func TestErrorUnwrapsCause(t *testing.T) {
	cause := errors.New("boom")
	err := &Error{Upstream: "item-store", cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "item-store")
}
