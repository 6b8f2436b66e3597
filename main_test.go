package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gateway/infra/upstream"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProxyHandler struct {
	resp *upstream.Response
	err  error
}

func (h stubProxyHandler) Handle(ctx context.Context, req *struct{}) (*upstream.Response, error) {
	if h.err != nil {
		return nil, h.err
	}
	return h.resp, nil
}

func TestHandleForwardsProxyResponseVerbatim(t *testing.T) {
	body := []byte(`{"itemId":"i1","itemName":"Lamp","extra":{"unknown":true}}`)
	app := fiber.New()
	app.Get("/items/i1", handle[struct{}, upstream.Response](stubProxyHandler{
		resp: &upstream.Response{Status: http.StatusOK, Body: body},
	}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items/i1", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	got, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, body, got)
	assert.Equal(t, fiber.MIMEApplicationJSON, resp.Header.Get(fiber.HeaderContentType))
}

func TestWriteErrorForwardsUpstreamRejectionVerbatim(t *testing.T) {
	body := []byte(`{"message":"The item document you requested does not exist."}`)
	app := fiber.New()
	app.Get("/items/missing", handle[struct{}, upstream.Response](stubProxyHandler{
		err: &upstream.Error{Upstream: "item-store", Status: http.StatusNotFound, Body: body},
	}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/items/missing", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	got, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, body, got)
	assert.Equal(t, fiber.MIMEApplicationJSON, resp.Header.Get(fiber.HeaderContentType))
}
