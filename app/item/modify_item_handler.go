package item

import (
	"context"
	"time"

	"gateway/domain"
	"gateway/infra/upstream"
	"gateway/internal/middleware"
	"gateway/pkg/events"
	"gateway/pkg/httperror"

	"go.uber.org/zap"
)

type ModifyItemHandler struct {
	store     Store
	notifier  Notifier
	publisher events.Publisher
	service   string
}

// NewModifyItemHandler wires the partial-update route. publisher may be
// nil when no broker is configured.
func NewModifyItemHandler(store Store, notifier Notifier, publisher events.Publisher, service string) *ModifyItemHandler {
	return &ModifyItemHandler{
		store:     store,
		notifier:  notifier,
		publisher: publisher,
		service:   service,
	}
}

type ModifyItemRequest struct {
	domain.RawBody
	ItemID    string `params:"itemId"`
	ItemPrice any    `json:"itemPrice"`
}

func (h ModifyItemHandler) Handle(ctx context.Context, req *ModifyItemRequest) (*upstream.Response, error) {
	if len(req.Body) == 0 {
		return nil, httperror.BadRequest(
			"item.modify.missing_body",
			"Request body is required",
			nil,
		)
	}

	resp, err := h.store.ModifyItem(ctx, req.ItemID, middleware.UserID(ctx), req.Body)
	if err != nil {
		return nil, err
	}

	// The price mutation has committed; notification and event
	// publishing are fire-and-forget from here on.
	if req.ItemPrice != nil {
		h.notifier.NotifyPriceChange(ctx, req.ItemID, req.ItemPrice)
		h.publishPriceChanged(ctx, req.ItemID, req.ItemPrice)
	}

	return resp, nil
}

func (h ModifyItemHandler) publishPriceChanged(ctx context.Context, itemID string, newPrice any) {
	if h.publisher == nil {
		return
	}

	headers := events.Headers{
		TraceID:       events.GenerateTraceID(),
		CorrelationID: events.GenerateCorrelationID(),
		Service:       h.service,
	}

	event := events.NewEvent(events.ItemPriceChangedEvent, events.EventVersionV1, events.ItemPriceChangedPayload{
		ItemID:    itemID,
		NewPrice:  newPrice,
		ChangedAt: time.Now().UTC(),
	}, headers)

	if err := h.publisher.Publish(ctx, events.ItemExchange, event, headers); err != nil {
		zap.L().Error("Failed to publish price change event",
			zap.String("itemId", itemID),
			zap.Error(err))
	}
}
