package hook

import (
	"context"

	"gateway/pkg/httperror"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type RegisterWebhookHandler struct {
	registry Registry
}

func NewRegisterWebhookHandler(registry Registry) *RegisterWebhookHandler {
	return &RegisterWebhookHandler{
		registry: registry,
	}
}

type RegisterWebhookRequest struct {
	URL string `json:"url" validate:"required,url"`
}

type RegisterWebhookResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

func (RegisterWebhookResponse) StatusCode() int {
	return fiber.StatusCreated
}

func (h RegisterWebhookHandler) Handle(ctx context.Context, req *RegisterWebhookRequest) (*RegisterWebhookResponse, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(req); err != nil {
		return nil, httperror.BadRequest(
			"webhook.register.invalid_url",
			"Webhook URL is required",
			nil,
		)
	}

	id := h.registry.RegisterWebhook(req.URL)

	return &RegisterWebhookResponse{
		ID:      id,
		Message: "Webhook registered successfully",
	}, nil
}
