package hook

import (
	"context"

	"gateway/pkg/httperror"

	"github.com/go-playground/validator/v10"
)

type AddFavoriteHandler struct {
	registry Registry
}

func NewAddFavoriteHandler(registry Registry) *AddFavoriteHandler {
	return &AddFavoriteHandler{
		registry: registry,
	}
}

type AddFavoriteRequest struct {
	UserID       string `json:"userId" validate:"required"`
	ItemObjectID string `json:"itemObjectId" validate:"required"`
}

type AddFavoriteResponse struct {
	Message string `json:"message"`
}

func (h AddFavoriteHandler) Handle(ctx context.Context, req *AddFavoriteRequest) (*AddFavoriteResponse, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(req); err != nil {
		return nil, httperror.BadRequest(
			"webhook.favorite.missing_fields",
			"User ID and Item ID are required",
			nil,
		)
	}

	h.registry.AddFavorite(req.UserID, req.ItemObjectID)

	return &AddFavoriteResponse{
		Message: "Item added to favorites",
	}, nil
}
