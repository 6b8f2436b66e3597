package category

import (
	"context"

	"gateway/domain"
	"gateway/infra/upstream"
	"gateway/internal/middleware"
	"gateway/pkg/httperror"
)

type CreateCategoryHandler struct {
	catalog Catalog
}

func NewCreateCategoryHandler(catalog Catalog) *CreateCategoryHandler {
	return &CreateCategoryHandler{
		catalog: catalog,
	}
}

type CreateCategoryRequest struct {
	domain.RawBody
}

func (h CreateCategoryHandler) Handle(ctx context.Context, req *CreateCategoryRequest) (*upstream.Response, error) {
	if len(req.Body) == 0 {
		return nil, httperror.BadRequest(
			"category.create.missing_body",
			"Request body is required",
			nil,
		)
	}

	return h.catalog.CreateCategory(ctx, middleware.UserID(ctx), req.Body)
}
