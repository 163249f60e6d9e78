package item

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "items-list",
		Method:      http.MethodGet,
		Path:        "/v1/items",
		Summary:     "List items",
		Description: "Returns a sorted page of items with pagination metadata and navigation links.",
		Tags:        []string{"items"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) findOp() huma.Operation {
	return huma.Operation{
		OperationID: "items-find",
		Method:      http.MethodGet,
		Path:        "/v1/items/{id}",
		Summary:     "Get an item",
		Tags:        []string{"items"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "items-create",
		Method:        http.MethodPost,
		Path:          "/v1/items",
		Summary:       "Create an item",
		Tags:          []string{"items"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "items-update",
		Method:      http.MethodPatch,
		Path:        "/v1/items/{id}",
		Summary:     "Update an item",
		Description: "Partial merge: omitted attributes keep their stored values.",
		Tags:        []string{"items"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "items-delete",
		Method:        http.MethodDelete,
		Path:          "/v1/items/{id}",
		Summary:       "Delete an item",
		Tags:          []string{"items"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}
