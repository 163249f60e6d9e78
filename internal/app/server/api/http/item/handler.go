package item

import (
	"context"
	"errors"

	"itemstore/internal/app/server/api/envelope"
	"itemstore/internal/domain/item"
	"itemstore/internal/pagination"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const basePath = "/v1/items"

type Handler struct {
	service    item.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service item.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.findOp(), h.find)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	params := pagination.Params{
		Page:  input.Page,
		Limit: input.Limit,
		Sort:  input.Sort,
		Order: input.Order,
	}.Normalize()

	items, meta, err := h.service.List(ctx, params)
	if err != nil {
		return nil, h.translate(ctx, err)
	}

	links := envelope.NewLinks(basePath, params, meta)
	return &listOutput{
		Body: envelope.NewList(ctx, items, meta, links),
	}, nil
}

func (h *Handler) find(ctx context.Context, input *findInput) (*itemOutput, error) {
	it, err := h.service.Get(ctx, input.ID)
	if err != nil {
		return nil, h.translate(ctx, err)
	}

	return &itemOutput{
		Body: envelope.NewSingle(ctx, *it),
	}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*itemOutput, error) {
	draft := item.Draft{
		Name:        input.Body.Data.Attributes.Name,
		Description: input.Body.Data.Attributes.Description,
	}

	it, err := h.service.Create(ctx, draft)
	if err != nil {
		return nil, h.translate(ctx, err)
	}

	return &itemOutput{
		Body: envelope.NewSingle(ctx, *it),
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*itemOutput, error) {
	patch := item.Patch{
		Name:        input.Body.Data.Attributes.Name,
		Description: input.Body.Data.Attributes.Description,
	}

	it, err := h.service.Update(ctx, input.ID, patch)
	if err != nil {
		return nil, h.translate(ctx, err)
	}

	return &itemOutput{
		Body: envelope.NewSingle(ctx, *it),
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, h.translate(ctx, err)
	}
	return &deleteOutput{}, nil
}

// translate maps domain failures onto the error envelope at the
// boundary. Anything unrecognized becomes an opaque internal error.
func (h *Handler) translate(ctx context.Context, err error) error {
	if errors.Is(err, item.ErrNotFound) {
		return envelope.NotFound(ctx)
	}

	var verr *item.ValidationError
	if errors.As(err, &verr) {
		details := make([]envelope.FieldViolation, len(verr.Violations))
		for i, v := range verr.Violations {
			details[i] = envelope.FieldViolation{
				Field:   v.Field,
				Code:    v.Code,
				Message: v.Message,
			}
		}
		return envelope.Validation(ctx, details)
	}

	h.log.Error("unhandled error", "error", err)
	return envelope.Internal(ctx)
}
