package item

import (
	"context"
	"errors"
	"fmt"

	"itemstore/internal/pagination"

	"golang.org/x/exp/slog"
)

// Servicer is the business-logic surface consumed by the HTTP layer.
type Servicer interface {
	Create(ctx context.Context, draft Draft) (*Item, error)
	Get(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context, params pagination.Params) ([]Item, pagination.Meta, error)
	Update(ctx context.Context, id string, patch Patch) (*Item, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

// NewService creates the item service on top of a repository.
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With("component", "item_service"),
	}
}

// Create validates the draft before anything is written; a rejected
// request leaves the store untouched.
func (s *Service) Create(ctx context.Context, draft Draft) (*Item, error) {
	if err := ValidateDraft(draft); err != nil {
		return nil, err
	}

	it, err := s.repo.Create(ctx, draft)
	if err != nil {
		s.log.Error("failed to create item", "name", draft.Name, "error", err)
		return nil, fmt.Errorf("create item: %w", err)
	}

	s.log.Info("item created", "item_id", it.ID)
	return it, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Item, error) {
	it, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to get item", "item_id", id, "error", err)
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

// List loads the full collection, orders it stably by the requested
// field and returns the page window plus pagination metadata.
func (s *Service) List(ctx context.Context, params pagination.Params) ([]Item, pagination.Meta, error) {
	params = params.Normalize()

	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list items", "error", err)
		return nil, pagination.Meta{}, fmt.Errorf("list items: %w", err)
	}

	Sort(items, params.Sort, params.Order)

	page := pagination.Slice(items, params.Page, params.Limit)
	meta := pagination.NewMeta(params.Page, params.Limit, len(items))

	return page, meta, nil
}

// Update validates the patch first, so an invalid request never causes
// a partial write.
func (s *Service) Update(ctx context.Context, id string, patch Patch) (*Item, error) {
	if err := ValidatePatch(patch); err != nil {
		return nil, err
	}

	it, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to update item", "item_id", id, "error", err)
		return nil, fmt.Errorf("update item: %w", err)
	}

	s.log.Info("item updated", "item_id", id)
	return it, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete item", "item_id", id, "error", err)
		return fmt.Errorf("delete item: %w", err)
	}

	s.log.Info("item deleted", "item_id", id)
	return nil
}
