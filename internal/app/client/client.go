// Package client implements the CLI application talking to the items
// API: an HTTP client plus an optional SQLite cache of fetched items.
package client

import (
	"context"
	"fmt"

	"itemstore/internal/app/client/config"
	"itemstore/internal/domain/item"

	"golang.org/x/exp/slog"
)

const clientVersion = "1.0.0"

type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
	cache      *SQLiteCache
}

// New builds the client application. A broken local cache is not
// fatal; the client just runs without one.
func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("init http client: %w", err)
	}

	cache, err := NewSQLiteCache(cfg.CachePath)
	if err != nil {
		log.Warn("local cache unavailable", "path", cfg.CachePath, "error", err)
		cache = nil
	}

	return &App{
		config:     cfg,
		log:        log,
		httpClient: httpCl,
		cache:      cache,
	}, nil
}

func (a *App) Close() error {
	if a.cache != nil {
		return a.cache.Close()
	}
	return nil
}

func (a *App) HealthCheck(ctx context.Context) (*HealthStatus, error) {
	return a.httpClient.HealthCheck(ctx)
}

// ListItems fetches a page from the server and refreshes the cache.
// With cached=true it serves the locally cached items instead.
func (a *App) ListItems(ctx context.Context, params ListParams, cached bool) ([]item.Item, *Pagination, error) {
	if cached {
		if a.cache == nil {
			return nil, nil, fmt.Errorf("local cache is not available")
		}
		items, err := a.cache.ListItems()
		return items, nil, err
	}

	items, pg, err := a.httpClient.ListItems(ctx, params)
	if err != nil {
		return nil, nil, err
	}

	if a.cache != nil {
		if err := a.cache.SaveItems(items); err != nil {
			a.log.Warn("failed to refresh cache", "error", err)
		}
	}
	return items, pg, nil
}

func (a *App) GetItem(ctx context.Context, id string) (*item.Item, error) {
	it, err := a.httpClient.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.cache != nil {
		if err := a.cache.SaveItem(it); err != nil {
			a.log.Warn("failed to cache item", "item_id", it.ID, "error", err)
		}
	}
	return it, nil
}

func (a *App) CreateItem(ctx context.Context, name, description string) (*item.Item, error) {
	it, err := a.httpClient.CreateItem(ctx, name, description)
	if err != nil {
		return nil, err
	}
	if a.cache != nil {
		if err := a.cache.SaveItem(it); err != nil {
			a.log.Warn("failed to cache item", "item_id", it.ID, "error", err)
		}
	}
	return it, nil
}

func (a *App) UpdateItem(ctx context.Context, id string, name, description *string) (*item.Item, error) {
	it, err := a.httpClient.UpdateItem(ctx, id, name, description)
	if err != nil {
		return nil, err
	}
	if a.cache != nil {
		if err := a.cache.SaveItem(it); err != nil {
			a.log.Warn("failed to cache item", "item_id", it.ID, "error", err)
		}
	}
	return it, nil
}

func (a *App) DeleteItem(ctx context.Context, id string) error {
	if err := a.httpClient.DeleteItem(ctx, id); err != nil {
		return err
	}
	if a.cache != nil {
		if err := a.cache.DeleteItem(id); err != nil {
			a.log.Warn("failed to evict cached item", "item_id", id, "error", err)
		}
	}
	return nil
}

type ctxKey struct{}

// IntoContext plants the app into a context for cobra subcommands.
func IntoContext(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, ctxKey{}, app)
}

// FromContext retrieves the app planted by the root command.
func FromContext(ctx context.Context) (*App, bool) {
	app, ok := ctx.Value(ctxKey{}).(*App)
	return app, ok
}
