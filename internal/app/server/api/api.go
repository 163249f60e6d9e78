package api

import (
	"itemstore/internal/app/server/api/envelope"
	healthAPI "itemstore/internal/app/server/api/http/health"
	itemAPI "itemstore/internal/app/server/api/http/item"
	"itemstore/internal/app/server/api/http/middleware"
	"itemstore/internal/app/server/api/http/middleware/logger"
	"itemstore/internal/domain/item"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	Item   *itemAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
// The repository is injected so tests can run against a fresh in-memory
// store.
func New(repo item.Repository, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()
	mux.Use(chimw.RequestID)
	mux.Use(chimw.Recoverer)

	config := huma.DefaultConfig("Items API", envelope.Version)

	API := humachi.New(mux, config)

	h := handlers(repo, log)
	h.Health.SetupRoutes(API)
	h.Item.SetupRoutes(API)

	return mux
}

func handlers(repo item.Repository, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	itemService := item.NewService(repo, log)
	middlewares.Add(loggerMW.Middleware())
	itemHandler := itemAPI.NewHandler(itemService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		Item:   itemHandler,
	}
}
