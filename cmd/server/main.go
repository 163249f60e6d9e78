package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"itemstore/internal/app/server/api"
	"itemstore/internal/app/server/config"
	"itemstore/internal/domain/item"
	"itemstore/internal/infrastructure/storage/memory"
	"itemstore/internal/infrastructure/storage/postgres"
	"itemstore/internal/utils/logger"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	var repo item.Repository
	switch cfg.Storage.Backend {
	case config.StoragePostgres:
		storage, err := postgres.New(cfg)
		if err != nil {
			log.Error("failed to connect to postgres", "error", err)
			os.Exit(1)
		}
		defer storage.Close()
		repo = postgres.NewItemRepository(storage.Pool(), log)
	default:
		repo = memory.NewStore()
	}

	mux := api.New(repo, log)
	srv := &http.Server{
		Addr:    cfg.Server.RunAddress,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server starting", "address", cfg.Server.RunAddress, "storage", cfg.Storage.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
	log.Info("server stopped")
}
