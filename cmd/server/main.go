package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/auth"
	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/config"
	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/server"
	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/storage"
	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/storage/sqlite"
	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	if err := storage.Seed(context.Background(), store); err != nil {
		slog.Error("Failed to seed demo data", "error", err)
		os.Exit(1)
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	srv := server.New(store, jwtManager)

	slog.Info("Server starting", "address", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, srv.Router()); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
