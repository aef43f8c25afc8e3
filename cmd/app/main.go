package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mvirden/Confidant_Go/internal/auth"
	"github.com/mvirden/Confidant_Go/internal/bootstrap"
	"github.com/mvirden/Confidant_Go/internal/config"
	"github.com/mvirden/Confidant_Go/internal/database"
	"github.com/mvirden/Confidant_Go/internal/database/postgres"
	"github.com/mvirden/Confidant_Go/internal/database/schema"
	"github.com/mvirden/Confidant_Go/internal/friends"
	"github.com/mvirden/Confidant_Go/internal/handler"
	"github.com/mvirden/Confidant_Go/internal/relay"
	"github.com/mvirden/Confidant_Go/internal/server"
	"github.com/mvirden/Confidant_Go/internal/user"
)

const (
	dbMaxConnections    = 20
	dbMaxIdleTime       = 5 * time.Minute
	dbMaxLifetime       = 30 * time.Minute
	shutdownGracePeriod = 10 * time.Second
	schemaApplyTimeout  = 30 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	handler.InitValidator()

	pool, err := database.NewPool(cfg.GetDBConnString(), dbMaxConnections, dbMaxIdleTime, dbMaxLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), schemaApplyTimeout)
	if _, err := pool.Exec(schemaCtx, schema.SchemaSQL); err != nil {
		cancelSchema()
		slog.Error("Failed to apply database schema", "error", err)
		os.Exit(1)
	}
	cancelSchema()

	repo := postgres.NewUserRepository(pool)
	tokens := auth.NewTokenService([]byte(cfg.TokenSecret), cfg.TokenTTL)
	authService := auth.NewService(repo, auth.NewBcryptHasher(), tokens)
	friendsService := friends.NewService(repo)
	userService := user.NewService(repo)
	hub := relay.NewHub()

	srv := server.NewServer(cfg.Port, cfg.TrustedProxies, pool, authService, userService, friendsService, hub)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server: srv,
		Hub:    hub,
		DBPool: pool,
	})
}
