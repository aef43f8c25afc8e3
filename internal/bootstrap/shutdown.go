package bootstrap

import (
	"context"
	"log/slog"

	"github.com/mvirden/Confidant_Go/internal/database"
	"github.com/mvirden/Confidant_Go/internal/relay"
	"github.com/mvirden/Confidant_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server *server.Server
	Hub    *relay.Hub
	DBPool database.Pool
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Relay hub (close live streams so connected clients disconnect cleanly)
// 3. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Hub != nil {
		components.Hub.Stop()
		slog.Info(LogMsgRelayHubStopped)
	}

	if components.DBPool != nil {
		components.DBPool.Close()
		slog.Info(LogMsgDatabasePoolClosed)
	}

	slog.Info(LogMsgServerStopped)
}
