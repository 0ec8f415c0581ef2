package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/Clicker_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server *server.Server
}

// GracefulShutdown stops the HTTP server, letting in-flight requests finish
// until ctx expires. Errors are logged.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
