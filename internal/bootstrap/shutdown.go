package bootstrap

import (
	"context"
	"log/slog"

	"github.com/farmverse/farmverse/internal/scheduler"
	"github.com/farmverse/farmverse/internal/server"
	"github.com/farmverse/farmverse/internal/sse"
	"github.com/farmverse/farmverse/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server     *server.Server
	Scheduler  *scheduler.Scheduler
	WorkerPool *worker.Pool
	SSEHub     *sse.Hub

	// CloseStore releases the storage backend (pgx pool or Firestore
	// client), whichever the configuration selected.
	CloseStore func()
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler (stop enqueueing new background jobs)
// 3. Worker pool (drain in-flight reconciliation and market ticks)
// 4. SSE hub (disconnect stream clients once no more events can be produced)
// 5. Storage backend (close connections last so draining jobs can commit)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	// Shutdown server first (stop accepting new requests)
	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.SSEHub != nil {
		components.SSEHub.Stop()
	}

	if components.CloseStore != nil {
		components.CloseStore()
	}

	slog.Info(LogMsgServerStopped)
}
