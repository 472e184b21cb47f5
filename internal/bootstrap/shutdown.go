package bootstrap

import (
	"context"
	"log/slog"
)

type stopper interface {
	Stop(ctx context.Context) error
}

type shutdownable interface {
	Shutdown(ctx context.Context) error
}

type closer interface {
	Close() error
}

type waiter interface {
	Stop()
}

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server    stopper
	Scheduler waiter
	Game      shutdownable
	Bot       closer
	Workers   waiter
	Store     interface{ Close() }
}

// GracefulShutdown stops the application in dependency order:
// 1. HTTP server (stop accepting admin requests)
// 2. Scheduler and game (no new sweeps, cancel running rounds)
// 3. Discord session (rounds no longer need it)
// 4. Worker pool and store
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedStop, "error", err)
		}
	}

	if c.Scheduler != nil {
		c.Scheduler.Stop()
		slog.Info(ComponentNameScheduler + LogMsgComponentStopped)
	}

	if c.Game != nil {
		if err := c.Game.Shutdown(ctx); err != nil {
			slog.Error(ComponentNameGame+LogMsgComponentShutdownFailed, "error", err)
		}
	}

	if c.Bot != nil {
		if err := c.Bot.Close(); err != nil {
			slog.Error(ComponentNameBot+LogMsgComponentShutdownFailed, "error", err)
		}
	}

	if c.Workers != nil {
		c.Workers.Stop()
		slog.Info(ComponentNameWorkers + LogMsgComponentStopped)
	}

	if c.Store != nil {
		c.Store.Close()
		slog.Info(ComponentNameStore + LogMsgComponentStopped)
	}

	slog.Info(LogMsgServerStopped)
}
