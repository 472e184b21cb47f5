package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/MishkaBot_Go/internal/bootstrap"
	"github.com/osse101/MishkaBot_Go/internal/config"
	"github.com/osse101/MishkaBot_Go/internal/discord"
	"github.com/osse101/MishkaBot_Go/internal/game"
	"github.com/osse101/MishkaBot_Go/internal/guild"
	"github.com/osse101/MishkaBot_Go/internal/joke"
	"github.com/osse101/MishkaBot_Go/internal/scheduler"
	"github.com/osse101/MishkaBot_Go/internal/server"
	"github.com/osse101/MishkaBot_Go/internal/worker"
)

const (
	serviceName     = "mishkabot"
	shutdownTimeout = 30 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}
	if err := cfg.RequireDiscord(); err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg, serviceName)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if err := run(cfg); err != nil {
		slog.Error("MishkaBot stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	eventBus, err := bootstrap.InitializeEventSystem()
	if err != nil {
		return err
	}

	repos, err := bootstrap.InitializeRepositories(ctx, cfg, true)
	if err != nil {
		return err
	}

	guildService := guild.NewService(repos.Guilds, cfg.Discord.OwnerID, cfg.GuildCacheTTL)
	jokeService := joke.NewService(repos.Jokes, joke.NewAPIClient(cfg.JokeAPIURL), eventBus)

	bot, err := discord.New(discord.Config{
		Token: cfg.Discord.Token,
		AppID: cfg.Discord.AppID,
	})
	if err != nil {
		repos.Close()
		return err
	}

	gameService := game.NewService(repos.Sessions, jokeService, bot.Gateway, bot.Gateway, guildService, eventBus, game.Config{
		GuessTimeout:      cfg.Game.GuessTimeout,
		VoteDelay:         cfg.Game.VoteDelay,
		VoteTimeout:       cfg.Game.VoteTimeout,
		VoteWithoutWinner: cfg.Game.VoteWithoutWinner,
	})

	bot.Services = &discord.Services{
		Rounds: gameService,
		Jokes:  jokeService,
		Guilds: guildService,
	}
	registerCommands(bot, getCommandFactories())

	if err := bot.Start(); err != nil {
		repos.Close()
		return err
	}
	if err := bot.RegisterCommands(cfg.Discord.ForceCommandUpdate); err != nil {
		// Commands registered on an earlier run keep working
		slog.Error("Failed to register commands", "error", err)
	}

	pool := worker.NewPool(worker.DefaultWorkerCount, worker.DefaultQueueSize, cfg.SweepInterval)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(cfg.SweepInterval, worker.NewSweepJob(gameService, cfg.Game.MaxRoundAge), true)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        cfg.Version,
	}, server.Dependencies{
		Store:  repos,
		Rounds: gameService,
		Jokes:  jokeService,
	})

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Admin API listening", "port", cfg.Port)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	var runErr error
	select {
	case sig := <-stop:
		slog.Info("Received signal", "signal", sig.String())
	case runErr = <-serverErr:
		slog.Error("Admin API failed", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: sched,
		Game:      gameService,
		Bot:       bot,
		Workers:   pool,
		Store:     repos,
	})
	return runErr
}

// getCommandFactories returns every slash command the bot serves.
// This provides a single place to see and manage all registered commands.
func getCommandFactories() []discord.CommandFactory {
	return []discord.CommandFactory{
		// Core commands
		discord.PingCommand,
		discord.JokeCommand,

		// Catalogue commands (joke admins)
		discord.JokeAddCommand,
		discord.JokeDeleteCommand,
		discord.JokeImportCommand,
		discord.JokeClearCommand,

		// Guild settings
		discord.JokeEnableCommand,
		discord.JokeDisableCommand,
		discord.JokeAdminAddCommand,
		discord.JokeAdminRemoveCommand,
	}
}

// registerCommands registers all provided command factories with the bot's registry
func registerCommands(bot *discord.Bot, factories []discord.CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}
