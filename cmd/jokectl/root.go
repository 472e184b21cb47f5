package main

import (
	"github.com/spf13/cobra"

	"github.com/osse101/MishkaBot_Go/internal/bootstrap"
	"github.com/osse101/MishkaBot_Go/internal/config"
	"github.com/osse101/MishkaBot_Go/internal/logger"
)

// app holds what every subcommand shares once the store is open
type app struct {
	cfg   *config.Config
	repos *bootstrap.Repositories
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:          "jokectl",
		Short:        "Administer the MishkaBot joke store",
		Long:         "jokectl runs store migrations, imports joke files and force-ends stuck rounds without going through Discord.",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newMigrateCmd(a),
		newJokesCmd(a),
		newRoundsCmd(a),
		newGuildCmd(a),
		newWaitCmd(a),
	)

	return rootCmd
}

// withStore opens the store for the duration of a single command
func (a *app) withStore(run func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.open(cmd); err != nil {
			return err
		}
		defer a.close()
		return run(cmd, args)
	}
}

// open loads configuration and connects to the store without migrating it
func (a *app) open(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.InitLoggerWithWriter(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, "jokectl", cfg.Version, cfg.Environment, false), cmd.ErrOrStderr())

	repos, err := bootstrap.InitializeRepositories(cmd.Context(), cfg, false)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.repos = repos
	return nil
}

func (a *app) close() {
	if a.repos != nil {
		a.repos.Close()
		a.repos = nil
	}
}
