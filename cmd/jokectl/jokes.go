package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/MishkaBot_Go/internal/joke"
)

const addedByCLI = "jokectl"

func newJokesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jokes",
		Short: "Manage a guild's joke catalogue",
	}

	cmd.AddCommand(
		newJokesImportCmd(a),
		newJokesFetchCmd(a),
		newJokesCountCmd(a),
	)

	return cmd
}

func newJokesImportCmd(a *app) *cobra.Command {
	var guildID string

	cmd := &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import jokes from a YAML file, skipping setups the guild already has",
		Args:  cobra.ExactArgs(1),
		RunE: a.withStore(func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			svc := joke.NewService(a.repos.Jokes, nil, nil)
			result, err := svc.ImportFile(cmd.Context(), guildID, addedByCLI, f)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d of %d jokes (%d skipped)\n", result.Imported, result.Fetched, result.Skipped)
			return nil
		}),
	}
	cmd.Flags().StringVar(&guildID, "guild", "", "Discord guild ID")
	_ = cmd.MarkFlagRequired("guild")

	return cmd
}

func newJokesFetchCmd(a *app) *cobra.Command {
	var guildID string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Import a batch of two-part jokes from JokeAPI",
		RunE: a.withStore(func(cmd *cobra.Command, _ []string) error {
			svc := joke.NewService(a.repos.Jokes, joke.NewAPIClient(a.cfg.JokeAPIURL), nil)
			result, err := svc.ImportFromAPI(cmd.Context(), guildID, addedByCLI)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d of %d jokes (%d skipped)\n", result.Imported, result.Fetched, result.Skipped)
			return nil
		}),
	}
	cmd.Flags().StringVar(&guildID, "guild", "", "Discord guild ID")
	_ = cmd.MarkFlagRequired("guild")

	return cmd
}

func newJokesCountCmd(a *app) *cobra.Command {
	var guildID string

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Show how many jokes a guild has",
		RunE: a.withStore(func(cmd *cobra.Command, _ []string) error {
			n, err := a.repos.Jokes.CountJokes(cmd.Context(), guildID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\n", n)
			return nil
		}),
	}
	cmd.Flags().StringVar(&guildID, "guild", "", "Discord guild ID")
	_ = cmd.MarkFlagRequired("guild")

	return cmd
}
