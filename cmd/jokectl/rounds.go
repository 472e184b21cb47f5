package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRoundsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rounds",
		Short: "Inspect and end joke rounds",
	}

	cmd.AddCommand(newRoundsClearCmd(a), newRoundsActiveCmd(a))

	return cmd
}

func newRoundsClearCmd(a *app) *cobra.Command {
	var guildID string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Force-end every active round in a guild",
		RunE: a.withStore(func(cmd *cobra.Command, _ []string) error {
			ended, err := a.repos.Sessions.ForceEndAll(cmd.Context(), guildID)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ended %d round(s)\n", ended)
			return nil
		}),
	}
	cmd.Flags().StringVar(&guildID, "guild", "", "Discord guild ID")
	_ = cmd.MarkFlagRequired("guild")

	return cmd
}

func newRoundsActiveCmd(a *app) *cobra.Command {
	var guildID string

	cmd := &cobra.Command{
		Use:   "active",
		Short: "Show the active round in a guild, if any",
		RunE: a.withStore(func(cmd *cobra.Command, _ []string) error {
			session, err := a.repos.Sessions.GetActiveSession(cmd.Context(), guildID)
			if err != nil {
				return err
			}
			if session == nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no active round")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "round %s: joke #%d, %s, started by %s at %s\n",
				session.ID, session.JokeNumber, session.State, session.StartedBy, session.CreatedAt.Format("2006-01-02 15:04:05"))
			return nil
		}),
	}
	cmd.Flags().StringVar(&guildID, "guild", "", "Discord guild ID")
	_ = cmd.MarkFlagRequired("guild")

	return cmd
}
