package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGuildCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guild",
		Short: "Switch the game on or off for a guild",
	}

	cmd.AddCommand(
		newGuildToggleCmd(a, "enable", true),
		newGuildToggleCmd(a, "disable", false),
	)

	return cmd
}

func newGuildToggleCmd(a *app, use string, enabled bool) *cobra.Command {
	var guildID string

	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("%s the joke game for a guild", use),
		RunE: a.withStore(func(cmd *cobra.Command, _ []string) error {
			if err := a.repos.Guilds.SetGuildEnabled(cmd.Context(), guildID, enabled); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "guild %s enabled=%t\n", guildID, enabled)
			return nil
		}),
	}
	cmd.Flags().StringVar(&guildID, "guild", "", "Discord guild ID")
	_ = cmd.MarkFlagRequired("guild")

	return cmd
}
