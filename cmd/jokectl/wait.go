package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newWaitCmd(a *app) *cobra.Command {
	var (
		retries  int
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "wait-for-db",
		Short: "Wait for the store to accept connections (with retries)",
		RunE: a.withStore(func(cmd *cobra.Command, _ []string) error {
			var err error
			for attempt := 1; attempt <= retries; attempt++ {
				if err = a.repos.Ping(cmd.Context()); err == nil {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "store is ready")
					return nil
				}
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "store not ready (%d/%d): %v\n", attempt, retries, err)

				select {
				case <-cmd.Context().Done():
					return cmd.Context().Err()
				case <-time.After(interval):
				}
			}
			return fmt.Errorf("store not ready after %d attempts: %w", retries, err)
		}),
	}
	cmd.Flags().IntVar(&retries, "retries", 30, "Number of connection attempts")
	cmd.Flags().DurationVar(&interval, "interval", 2*time.Second, "Delay between attempts")

	return cmd
}
