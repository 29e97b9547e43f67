package cmd

import (
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dataset counters and load warnings",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	store := loadStore(cmd.Context())
	formatStats(cmd.OutOrStdout(), store.GetQuickStats(), store.Warnings())
	formatDegraded(cmd.ErrOrStderr(), store.Degraded())
	return nil
}
