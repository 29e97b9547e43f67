package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var streamCmd = &cobra.Command{
	Use:   "stream <id>",
	Short: "Show career recommendations for a stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runStream,
}

func runStream(cmd *cobra.Command, args []string) error {
	store := loadStore(cmd.Context())
	rec, ok := store.GetCareerRecommendations(args[0])
	if !ok {
		return fmt.Errorf("stream %q not found", args[0])
	}
	formatRecommendations(cmd.OutOrStdout(), rec)
	return nil
}
