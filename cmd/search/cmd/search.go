package cmd

import (
	"strings"

	"pathfinder-be/internal/pkg/logger"
	"pathfinder-be/internal/repository/memory"
	"pathfinder-be/internal/service"

	"github.com/spf13/cobra"
)

var (
	searchLimit int
	searchQuick bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search streams and exams (supports /type: /cat: /in: filters)",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum results (0 shows all)")
	searchCmd.Flags().BoolVarP(&searchQuick, "quick", "q", false, "live-search mode: 3+ chars, top 5")
}

func runSearch(cmd *cobra.Command, args []string) error {
	store := loadStore(cmd.Context())
	svc := service.NewSearchService(store, memory.NewSearchCacheRepository(0), logger.NewNopLogger())

	query := strings.Join(args, " ")
	run := func() error {
		if searchQuick {
			res, err := svc.QuickSearch(cmd.Context(), query)
			if err != nil {
				return err
			}
			formatSearch(cmd.OutOrStdout(), res)
			return nil
		}
		res, err := svc.Search(cmd.Context(), query, searchLimit)
		if err != nil {
			return err
		}
		formatSearch(cmd.OutOrStdout(), res)
		return nil
	}
	if err := run(); err != nil {
		return err
	}
	formatDegraded(cmd.ErrOrStderr(), store.Degraded())
	return nil
}
