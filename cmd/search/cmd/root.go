package cmd

import (
	"context"
	"time"

	"pathfinder-be/internal/pkg/logger"
	"pathfinder-be/pkg/datastore"

	"github.com/spf13/cobra"
)

var (
	dataSource   string
	fetchTimeout time.Duration
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:           "pathfinder",
	Short:         "Query the career, stream and exam datasets from the terminal",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataSource, "data", "d", "./data", "dataset directory or http(s) base URL")
	rootCmd.PersistentFlags().DurationVar(&fetchTimeout, "timeout", 10*time.Second, "per-file fetch timeout (0 disables)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log dataset loading")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(streamCmd)
	rootCmd.AddCommand(statsCmd)
}

// loadStore fetches all datasets and blocks until the store is ready.
func loadStore(ctx context.Context) *datastore.Store {
	store := datastore.NewStore(datastore.NewFetcher(dataSource), fetchTimeout, logger.NewConsoleLogger(verbose))
	store.LoadAll(ctx)
	return store
}
