package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Shardul37/AlgoRecall/internal/cli"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show streak, totals and the category breakdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			revisionStore, client := newStore(cfg)
			defer func() {
				_ = client.Close()
			}()

			if err := revisionStore.FetchAnalytics(cmd.Context()); err != nil {
				return err
			}

			analytics := revisionStore.Analytics()
			if analytics == nil {
				return nil
			}
			cli.NewRenderer(os.Stdout).RenderAnalytics(*analytics)
			return nil
		},
	}
}
