package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Shardul37/AlgoRecall/internal/cli"
)

func newTodayCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show revisions due today, including overdue ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			revisionStore, client := newStore(cfg)
			defer func() {
				_ = client.Close()
			}()

			if err := revisionStore.FetchTodayRevisions(cmd.Context()); err != nil {
				return err
			}

			cli.NewRenderer(os.Stdout).RenderToday(revisionStore.TodayRevisions())
			return nil
		},
	}
}
