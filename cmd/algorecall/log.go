package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Shardul37/AlgoRecall/internal/cli"
)

func newLogCommand() *cobra.Command {
	var limit int

	command := &cobra.Command{
		Use:   "log",
		Short: "Show recently completed revisions from the local journal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			completionJournal, err := openJournal(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = completionJournal.Close()
			}()

			entries, err := completionJournal.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			counts, err := completionJournal.CountByRating(cmd.Context())
			if err != nil {
				return err
			}

			cli.NewRenderer(os.Stdout).RenderJournal(entries, counts)
			return nil
		},
	}

	command.Flags().IntVar(&limit, "limit", 20, "maximum entries to show")

	return command
}
