package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shardul37/AlgoRecall/internal/cli"
)

func newCalendarCommand() *cobra.Command {
	var month, year int

	command := &cobra.Command{
		Use:   "calendar",
		Short: "Show the revision calendar for one month",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if month == 0 {
				month = int(now.Month())
			}
			if year == 0 {
				year = now.Year()
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			revisionStore, client := newStore(cfg)
			defer func() {
				_ = client.Close()
			}()

			if err := revisionStore.FetchCalendar(cmd.Context(), month, year); err != nil {
				return err
			}

			data, residentMonth, residentYear := revisionStore.Calendar()
			cli.NewRenderer(os.Stdout).RenderCalendar(data, residentMonth, residentYear)
			return nil
		},
	}

	command.Flags().IntVar(&month, "month", 0, "month 1-12 (default: current)")
	command.Flags().IntVar(&year, "year", 0, "4-digit year (default: current)")

	return command
}
