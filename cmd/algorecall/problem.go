package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shardul37/AlgoRecall/internal/api"
	"github.com/Shardul37/AlgoRecall/internal/cli"
)

// The detail view bypasses the store: it is display-only, fetched fresh each
// time and never merged into any projection.
func newProblemCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "problem <id>",
		Short: "Show one problem with its full revision history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			problemID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid problem id %q: %w", args[0], err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client := api.NewHTTPClient(
				cfg.Server.BaseURL,
				time.Duration(cfg.Server.TimeoutSeconds)*time.Second,
				cfg.Server.RetryAttempts,
			)
			defer func() {
				_ = client.Close()
			}()

			detail, err := client.Problem(cmd.Context(), problemID)
			if err != nil {
				return err
			}
			cli.NewRenderer(os.Stdout).RenderProblemDetail(detail)
			return nil
		},
	}
}
