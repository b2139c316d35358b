package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shardul37/AlgoRecall/internal/revision"
)

func newCompleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <revision-id> <rating>",
		Short: "Mark a revision as done with a rating (1 forgot, 2 struggled, 3 mastered)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			revisionID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid revision id %q: %w", args[0], err)
			}
			ratingValue, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid rating %q: %w", args[1], err)
			}
			rating := revision.Rating(ratingValue)
			if !rating.Valid() {
				return fmt.Errorf("invalid rating %d: must be 1, 2 or 3", ratingValue)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			revisionStore, client := newStore(cfg)
			defer func() {
				_ = client.Close()
			}()

			// Fetch first so the journal entry can carry problem fields
			if err := revisionStore.FetchTodayRevisions(cmd.Context()); err != nil {
				return err
			}
			var completed revision.Revision
			for _, rev := range revisionStore.TodayRevisions() {
				if rev.ID == revisionID {
					completed = rev
					break
				}
			}

			if err := revisionStore.CompleteRevision(cmd.Context(), revisionID, rating); err != nil {
				return err
			}
			fmt.Printf("Revision %d completed: %s\n", revisionID, rating)

			if completed.ID == revisionID {
				completionJournal, err := openJournal(cfg)
				if err != nil {
					slog.Default().Warn("completion not journaled", "error", err)
					return nil
				}
				defer func() {
					_ = completionJournal.Close()
				}()
				if err := completionJournal.Record(cmd.Context(), completed, rating, time.Now()); err != nil {
					slog.Default().Warn("completion not journaled", "error", err)
				}
			}
			return nil
		},
	}
}
