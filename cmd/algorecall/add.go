package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Shardul37/AlgoRecall/internal/revision"
)

func newAddCommand() *cobra.Command {
	var draft revision.ProblemDraft

	command := &cobra.Command{
		Use:   "add",
		Short: "Track a new problem; the server schedules its first revision",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			revisionStore, client := newStore(cfg)
			defer func() {
				_ = client.Close()
			}()

			if err := revisionStore.AddProblem(cmd.Context(), draft); err != nil {
				return err
			}
			fmt.Printf("Added %q. First revision is scheduled for tomorrow.\n", draft.Name)
			return nil
		},
	}

	command.Flags().StringVar(&draft.Name, "name", "", "problem name (required)")
	command.Flags().StringVar(&draft.Link, "link", "", "problem URL (required)")
	command.Flags().StringVar(&draft.Category, "category", "",
		"one of: "+strings.Join(revision.Categories(), ", "))
	command.Flags().StringVar(&draft.Question, "question", "", "free-text question body")
	command.Flags().StringVar(&draft.FlashcardTitle, "flashcard-title", "", "optional flashcard title")
	command.Flags().StringVar(&draft.FlashcardCode, "flashcard-code", "", "optional flashcard code snippet")

	return command
}
