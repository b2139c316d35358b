package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Shardul37/AlgoRecall/internal/cli"
	"github.com/Shardul37/AlgoRecall/internal/pdf"
)

func newExportCommand() *cobra.Command {
	var toPDF bool

	command := &cobra.Command{
		Use:   "export",
		Short: "Export today's flashcards as a YAML deck, optionally as PDF",
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

			deck := cli.BuildDeck(revisionStore.TodayRevisions(), time.Now())
			if len(deck.Cards) == 0 {
				fmt.Println("No flashcards among today's revisions.")
				return nil
			}

			yamlPath, err := cli.WriteDeckYAML(deck, cfg.Exports.DeckDirectory)
			if err != nil {
				return err
			}
			fmt.Printf("Wrote %d card(s) to %s\n", len(deck.Cards), yamlPath)

			if !toPDF {
				return nil
			}
			markdownPath, err := cli.WriteDeckMarkdown(deck, cfg.Exports.DeckDirectory)
			if err != nil {
				return err
			}
			pdfPath, err := pdf.RenderDeck(markdownPath)
			if err != nil {
				return err
			}
			fmt.Printf("Rendered %s\n", pdfPath)
			return nil
		},
	}

	command.Flags().BoolVar(&toPDF, "pdf", false, "also render the deck to PDF")

	return command
}
