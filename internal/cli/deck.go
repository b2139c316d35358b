package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Shardul37/AlgoRecall/internal/revision"
)

// DeckCard is one exported flashcard.
type DeckCard struct {
	Title    string `yaml:"title"`
	Category string `yaml:"category"`
	Link     string `yaml:"link,omitempty"`
	Code     string `yaml:"code,omitempty"`
}

// Deck is an exported set of flashcards built from revisions.
type Deck struct {
	ExportedAt revision.Date `yaml:"exported_at"`
	Cards      []DeckCard    `yaml:"cards"`
}

// BuildDeck collects the revisions that carry flashcard content into a deck.
// Revisions without a flashcard are skipped.
func BuildDeck(revisions []revision.Revision, now time.Time) Deck {
	deck := Deck{ExportedAt: revision.NewDate(now)}
	for _, rev := range revisions {
		if rev.FlashcardTitle == "" && rev.FlashcardCode == "" {
			continue
		}
		title := rev.FlashcardTitle
		if title == "" {
			title = rev.ProblemName
		}
		deck.Cards = append(deck.Cards, DeckCard{
			Title:    title,
			Category: rev.Category,
			Link:     rev.Link,
			Code:     rev.FlashcardCode,
		})
	}
	return deck
}

// WriteDeckYAML writes the deck to dir and returns the file path.
func WriteDeckYAML(deck Deck, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}

	path := filepath.Join(dir, "deck-"+deck.ExportedAt.Format("2006-01-02")+".yml")
	contents, err := yaml.Marshal(deck)
	if err != nil {
		return "", fmt.Errorf("yaml.Marshal() > %w", err)
	}
	if err := os.WriteFile(path, contents, 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return path, nil
}

// WriteDeckMarkdown writes the deck as a markdown file suitable for PDF
// rendering and returns the file path.
func WriteDeckMarkdown(deck Deck, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}

	var builder strings.Builder
	builder.WriteString("# Flashcards " + deck.ExportedAt.Format("2006-01-02") + "\n")
	for _, card := range deck.Cards {
		builder.WriteString("\n## " + card.Title + "\n\n")
		builder.WriteString("Category: " + card.Category + "\n")
		if card.Link != "" {
			builder.WriteString("\n" + card.Link + "\n")
		}
		if card.Code != "" {
			builder.WriteString("\n```\n" + card.Code + "\n```\n")
		}
	}

	path := filepath.Join(dir, "deck-"+deck.ExportedAt.Format("2006-01-02")+".md")
	if err := os.WriteFile(path, []byte(builder.String()), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return path, nil
}
