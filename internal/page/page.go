// Package page renders one static HTML page per card from a template with
// [[image]], [[title]], [[description]] and [[id]] placeholders.
package page

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcanaland/cardscribe/internal/card"
)

const (
	ImageToken       = "[[image]]"
	TitleToken       = "[[title]]"
	DescriptionToken = "[[description]]"
	IDToken          = "[[id]]"
)

// Description summarises a card for link previews: set and number, then the
// type with its traits, then the rules text. When there is rules text the
// line breaks are flattened to bullets.
func Description(c *card.Card) string {
	description := fmt.Sprintf("%s #%d\n%s", c.Set, c.Number, c.CardType)
	if len(c.Traits) > 0 {
		description += " — " + strings.Join(c.Traits, ", ")
	}
	if c.RulesText != nil {
		description += "\n" + *c.RulesText
		description = strings.ReplaceAll(description, "\n", " • ")
	}
	return description
}

// Render substitutes the card into the template
func Render(template string, c *card.Card) string {
	return strings.NewReplacer(
		ImageToken, c.PreviewImageURL,
		TitleToken, c.Name,
		DescriptionToken, Description(c),
		IDToken, c.ID,
	).Replace(template)
}

// WriteAll renders every card to outputDir/<id><ext>, overwriting existing
// pages, and returns the written paths in catalog order.
func WriteAll(template string, cards []card.Card, outputDir, ext string) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating output directory: %w", err)
	}

	paths := make([]string, 0, len(cards))
	for i := range cards {
		c := &cards[i]
		path := filepath.Join(outputDir, c.ID+ext)
		if err := os.WriteFile(path, []byte(Render(template, c)), 0644); err != nil {
			return paths, fmt.Errorf("error writing page for card %q: %w", c.ID, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}
