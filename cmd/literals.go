package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/cardscribe/internal/card"
	"github.com/arcanaland/cardscribe/internal/config"
	"github.com/arcanaland/cardscribe/internal/emit"
	"github.com/arcanaland/cardscribe/internal/output"
)

// literalsCmd represents the literals command
var literalsCmd = &cobra.Command{
	Use:   "literals [cards.json] [faqs.json] [Cards.elm] [Faqs.elm]",
	Short: "Generate the Elm modules holding every card and ruling",
	Long: `Literals reads the card catalog and the ruling list and writes two Elm
modules exposing them as typed lists.

Set and icon names are checked against the known vocabularies. An unknown
name stops the run before any file is written.

Example:
  cardscribe literals data/cards.json data/faqs.json generated/Cards.elm generated/Faqs.elm`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLiterals(args[0], args[1], args[2], args[3])
	},
}

func runLiterals(cardsPath, faqsPath, cardsOut, faqsOut string) error {
	cards, err := card.LoadCards(cardsPath)
	if err != nil {
		return err
	}

	faqs, err := card.LoadFaqs(faqsPath)
	if err != nil {
		return err
	}
	logger.Debug("Loaded catalog", zap.Int("cards", len(cards)), zap.Int("faqs", len(faqs)))

	// Both modules are rendered before anything is written
	cardsSource, err := emit.Cards(cards, cardsHeader(cfg))
	if err != nil {
		return fmt.Errorf("error generating %s: %w", cardsOut, err)
	}
	faqsSource := emit.Faqs(faqs, faqsHeader(cfg))

	if err := output.WriteFiles([]output.File{
		{Path: cardsOut, Content: cardsSource},
		{Path: faqsOut, Content: faqsSource},
	}); err != nil {
		return err
	}

	logger.Info("Generated literals",
		zap.String("cards", cardsOut),
		zap.String("faqs", faqsOut))

	fmt.Printf("%s %s (%d cards)\n", colorize.GreenString("✓"), cardsOut, len(cards))
	fmt.Printf("%s %s (%d faqs)\n", colorize.GreenString("✓"), faqsOut, len(faqs))
	return nil
}

func cardsHeader(c *config.Config) emit.Header {
	h := emit.CardsHeader()
	h.Module = c.Literals.CardsModule
	h.Symbol = c.Literals.CardsSymbol
	return h
}

func faqsHeader(c *config.Config) emit.Header {
	h := emit.FaqsHeader()
	h.Module = c.Literals.FaqsModule
	h.Symbol = c.Literals.FaqsSymbol
	return h
}
