package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/cardscribe/internal/card"
	"github.com/arcanaland/cardscribe/internal/validator"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [cards.json] [faqs.json]",
	Short: "Check a card catalog without generating anything",
	Long: `Validate loads the card catalog, and optionally the ruling list, and reports
every unknown set or icon name as an error. Dangling references between cards
and rulings, and errata spans that fall outside the rules text, are reported
as warnings.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := card.LoadCards(args[0])
		if err != nil {
			return err
		}

		var faqs []card.Faq
		if len(args) == 2 {
			faqs, err = card.LoadFaqs(args[1])
			if err != nil {
				return err
			}
		}

		// Create validator and run validation
		results := validator.NewValidator(cards, faqs).Validate()

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("%s Catalog '%s' is valid (%d cards, %d faqs).\n",
				colorize.GreenString("✅"), args[0], len(cards), len(faqs))
		} else {
			fmt.Printf("%s Catalog '%s' has %d validation errors:\n",
				colorize.RedString("❌"), args[0], len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\n" + colorize.YellowString("Warnings:"))
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		if len(results.Errors) > 0 {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}
