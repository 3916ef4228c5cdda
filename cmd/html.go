package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/cardscribe/internal/card"
	"github.com/arcanaland/cardscribe/internal/page"
)

// htmlCmd represents the html command
var htmlCmd = &cobra.Command{
	Use:   "html [template] [cards.json] [output_dir]",
	Short: "Render one HTML preview page per card",
	Long: `Html substitutes every card of the catalog into a page template and writes
the result to output_dir/<id>.html, replacing any existing page.

The template may use the [[image]], [[title]], [[description]] and [[id]]
placeholders.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		template, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading template: %w", err)
		}

		cards, err := card.LoadCards(args[1])
		if err != nil {
			return err
		}

		paths, err := page.WriteAll(string(template), cards, args[2], cfg.HTML.Extension)
		for _, path := range paths {
			fmt.Println(path)
		}
		if err != nil {
			return err
		}

		logger.Debug("Rendered pages", zap.String("dir", args[2]), zap.Int("pages", len(paths)))
		fmt.Printf("%d cards\n", len(paths))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(htmlCmd)
}
