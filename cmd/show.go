package cmd

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/cardscribe/internal/card"
	"github.com/arcanaland/cardscribe/internal/emit"
)

var showCmd = &cobra.Command{
	Use:   "show [cards.json] [card_id]",
	Short: "Display information about a specific card",
	Long: `Show prints a card of the catalog in the terminal, with its rules text
wrapped to the terminal width.

With --literal, the Elm record generated for the card is printed as well,
exactly as it appears in the Cards module.

Examples:
  cardscribe show data/cards.json 01001
  cardscribe show --literal data/cards.json 01001`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cards, err := card.LoadCards(args[0])
		if err != nil {
			return err
		}

		c, err := findCard(cards, args[1])
		if err != nil {
			return err
		}

		displayCard(c)

		if literal, _ := cmd.Flags().GetBool("literal"); literal {
			record, err := emit.Card(c)
			if err != nil {
				return err
			}
			fmt.Println(colorize.CyanString("Literal:"))
			fmt.Println(record)
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolP("literal", "l", false, "also print the generated Elm record")
}

// findCard looks a card up by id
func findCard(cards []card.Card, id string) (*card.Card, error) {
	for i := range cards {
		if cards[i].ID == id {
			return &cards[i], nil
		}
	}
	return nil, fmt.Errorf("card not found: %s", id)
}

// houseColors are the swatch colours printed next to house names
var houseColors = map[string]string{
	"Baratheon":   "#e3b505",
	"Greyjoy":     "#1b6f7a",
	"Lannister":   "#b3181e",
	"Martell":     "#e56b1f",
	"NightsWatch": "#4a4a4a",
	"Stark":       "#a8a9ad",
	"Targaryen":   "#7a1212",
	"Tyrell":      "#3f8f3f",
	"Neutral":     "#8c7b5a",
}

// houseColor blends the colours of every known house in Lab space, so a
// card shared by several houses gets one colour between theirs.
func houseColor(houses []string) (colorful.Color, bool) {
	var blended colorful.Color
	n := 0
	for _, house := range houses {
		hex, ok := houseColors[house]
		if !ok {
			continue
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			continue
		}
		n++
		if n == 1 {
			blended = c
		} else {
			blended = blended.BlendLab(c, 1/float64(n))
		}
	}
	return blended, n > 0
}

// swatch paints s in c with a 24-bit ANSI sequence, or leaves it plain when
// colours are off
func swatch(c colorful.Color, s string) string {
	if colorize.NoColor {
		return s
	}
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, s)
}

// houseLabel prefixes a house name with its coloured swatch
func houseLabel(house string) string {
	c, ok := houseColor([]string{house})
	if !ok || colorize.NoColor {
		return house
	}
	return swatch(c, "■") + " " + house
}

func houseLabels(houses []string) string {
	if len(houses) == 0 {
		return "-"
	}
	labels := make([]string, len(houses))
	for i, h := range houses {
		labels[i] = houseLabel(h)
	}
	return strings.Join(labels, ", ")
}

// optionalInt formats an optional numeric attribute, or "" when absent
func optionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(*v)
}

// wrapText wraps text to a specified width, counted in runes
func wrapText(text string, width int) []string {
	// Ensure width is reasonable
	if width < 10 {
		width = 40
	}

	var result []string
	var currentLine string
	currentWidth := 0
	words := strings.Fields(text)

	if len(words) == 0 {
		return []string{""}
	}

	for _, word := range words {
		wordWidth := utf8.RuneCountInString(word)
		if currentWidth == 0 {
			// First word on the line
			currentLine, currentWidth = word, wordWidth
		} else if currentWidth+1+wordWidth <= width {
			// Word fits on the current line
			currentLine += " " + word
			currentWidth += 1 + wordWidth
		} else {
			// Start a new line
			result = append(result, currentLine)
			currentLine, currentWidth = word, wordWidth
		}
	}

	// Add the last line
	if currentLine != "" {
		result = append(result, currentLine)
	}

	return result
}

// displayCard prints the card information
func displayCard(c *card.Card) {
	// Get terminal width
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80 // Default if we can't get terminal width
	}
	textWidth := width - 4

	label := func(name string) string {
		return colorize.CyanString("%-12s", name+":")
	}

	name := c.Name
	if c.Unique {
		name = "◆ " + name
	}
	if houses, ok := houseColor(c.House); ok {
		name = swatch(houses, name)
	} else {
		name = colorize.HiWhiteString("%s", name)
	}

	fmt.Println()
	fmt.Println("  " + label("Card") + name)
	fmt.Println("  " + label("ID") + colorize.HiWhiteString("%s", c.ID))
	fmt.Println("  " + label("Set") + colorize.HiWhiteString("%s #%d", c.Set, c.Number))
	fmt.Println("  " + label("Type") + colorize.HiWhiteString("%s", c.CardType))
	fmt.Println("  " + label("House") + houseLabels(c.House))

	if len(c.Traits) > 0 {
		fmt.Println("  " + label("Traits") + colorize.HiWhiteString("%s", strings.Join(c.Traits, ". ")+"."))
	}
	if len(c.Icons) > 0 {
		fmt.Println("  " + label("Icons") + colorize.HiWhiteString("%s", strings.Join(c.Icons, ", ")))
	}

	for _, stat := range []struct {
		name  string
		value *int
	}{
		{"Cost", c.Cost},
		{"Strength", c.Strength},
		{"Income", c.Income},
		{"Initiative", c.Initiative},
		{"Claim", c.Claim},
		{"Influence", c.Influence},
	} {
		if v := optionalInt(stat.value); v != "" {
			fmt.Println("  " + label(stat.name) + colorize.HiWhiteString("%s", v))
		}
	}

	if c.RulesText != nil {
		fmt.Println()
		for _, paragraph := range strings.Split(*c.RulesText, "\n") {
			for _, line := range wrapText(paragraph, textWidth) {
				fmt.Println("  " + line)
			}
		}
	}

	if c.FlavorText != nil {
		fmt.Println()
		for _, line := range wrapText(*c.FlavorText, textWidth) {
			fmt.Println("  " + colorize.New(colorize.Italic).Sprint(line))
		}
	}

	fmt.Println()
	fmt.Println("  " + label("Illustrator") + c.Illustrator)
	fmt.Println()
}
