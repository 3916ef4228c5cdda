package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/arcanaland/cardscribe/internal/card"
	"github.com/arcanaland/cardscribe/internal/lookup"
)

// maxSuggestionDistance bounds how different a known name may be from an
// unknown one and still be offered as a suggestion
const maxSuggestionDistance = 3

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator audits a loaded catalog. Unlike the literal generator it reports
// every problem it finds instead of stopping at the first.
type Validator struct {
	Cards   []card.Card
	Faqs    []card.Faq
	Results ValidationResults

	ids map[string]bool
}

func NewValidator(cards []card.Card, faqs []card.Faq) *Validator {
	ids := make(map[string]bool, len(cards))
	for _, c := range cards {
		ids[c.ID] = true
	}
	return &Validator{
		Cards:   cards,
		Faqs:    faqs,
		Results: ValidationResults{},
		ids:     ids,
	}
}

func (v *Validator) Validate() ValidationResults {
	for i := range v.Cards {
		c := &v.Cards[i]
		v.validateSet(c)
		v.validateIcons(c)
		v.validateDuplicate(c)
		v.validateErratas(c)
	}
	v.validateFaqs()

	return v.Results
}

// validateSet checks the set against the set table
func (v *Validator) validateSet(c *card.Card) {
	if _, err := lookup.ResolveSet(c.Set); err != nil {
		v.addError(c, "%v%s", err, suggest(c.Set, lookup.Sets()))
	}
}

// validateIcons checks every icon against the icon table
func (v *Validator) validateIcons(c *card.Card) {
	for _, name := range c.Icons {
		if _, err := lookup.ResolveIcon(name); err != nil {
			v.addError(c, "%v%s", err, suggest(name, lookup.Icons()))
		}
	}
}

// validateDuplicate checks that duplicate_id points at another card of the catalog
func (v *Validator) validateDuplicate(c *card.Card) {
	if c.DuplicateID == nil {
		return
	}
	id := *c.DuplicateID
	switch {
	case id == c.ID:
		v.addWarning(c, "duplicate_id refers to the card itself")
	case !v.ids[id]:
		v.addWarning(c, "duplicate_id %q is not in the catalog", id)
	}
}

// validateErratas checks that each errata span falls inside the rules text
func (v *Validator) validateErratas(c *card.Card) {
	if len(c.Erratas) == 0 {
		return
	}
	if c.RulesText == nil {
		v.addWarning(c, "has %d errata(s) but no rules text", len(c.Erratas))
		return
	}

	lines := strings.Split(*c.RulesText, "\n")
	for _, e := range c.Erratas {
		if e.Line < 1 || e.Line > len(lines) {
			v.addWarning(c, "errata line %d is outside the rules text (%d lines)", e.Line, len(lines))
			continue
		}
		length := utf8.RuneCountInString(lines[e.Line-1])
		if e.Start < 0 || e.End > length {
			v.addWarning(c, "errata span %d-%d on line %d exceeds the line length (%d)", e.Start, e.End, e.Line, length)
		}
	}
}

// validateFaqs checks that rulings only mention cards of the catalog
func (v *Validator) validateFaqs() {
	for i, f := range v.Faqs {
		if strings.TrimSpace(f.Text) == "" {
			v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("faq #%d: empty text", i))
		}
		for _, id := range f.CardsMentioned {
			if !v.ids[id] {
				v.Results.Warnings = append(v.Results.Warnings,
					fmt.Sprintf("faq #%d: mentions unknown card %q", i, id))
			}
		}
	}
}

func (v *Validator) addError(c *card.Card, format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("card %q: ", c.ID)+fmt.Sprintf(format, args...))
}

func (v *Validator) addWarning(c *card.Card, format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf("card %q: ", c.ID)+fmt.Sprintf(format, args...))
}

// suggest returns a " (did you mean ...?)" hint naming the closest known
// name, or an empty string when nothing is close enough.
func suggest(name string, known []string) string {
	best, bestDistance := "", maxSuggestionDistance+1
	for _, candidate := range known {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(candidate))
		if d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}
