package card

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadCards reads and parses a card catalog file
func LoadCards(path string) ([]Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading card catalog: %w", err)
	}

	cards, err := ParseCards(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cards, nil
}

// ParseCards decodes a JSON array of cards, preserving document order.
// Either every card decodes and the catalog is consistent, or an error is
// returned and no cards are.
func ParseCards(data []byte) ([]Card, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error parsing card catalog: %w", err)
	}
	if records == nil {
		return nil, fmt.Errorf("error parsing card catalog: %w", ErrNotArray)
	}

	cards := make([]Card, 0, len(records))
	for i, record := range records {
		var c Card
		if err := json.Unmarshal(record, &c); err != nil {
			return nil, fmt.Errorf("card %s: %w", describeRecord(i, record), err)
		}
		cards = append(cards, c)
	}

	if err := checkCatalog(cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// LoadFaqs reads and parses a ruling list file
func LoadFaqs(path string) ([]Faq, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading faq list: %w", err)
	}

	faqs, err := ParseFaqs(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return faqs, nil
}

// ParseFaqs decodes a JSON array of rulings, preserving document order
func ParseFaqs(data []byte) ([]Faq, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error parsing faq list: %w", err)
	}
	if records == nil {
		return nil, fmt.Errorf("error parsing faq list: %w", ErrNotArray)
	}

	faqs := make([]Faq, 0, len(records))
	for i, record := range records {
		var f Faq
		if err := json.Unmarshal(record, &f); err != nil {
			return nil, fmt.Errorf("faq #%d: %w", i, err)
		}
		faqs = append(faqs, f)
	}
	return faqs, nil
}

// checkCatalog enforces the catalog-wide invariants: ids are non-empty and
// unique, counts are non-negative and errata spans are ordered.
func checkCatalog(cards []Card) error {
	seen := make(map[string]int, len(cards))
	for i, c := range cards {
		if c.ID == "" {
			return fmt.Errorf("card #%d: %w", i, ErrEmptyID)
		}
		if first, ok := seen[c.ID]; ok {
			return fmt.Errorf("card #%d: %w %q (first seen at #%d)", i, ErrDuplicateID, c.ID, first)
		}
		seen[c.ID] = i

		for _, f := range []struct {
			name  string
			value int
		}{
			{"number", c.Number},
			{"quantity", c.Quantity},
			{"limit", c.Limit},
		} {
			if f.value < 0 {
				return fmt.Errorf("card %q: field %q: %w %d", c.ID, f.name, ErrNegative, f.value)
			}
		}

		for _, e := range c.Erratas {
			if e.Start > e.End {
				return fmt.Errorf("card %q: errata on line %d: %w (%d > %d)", c.ID, e.Line, ErrErrataSpan, e.Start, e.End)
			}
		}
	}
	return nil
}

// describeRecord names a record by index and, when it can be recovered, by id
func describeRecord(index int, record json.RawMessage) string {
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(record, &probe); err == nil && probe.ID != "" {
		return fmt.Sprintf("#%d (%q)", index, probe.ID)
	}
	return fmt.Sprintf("#%d", index)
}
