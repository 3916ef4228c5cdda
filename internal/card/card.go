package card

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrNotArray     = errors.New("document is not a JSON array")
	ErrMissingField = errors.New("missing field")
	ErrEmptyID      = errors.New("empty card id")
	ErrDuplicateID  = errors.New("duplicate card id")
	ErrNegative     = errors.New("negative value")
	ErrErrataSpan   = errors.New("errata start is after end")
	ErrNullElement  = errors.New("null element")
)

// Card represents one entry of the card catalog
type Card struct {
	ID              string
	FullImageURL    string
	PreviewImageURL string
	Name            string
	CardType        string // Character, Location, Attachment, Event, Plot, Agenda, Title
	Set             string // Display name, resolved through the set table
	Number          int    // Position within the set
	Quantity        int
	Limit           int
	LegalityJoust   string
	LegalityMelee   string
	Illustrator     string
	House           []string
	LegalInHouses   []string
	Unique          bool
	RulesText       *string
	FlavorText      *string
	Erratas         []Errata
	DuplicateID     *string

	// Character
	Cost     *int
	Icons    []string
	Crest    []string
	Traits   []string
	Strength *int

	// Plot
	Income     *int
	Initiative *int
	Claim      *int

	// Others
	Influence *int
}

// Errata marks a span of one line of a card's rules text
type Errata struct {
	Line  int // 1-based
	Start int
	End   int
}

// Faq represents a ruling and the cards it talks about
type Faq struct {
	CardsMentioned []string
	Text           string
}

type rawCard struct {
	ID              *string    `json:"id"`
	FullImageURL    *string    `json:"full_image_url"`
	PreviewImageURL *string    `json:"preview_image_url"`
	Name            *string    `json:"name"`
	CardType        *string    `json:"card_type"`
	Set             *string    `json:"set"`
	Number          *int       `json:"number"`
	Quantity        *int       `json:"quantity"`
	Limit           *int       `json:"limit"`
	LegalityJoust   *string    `json:"legality_joust"`
	LegalityMelee   *string    `json:"legality_melee"`
	Illustrator     *string    `json:"illustrator"`
	House           *[]*string `json:"house"`
	LegalInHouses   *[]*string `json:"legal_in_houses"`
	Unique          *bool      `json:"unique"`
	RulesText       *string    `json:"rules_text"`
	FlavorText      *string    `json:"flavor_text"`
	Erratas         *[]Errata  `json:"erratas"`
	DuplicateID     *string    `json:"duplicate_id"`
	Cost            *int       `json:"cost"`
	Icons           *[]*string `json:"icons"`
	Crest           *[]*string `json:"crest"`
	Traits          *[]*string `json:"traits"`
	Strength        *int       `json:"strength"`
	Income          *int       `json:"income"`
	Initiative      *int       `json:"initiative"`
	Claim           *int       `json:"claim"`
	Influence       *int       `json:"influence"`
}

// UnmarshalJSON decodes a card, rejecting records that lack a required field.
// A null required field counts as missing.
func (c *Card) UnmarshalJSON(data []byte) error {
	var raw rawCard
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if err := requireFields([]presence{
		{"id", raw.ID != nil},
		{"full_image_url", raw.FullImageURL != nil},
		{"preview_image_url", raw.PreviewImageURL != nil},
		{"name", raw.Name != nil},
		{"card_type", raw.CardType != nil},
		{"set", raw.Set != nil},
		{"number", raw.Number != nil},
		{"quantity", raw.Quantity != nil},
		{"limit", raw.Limit != nil},
		{"legality_joust", raw.LegalityJoust != nil},
		{"legality_melee", raw.LegalityMelee != nil},
		{"illustrator", raw.Illustrator != nil},
		{"house", raw.House != nil},
		{"legal_in_houses", raw.LegalInHouses != nil},
		{"unique", raw.Unique != nil},
		{"erratas", raw.Erratas != nil},
		{"icons", raw.Icons != nil},
		{"crest", raw.Crest != nil},
		{"traits", raw.Traits != nil},
	}); err != nil {
		return err
	}

	lists, err := stringLists([]stringList{
		{"house", *raw.House},
		{"legal_in_houses", *raw.LegalInHouses},
		{"icons", *raw.Icons},
		{"crest", *raw.Crest},
		{"traits", *raw.Traits},
	})
	if err != nil {
		return err
	}

	*c = Card{
		ID:              *raw.ID,
		FullImageURL:    *raw.FullImageURL,
		PreviewImageURL: *raw.PreviewImageURL,
		Name:            *raw.Name,
		CardType:        *raw.CardType,
		Set:             *raw.Set,
		Number:          *raw.Number,
		Quantity:        *raw.Quantity,
		Limit:           *raw.Limit,
		LegalityJoust:   *raw.LegalityJoust,
		LegalityMelee:   *raw.LegalityMelee,
		Illustrator:     *raw.Illustrator,
		House:           lists[0],
		LegalInHouses:   lists[1],
		Unique:          *raw.Unique,
		RulesText:       raw.RulesText,
		FlavorText:      raw.FlavorText,
		Erratas:         *raw.Erratas,
		DuplicateID:     raw.DuplicateID,
		Cost:            raw.Cost,
		Icons:           lists[2],
		Crest:           lists[3],
		Traits:          lists[4],
		Strength:        raw.Strength,
		Income:          raw.Income,
		Initiative:      raw.Initiative,
		Claim:           raw.Claim,
		Influence:       raw.Influence,
	}
	return nil
}

// UnmarshalJSON decodes an errata, requiring line, start and end.
func (e *Errata) UnmarshalJSON(data []byte) error {
	var raw struct {
		Line  *int `json:"line"`
		Start *int `json:"start"`
		End   *int `json:"end"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := requireFields([]presence{
		{"line", raw.Line != nil},
		{"start", raw.Start != nil},
		{"end", raw.End != nil},
	}); err != nil {
		return fmt.Errorf("errata: %w", err)
	}
	*e = Errata{Line: *raw.Line, Start: *raw.Start, End: *raw.End}
	return nil
}

// UnmarshalJSON decodes a faq, requiring both of its fields.
func (f *Faq) UnmarshalJSON(data []byte) error {
	var raw struct {
		CardsMentioned *[]*string `json:"cards_mentioned"`
		Text           *string    `json:"text"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if err := requireFields([]presence{
		{"cards_mentioned", raw.CardsMentioned != nil},
		{"text", raw.Text != nil},
	}); err != nil {
		return err
	}
	mentioned, err := stringLists([]stringList{{"cards_mentioned", *raw.CardsMentioned}})
	if err != nil {
		return err
	}
	*f = Faq{CardsMentioned: mentioned[0], Text: *raw.Text}
	return nil
}

type presence struct {
	name string
	ok   bool
}

// requireFields reports the first field that was absent from the document.
func requireFields(fields []presence) error {
	for _, f := range fields {
		if !f.ok {
			return fmt.Errorf("%w %q", ErrMissingField, f.name)
		}
	}
	return nil
}

// stringList is a decoded string array whose elements may still be null
type stringList struct {
	name   string
	values []*string
}

// stringLists flattens each list, failing on the first null element.
func stringLists(lists []stringList) ([][]string, error) {
	out := make([][]string, len(lists))
	for i, l := range lists {
		values := make([]string, len(l.values))
		for j, v := range l.values {
			if v == nil {
				return nil, fmt.Errorf("field %q: %w at index %d", l.name, ErrNullElement, j)
			}
			values[j] = *v
		}
		out[i] = values
	}
	return out, nil
}
