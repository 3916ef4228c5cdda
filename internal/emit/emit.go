// Package emit assembles encoded fields into the Cards and Faqs Elm modules.
//
// Record fields are written in the order the Elm record types declare them,
// driven by one field table per record type.
package emit

import (
	"strings"

	"github.com/arcanaland/cardscribe/internal/card"
	"github.com/arcanaland/cardscribe/internal/encode"
)

const (
	recordIndent  = "  "
	fieldIndent   = "    "
	closingIndent = "    "
)

// Header names the generated module and the list it exposes
type Header struct {
	Module  string   // Elm module name, e.g. Cards
	Symbol  string   // Exposed binding, e.g. all_cards
	Type    string   // Element type of the list, e.g. Card
	Imports []string // Modules imported with exposing (..)
}

// CardsHeader is the header of the generated Cards module
func CardsHeader() Header {
	return Header{Module: "Cards", Symbol: "all_cards", Type: "Card", Imports: []string{"Card", "CardSet"}}
}

// FaqsHeader is the header of the generated Faqs module
func FaqsHeader() Header {
	return Header{Module: "Faqs", Symbol: "all_faqs", Type: "Faq", Imports: []string{"Card"}}
}

func (h Header) write(b *strings.Builder) {
	b.WriteString("module " + h.Module + " exposing (" + h.Symbol + ")\n\n")
	for _, imp := range h.Imports {
		b.WriteString("import " + imp + " exposing (..)\n")
	}
	if len(h.Imports) > 0 {
		b.WriteByte('\n')
	}
	b.WriteString(h.Symbol + " : List " + h.Type + "\n")
	b.WriteString(h.Symbol + " =\n")
}

// field is one encoded record field
type field struct {
	name  string
	value string
}

// record renders a record literal, one field per line with leading commas.
// The opening brace is left unindented so the record can follow a list
// separator.
func record(fields []field) string {
	var b strings.Builder
	for i, f := range fields {
		if i == 0 {
			b.WriteString("{ ")
		} else {
			b.WriteString("\n" + fieldIndent + ", ")
		}
		b.WriteString(f.name + " = " + f.value)
	}
	b.WriteString("\n" + fieldIndent + "}")
	return b.String()
}

// module renders the header followed by the list of records. An empty list
// is written as a bare [] rather than an empty block.
func module(h Header, records []string) []byte {
	var b strings.Builder
	b.Grow(1024 * 16)
	h.write(&b)
	if len(records) == 0 {
		b.WriteString(fieldIndent + encode.Empty + "\n")
	} else {
		b.WriteString(encode.Block(records, recordIndent, closingIndent))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Cards renders the Cards module. Nothing is returned if any card fails to
// encode.
func Cards(cards []card.Card, h Header) ([]byte, error) {
	records := make([]string, 0, len(cards))
	for i := range cards {
		fields, err := cardRecord(&cards[i])
		if err != nil {
			return nil, err
		}
		records = append(records, record(fields))
	}
	return module(h, records), nil
}

// Faqs renders the Faqs module
func Faqs(faqs []card.Faq, h Header) []byte {
	records := make([]string, 0, len(faqs))
	for _, f := range faqs {
		records = append(records, record([]field{
			{"cards_mentioned", encode.Strings(f.CardsMentioned)},
			{"text", encode.String(f.Text)},
		}))
	}
	return module(h, records)
}

// Card renders a single card record literal, as it appears in the Cards module
func Card(c *card.Card) (string, error) {
	fields, err := cardRecord(c)
	if err != nil {
		return "", err
	}
	return record(fields), nil
}

func cardRecord(c *card.Card) ([]field, error) {
	fields := make([]field, 0, len(cardFields))
	for _, cf := range cardFields {
		value, err := cf.encode(c)
		if err != nil {
			return nil, &encode.FieldError{Record: c.ID, Field: cf.name, Err: err}
		}
		fields = append(fields, field{cf.name, value})
	}
	return fields, nil
}
