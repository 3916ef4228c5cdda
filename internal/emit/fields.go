package emit

import (
	"github.com/arcanaland/cardscribe/internal/card"
	"github.com/arcanaland/cardscribe/internal/encode"
	"github.com/arcanaland/cardscribe/internal/lookup"
)

// cardField binds a field of the Elm Card record to the strategy encoding it
type cardField struct {
	name   string
	encode func(c *card.Card) (string, error)
}

// infallible adapts an encoder that cannot fail
func infallible(f func(c *card.Card) string) func(c *card.Card) (string, error) {
	return func(c *card.Card) (string, error) {
		return f(c), nil
	}
}

// cardFields is in the declaration order of the Elm Card type. Record
// literals are order-sensitive, so this order is the output order.
var cardFields = []cardField{
	{"id", infallible(func(c *card.Card) string { return encode.String(c.ID) })},
	{"name", infallible(func(c *card.Card) string { return encode.String(c.Name) })},
	{"card_type", infallible(func(c *card.Card) string { return encode.Tag("CardType", c.CardType) })},
	{"set", func(c *card.Card) (string, error) { return lookup.ResolveSet(c.Set) }},
	{"number", infallible(func(c *card.Card) string { return encode.Int(c.Number) })},
	{"quantity", infallible(func(c *card.Card) string { return encode.Int(c.Quantity) })},
	{"limit", infallible(func(c *card.Card) string { return encode.Int(c.Limit) })},
	{"legality_joust", infallible(func(c *card.Card) string { return encode.Tag("Legality", c.LegalityJoust) })},
	{"legality_melee", infallible(func(c *card.Card) string { return encode.Tag("Legality", c.LegalityMelee) })},
	{"illustrator", infallible(func(c *card.Card) string { return encode.String(c.Illustrator) })},
	{"house", infallible(func(c *card.Card) string { return encode.Tags("House", c.House) })},
	{"legal_in_houses", infallible(func(c *card.Card) string { return encode.Tags("House", c.LegalInHouses) })},
	{"unique", infallible(func(c *card.Card) string { return encode.Bool(c.Unique) })},
	{"rules_text", infallible(func(c *card.Card) string { return encode.OptionalString(c.RulesText) })},
	{"flavor_text", infallible(func(c *card.Card) string { return encode.OptionalString(c.FlavorText) })},
	{"cost", infallible(func(c *card.Card) string { return encode.OptionalInt(c.Cost) })},
	{"icons", func(c *card.Card) (string, error) { return encode.Icons(c.Icons) }},
	{"crest", infallible(func(c *card.Card) string { return encode.Tags("Crest", c.Crest) })},
	{"traits", infallible(func(c *card.Card) string { return encode.Strings(c.Traits) })},
	{"strength", infallible(func(c *card.Card) string { return encode.OptionalInt(c.Strength) })},
	{"income", infallible(func(c *card.Card) string { return encode.OptionalInt(c.Income) })},
	{"initiative", infallible(func(c *card.Card) string { return encode.OptionalInt(c.Initiative) })},
	{"claim", infallible(func(c *card.Card) string { return encode.OptionalInt(c.Claim) })},
	{"influence", infallible(func(c *card.Card) string { return encode.OptionalInt(c.Influence) })},
	{"erratas", infallible(func(c *card.Card) string { return encode.Erratas(c.Erratas) })},
	{"duplicate_id", infallible(func(c *card.Card) string { return encode.OptionalString(c.DuplicateID) })},
}

// CardFields lists the emitted field names in output order
func CardFields() []string {
	names := make([]string, len(cardFields))
	for i, f := range cardFields {
		names[i] = f.name
	}
	return names
}
