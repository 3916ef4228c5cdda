package encode

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/cardscribe/internal/card"
	"github.com/arcanaland/cardscribe/internal/lookup"
)

func TestString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Jon Snow", `"Jon Snow"`},
		{"empty", "", `""`},
		{"apostrophe", "Night's Watch", `"Night's Watch"`},
		{"quotes", `Say "hello"`, `"Say \"hello\""`},
		{"backslash", `a\b`, `"a\\b"`},
		{"newline", "Reaction:\nAfter you win", `"Reaction:\nAfter you win"`},
		{"carriage return and tab", "a\r\tb", `"a\r\tb"`},
		{"unicode", "Daenerys — Mère des dragons", `"Daenerys — Mère des dragons"`},
		{"control", "a\x00b\u200b", `"a\u{0000}b\u{200B}"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, String(tt.input))
		})
	}
}

func TestScalars(t *testing.T) {
	assert.Equal(t, "0", Int(0))
	assert.Equal(t, "42", Int(42))
	assert.Equal(t, "True", Bool(true))
	assert.Equal(t, "False", Bool(false))
}

func TestOptional(t *testing.T) {
	text := "Renown."
	zero := 0
	five := 5

	assert.Equal(t, "Nothing", OptionalString(nil))
	assert.Equal(t, `Just "Renown."`, OptionalString(&text))
	assert.Equal(t, "Nothing", OptionalInt(nil))
	assert.Equal(t, "Just 0", OptionalInt(&zero))
	assert.Equal(t, "Just 5", OptionalInt(&five))

	quoted := "a \"b\""
	assert.Equal(t, `Just "a \"b\""`, OptionalString(&quoted))
}

func TestTags(t *testing.T) {
	assert.Equal(t, "House_Stark", Tag("House", "Stark"))
	assert.Equal(t, "[]", Tags("House", nil))
	assert.Equal(t, "[]", Tags("Crest", []string{}))
	assert.Equal(t, "[ House_Stark ]", Tags("House", []string{"Stark"}))
	assert.Equal(t, "[ House_Targaryen, House_Stark ]", Tags("House", []string{"Targaryen", "Stark"}))
	assert.Equal(t, "[ Crest_Noble, Crest_War ]", Tags("Crest", []string{"Noble", "War"}))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "[]", Strings(nil))
	assert.Equal(t, `[ "Lord" ]`, Strings([]string{"Lord"}))
	assert.Equal(t, `[ "Lord", "Night's Watch" ]`, Strings([]string{"Lord", "Night's Watch"}))
}

func TestIcons(t *testing.T) {
	got, err := Icons([]string{"Military", "Power (Naval)"})
	require.NoError(t, err)
	assert.Equal(t, "[ Icon_Military { naval = False }, Icon_Power { naval = True } ]", got)

	got, err = Icons(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
}

func TestIcons_Unknown(t *testing.T) {
	got, err := Icons([]string{"Military", "Diplomacy"})
	require.Error(t, err)
	assert.ErrorIs(t, err, lookup.ErrUnknownIcon)
	assert.Contains(t, err.Error(), `"Diplomacy"`)
	assert.Empty(t, got)
}

func TestErratas(t *testing.T) {
	assert.Equal(t, "[]", Erratas(nil))
	assert.Equal(t, "[]", Erratas([]card.Errata{}))

	assert.Equal(t,
		"[ { line = 1, start = 2, end = 10 } ]",
		Erratas([]card.Errata{{Line: 1, Start: 2, End: 10}}))

	assert.Equal(t,
		"\n"+
			"      [ { line = 1, start = 2, end = 10 }\n"+
			"      , { line = 3, start = 0, end = 4 }\n"+
			"      , { line = 3, start = 7, end = 7 }\n"+
			"      ]",
		Erratas([]card.Errata{
			{Line: 1, Start: 2, End: 10},
			{Line: 3, Start: 0, End: 4},
			{Line: 3, Start: 7, End: 7},
		}))
}

var errataPattern = regexp.MustCompile(`\{ line = (\d+), start = (\d+), end = (\d+) \}`)

// parseErratas reads errata triples back out of either list form
func parseErratas(t *testing.T, literal string) []card.Errata {
	t.Helper()
	var out []card.Errata
	for _, m := range errataPattern.FindAllStringSubmatch(literal, -1) {
		line, _ := strconv.Atoi(m[1])
		start, _ := strconv.Atoi(m[2])
		end, _ := strconv.Atoi(m[3])
		out = append(out, card.Errata{Line: line, Start: start, End: end})
	}
	return out
}

func TestErratas_BothFormsParseBack(t *testing.T) {
	for _, erratas := range [][]card.Errata{
		{{Line: 2, Start: 4, End: 9}},
		{{Line: 2, Start: 4, End: 9}, {Line: 1, Start: 0, End: 3}},
	} {
		assert.Equal(t, erratas, parseErratas(t, Erratas(erratas)))
	}
}

func TestList(t *testing.T) {
	assert.Equal(t, "[]", List(nil))
	assert.Equal(t, "[ a ]", List([]string{"a"}))
	assert.Equal(t, "[ a, b, c ]", List([]string{"a", "b", "c"}))
}

func TestBlock(t *testing.T) {
	assert.Equal(t, "[]", Block(nil, "  ", "  "))
	assert.Equal(t, "  [ a\n    ]", Block([]string{"a"}, "  ", "    "))
	assert.Equal(t, "  [ a\n  , b\n  , c\n  ]", Block([]string{"a", "b", "c"}, "  ", "  "))
}

func TestFieldError(t *testing.T) {
	_, cause := lookup.ResolveSet("Nowhere")
	err := &FieldError{Record: "01001", Field: "set", Err: cause}

	assert.Equal(t, `card "01001": field set: unknown set "Nowhere"`, err.Error())
	assert.ErrorIs(t, err, lookup.ErrUnknownSet)
}
