// Package encode turns catalog values into Elm literal fragments. There is one
// function per field shape; all of them are pure and only the icon encoder can
// fail, when a name is missing from the icon table.
package encode

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/arcanaland/cardscribe/internal/card"
	"github.com/arcanaland/cardscribe/internal/lookup"
)

const (
	True    = "True"
	False   = "False"
	Nothing = "Nothing"
	Empty   = "[]"
)

// FieldError ties an encoding failure to the record and field it came from
type FieldError struct {
	Record string
	Field  string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("card %q: field %s: %v", e.Record, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// String quotes s as an Elm string literal
func String(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if unicode.IsPrint(r) {
				b.WriteRune(r)
			} else {
				fmt.Fprintf(&b, `\u{%04X}`, r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}

func Int(n int) string {
	return strconv.Itoa(n)
}

func Bool(b bool) string {
	if b {
		return True
	}
	return False
}

// Optional wraps the encoded value in Just, or yields Nothing when v is nil
func Optional[T any](v *T, enc func(T) string) string {
	if v == nil {
		return Nothing
	}
	return "Just " + enc(*v)
}

func OptionalString(v *string) string {
	return Optional(v, String)
}

func OptionalInt(v *int) string {
	return Optional(v, Int)
}

// Tag qualifies an enum tag with its type name, e.g. House_Stark
func Tag(typeName, tag string) string {
	return typeName + "_" + tag
}

// Tags encodes a list of enum tags, keeping input order
func Tags(typeName string, tags []string) string {
	return List(mapStrings(tags, func(t string) string { return Tag(typeName, t) }))
}

// Strings encodes a list of quoted strings, keeping input order
func Strings(values []string) string {
	return List(mapStrings(values, String))
}

// Icon renders a resolved icon as a constructor with its naval flag
func Icon(icon lookup.Icon) string {
	return icon.Constructor() + " { naval = " + Bool(icon.Naval) + " }"
}

// Icons resolves every name through the icon table. The first unknown name
// aborts the encoding.
func Icons(names []string) (string, error) {
	items := make([]string, 0, len(names))
	for _, name := range names {
		icon, err := lookup.ResolveIcon(name)
		if err != nil {
			return "", err
		}
		items = append(items, Icon(icon))
	}
	return List(items), nil
}

func Errata(e card.Errata) string {
	return fmt.Sprintf("{ line = %d, start = %d, end = %d }", e.Line, e.Start, e.End)
}

// errataIndent is where a multi-line errata list sits inside a card record
const errataIndent = "      "

// Erratas encodes inline when there is a single errata and as a block on
// its own lines when there are several.
func Erratas(erratas []card.Errata) string {
	items := make([]string, len(erratas))
	for i, e := range erratas {
		items[i] = Errata(e)
	}
	if len(items) < 2 {
		return List(items)
	}
	return "\n" + Block(items, errataIndent, errataIndent)
}

// List joins items into a single-line list literal
func List(items []string) string {
	if len(items) == 0 {
		return Empty
	}
	return "[ " + strings.Join(items, ", ") + " ]"
}

// Block lays items out one per line, each behind a leading separator: "["
// for the first, "," for the rest. A closing "]" line ends the block. The
// result has no trailing newline.
func Block(items []string, indent, closingIndent string) string {
	if len(items) == 0 {
		return Empty
	}

	var b strings.Builder
	for i, item := range items {
		b.WriteString(indent)
		b.WriteString(separator(i))
		b.WriteByte(' ')
		b.WriteString(item)
		b.WriteByte('\n')
	}
	b.WriteString(closingIndent)
	b.WriteByte(']')
	return b.String()
}

func separator(i int) string {
	if i == 0 {
		return "["
	}
	return ","
}

func mapStrings(values []string, f func(string) string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = f(v)
	}
	return out
}
