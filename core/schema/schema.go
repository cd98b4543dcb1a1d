package schema

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the variants of a [Descriptor].
type Kind int

const (
	// KindString is a free-text field.
	KindString Kind = iota
	// KindNumber is a numeric field.
	KindNumber
	// KindBoolean is a true/false field.
	KindBoolean
	// KindObject is a nested mapping of named fields.
	KindObject
	// KindArray is a sequence whose elements share one descriptor.
	KindArray
)

// typeName returns the type-hint word rendered for a primitive kind.
func (k Kind) typeName() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	default:
		return ""
	}
}

// Descriptor describes the shape a completion should produce. Construct one
// with the package-level builder functions; the zero value is a plain string
// field.
type Descriptor struct {
	kind   Kind
	hint   string
	fields []Field
	elem   *Descriptor
}

// Field is a named entry of an object descriptor. Order is preserved in the
// rendered output.
type Field struct {
	Name       string
	Descriptor Descriptor
}

// String returns a string-typed descriptor.
func String() Descriptor {
	return Descriptor{kind: KindString}
}

// StringHint returns a string-typed descriptor carrying extra formatting
// guidance, rendered as `string (hint)`.
//
// Example:
//
//	schema.StringHint("YYYY-MM-DD format")
func StringHint(hint string) Descriptor {
	return Descriptor{kind: KindString, hint: hint}
}

// Number returns a number-typed descriptor.
func Number() Descriptor {
	return Descriptor{kind: KindNumber}
}

// NumberHint returns a number-typed descriptor carrying extra guidance,
// rendered as `number (hint)`.
func NumberHint(hint string) Descriptor {
	return Descriptor{kind: KindNumber, hint: hint}
}

// Bool returns a boolean-typed descriptor.
func Bool() Descriptor {
	return Descriptor{kind: KindBoolean}
}

// Object returns an object descriptor with the given fields, in order.
// Field names must be unique within the object; a duplicate is a programmer
// error in a fixed descriptor literal and panics at construction time.
func Object(fields ...Field) Descriptor {
	seen := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.Name]; dup {
			panic(fmt.Sprintf("schema: duplicate field name %q", f.Name))
		}
		seen[f.Name] = struct{}{}
	}

	copied := make([]Field, len(fields))
	copy(copied, fields)
	return Descriptor{kind: KindObject, fields: copied}
}

// Array returns a descriptor for a sequence of elem-shaped values.
func Array(elem Descriptor) Descriptor {
	return Descriptor{kind: KindArray, elem: &elem}
}

// F builds a named object field.
func F(name string, d Descriptor) Field {
	return Field{Name: name, Descriptor: d}
}

// Kind returns the variant of the descriptor.
func (d Descriptor) Kind() Kind {
	return d.kind
}

// Render returns the descriptor as a pretty-printed JSON literal, the form
// embedded in extraction prompts so the model can pattern-match the expected
// output shape. Primitives render as quoted type hints, objects as `{...}`
// with two-space indentation, and arrays as `[...]` wrapping the element
// shape.
//
// Example output:
//
//	{
//	  "invoice_number": "string",
//	  "vendor": {
//	    "name": "string"
//	  },
//	  "line_items": [
//	    {
//	      "description": "string",
//	      "total": "number"
//	    }
//	  ]
//	}
func (d Descriptor) Render() string {
	var b strings.Builder
	d.render(&b, 0)
	return b.String()
}

func (d Descriptor) render(b *strings.Builder, depth int) {
	switch d.kind {
	case KindObject:
		if len(d.fields) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{\n")
		for i, f := range d.fields {
			writeIndent(b, depth+1)
			b.WriteString(strconv.Quote(f.Name))
			b.WriteString(": ")
			f.Descriptor.render(b, depth+1)
			if i < len(d.fields)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		writeIndent(b, depth)
		b.WriteString("}")

	case KindArray:
		b.WriteString("[\n")
		writeIndent(b, depth+1)
		d.elem.render(b, depth+1)
		b.WriteString("\n")
		writeIndent(b, depth)
		b.WriteString("]")

	default:
		hint := d.kind.typeName()
		if d.hint != "" {
			hint += " (" + d.hint + ")"
		}
		b.WriteString(strconv.Quote(hint))
	}
}

func writeIndent(b *strings.Builder, depth int) {
	for range depth {
		b.WriteString("  ")
	}
}
