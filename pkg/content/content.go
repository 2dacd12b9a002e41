// Package content provides the common leaf payload types understood by
// the reference renderers.
//
// The board core treats payloads as opaque; these types are a shared
// vocabulary between construction front-ends and renderers. Custom
// payload types work just as well — a renderer that does not recognize a
// payload falls back to its string form.
//
// All types are immutable configuration values constructed with struct
// literals:
//
//	content.Text{Content: "Dark Mode"}
//	content.Field{Label: "Email", Value: "pat@example.com"}
//	content.Divider{}
package content

import "fmt"

// Text is a single line of text.
type Text struct {
	Content string
}

// String returns the text content.
func (t Text) String() string { return t.Content }

// Field is a labeled value, rendered label-left value-right.
type Field struct {
	Label string
	Value string
}

// String returns "label: value".
func (f Field) String() string { return fmt.Sprintf("%s: %s", f.Label, f.Value) }

// Divider is a horizontal separator with no content of its own.
type Divider struct{}

// String returns a fixed marker; renderers draw a rule instead.
func (Divider) String() string { return "---" }
