package render

import (
	"fmt"

	"github.com/go-board/board/pkg/board"
	"github.com/go-board/board/pkg/content"
)

// ContentRenderer is the capability a payload implements to control its
// own display text. Checked before fmt.Stringer.
type ContentRenderer interface {
	RenderContent() string
}

// TextOf resolves the display text for a payload: [ContentRenderer]
// first, then fmt.Stringer, then %v formatting. Nil and [board.Empty]
// payloads resolve to the empty string.
func TextOf(payload any) string {
	switch v := payload.(type) {
	case nil, board.Empty:
		return ""
	case ContentRenderer:
		return v.RenderContent()
	case fmt.Stringer:
		return v.String()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// isDivider reports whether a payload asks for a horizontal rule.
func isDivider(payload any) bool {
	_, ok := payload.(content.Divider)
	return ok
}
