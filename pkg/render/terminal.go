package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-board/board/pkg/board"
)

// minRuleWidth keeps dividers visible inside narrow section bodies.
const minRuleWidth = 8

// Styles controls the terminal look of each board part.
type Styles struct {
	// Header styles a section's header label.
	Header lipgloss.Style
	// Body frames a section's flattened item list.
	Body lipgloss.Style
	// Item styles one line inside a section body.
	Item lipgloss.Style
	// Footer styles a section's footer label.
	Footer lipgloss.Style
	// Leaf styles a standalone top-level item.
	Leaf lipgloss.Style
}

// DefaultStyles returns the stock terminal styling: bold headers, a
// rounded border around section bodies, faint footers.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Body:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
		Item:   lipgloss.NewStyle(),
		Footer: lipgloss.NewStyle().Faint(true),
		Leaf:   lipgloss.NewStyle().PaddingLeft(1),
	}
}

// Terminal renders a board as styled text.
//
// The zero value renders unstyled text; use [DefaultStyles] for the
// stock look:
//
//	out := render.Terminal{Styles: render.DefaultStyles()}.Render(b)
type Terminal struct {
	Styles Styles
}

// Render draws the board's rows top to bottom: sections as
// header-body-footer units with their flattened items inside the body
// frame, everything else as standalone leaves.
func (t Terminal) Render(b board.Board) string {
	rows := b.Rows()
	parts := make([]string, 0, len(rows))
	for _, row := range rows {
		if row.IsSection {
			parts = append(parts, t.renderSection(row))
		} else {
			parts = append(parts, t.renderLeaf(row))
		}
	}
	return strings.Join(parts, "\n")
}

func (t Terminal) renderSection(row board.Row) string {
	var parts []string
	if h := TextOf(row.Header); h != "" {
		parts = append(parts, t.Styles.Header.Render(h))
	}
	parts = append(parts, t.Styles.Body.Render(t.renderBody(row.Body)))
	if f := TextOf(row.Footer); f != "" {
		parts = append(parts, t.Styles.Footer.Render(f))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (t Terminal) renderBody(body []board.Block) string {
	width := minRuleWidth
	lines := make([]string, len(body))
	for i, blk := range body {
		if isDivider(blk.Content()) {
			continue
		}
		lines[i] = t.Styles.Item.Render(TextOf(blk.Content()))
		if w := lipgloss.Width(lines[i]); w > width {
			width = w
		}
	}
	for i, blk := range body {
		if isDivider(blk.Content()) {
			lines[i] = strings.Repeat("─", width)
		}
	}
	return strings.Join(lines, "\n")
}

func (t Terminal) renderLeaf(row board.Row) string {
	if isDivider(row.Content) {
		return strings.Repeat("─", minRuleWidth)
	}
	return t.Styles.Leaf.Render(TextOf(row.Content))
}
