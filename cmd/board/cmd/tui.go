package cmd

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-board/board/pkg/board"
	"github.com/go-board/board/pkg/content"
	"github.com/go-board/board/pkg/render"
)

// Viewer styles
var (
	viewerHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	viewerFooterStyle   = lipgloss.NewStyle().Faint(true)
	viewerSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	viewerItemStyle     = lipgloss.NewStyle()
	viewerHelpStyle     = lipgloss.NewStyle().Faint(true)
)

// entry is one drawn line of the viewer. Headers, footers, and rules are
// decoration; items and standalone leaves are selectable.
type entry struct {
	text       string
	indent     bool
	header     bool
	footer     bool
	rule       bool
	selectable bool
}

// boardModel is the bubbletea model for the interactive board viewer.
type boardModel struct {
	entries []entry
	cursor  int
}

// newBoardModel projects a board into viewer entries. Nested sections
// have already dissolved by the time rows are computed, so every body
// item sits directly under its top-level header.
func newBoardModel(b board.Board) boardModel {
	var entries []entry
	for i, row := range b.Rows() {
		if i > 0 {
			entries = append(entries, entry{})
		}
		if !row.IsSection {
			entries = append(entries, leafEntry(row.Content, false))
			continue
		}
		if h := render.TextOf(row.Header); h != "" {
			entries = append(entries, entry{text: h, header: true})
		}
		for _, blk := range row.Body {
			entries = append(entries, leafEntry(blk.Content(), true))
		}
		if f := render.TextOf(row.Footer); f != "" {
			entries = append(entries, entry{text: f, footer: true})
		}
	}

	m := boardModel{entries: entries, cursor: -1}
	m.cursor = m.next(-1, 1)
	return m
}

func leafEntry(payload any, indent bool) entry {
	if _, ok := payload.(content.Divider); ok {
		return entry{rule: true, indent: indent}
	}
	return entry{text: render.TextOf(payload), indent: indent, selectable: true}
}

// next returns the index of the nearest selectable entry from i in
// direction dir, or i's replacement (-1 when none exists).
func (m boardModel) next(i, dir int) int {
	for j := i + dir; j >= 0 && j < len(m.entries); j += dir {
		if m.entries[j].selectable {
			return j
		}
	}
	return i
}

func (m boardModel) Init() tea.Cmd {
	return nil
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			m.cursor = m.next(m.cursor, -1)
		case "down", "j":
			m.cursor = m.next(m.cursor, 1)
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	var sb strings.Builder
	for i, e := range m.entries {
		prefix := "  "
		if e.indent {
			prefix = "    "
		}
		switch {
		case e.rule:
			sb.WriteString(prefix + strings.Repeat("─", 12))
		case e.header:
			sb.WriteString(viewerHeaderStyle.Render(e.text))
		case e.footer:
			sb.WriteString(viewerFooterStyle.Render(e.text))
		case e.selectable && i == m.cursor:
			sb.WriteString(prefix[:len(prefix)-2] + viewerSelectedStyle.Render("> "+e.text))
		default:
			sb.WriteString(prefix + viewerItemStyle.Render(e.text))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n" + viewerHelpStyle.Render("j/k move · q quit"))
	return sb.String()
}
