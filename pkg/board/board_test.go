package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-board/board/pkg/board"
	"github.com/go-board/board/pkg/content"
)

func TestBoard_PreservesOrder(t *testing.T) {
	b := board.BoardOf("a", "b", "c")

	require.Equal(t, 3, b.Len())
	assert.Equal(t, []any{"a", "b", "c"}, contents(b.Blocks()))
}

func TestBoard_BlocksReturnsCopy(t *testing.T) {
	b := board.BoardOf("a", "b")

	got := b.Blocks()
	got[0] = board.Wrap("mutated")

	assert.Equal(t, []any{"a", "b"}, contents(b.Blocks()))
}

func TestRows_LeafRow(t *testing.T) {
	b := board.BoardOf("standalone")

	rows := b.Rows()

	require.Len(t, rows, 1)
	assert.False(t, rows[0].IsSection)
	assert.Equal(t, "standalone", rows[0].Content)
	assert.Nil(t, rows[0].Body)
	assert.NotEmpty(t, rows[0].ID)
}

func TestRows_SectionRow(t *testing.T) {
	b := board.BoardOf(board.TitledSection("Account", board.BlocksOf("Name", "Email")...))

	rows := b.Rows()

	require.Len(t, rows, 1)
	row := rows[0]
	assert.True(t, row.IsSection)
	assert.Equal(t, "Account", row.Header)
	assert.Equal(t, board.Empty{}, row.Footer)
	assert.Equal(t, []any{"Name", "Email"}, contents(row.Body))
	assert.Nil(t, row.Content)
}

func TestRows_OneLevelOfStructure(t *testing.T) {
	// S contains nested section N([a, b]) followed by leaf c: rendering
	// S's body yields [a, b, c] with no trace of N's header or footer.
	n := board.TitledSection("N", board.BlocksOf("a", "b")...)
	s := board.TitledSection("S", board.Wrap(n), board.Wrap("c"))

	rows := board.NewBoard(board.Wrap(s)).Rows()

	require.Len(t, rows, 1)
	assert.Equal(t, "S", rows[0].Header)
	assert.Equal(t, []any{"a", "b", "c"}, contents(rows[0].Body))
	for _, blk := range rows[0].Body {
		assert.False(t, blk.IsSection())
	}
}

func TestRows_EmptySectionRendersHeaderEmptyBodyFooter(t *testing.T) {
	rows := board.BoardOf(board.NewSection("h", "f")).Rows()

	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsSection)
	assert.Equal(t, "h", rows[0].Header)
	assert.Equal(t, "f", rows[0].Footer)
	assert.Empty(t, rows[0].Body)
}

func TestRows_CustomSourceWithoutDecor(t *testing.T) {
	src := staticSource{children: board.BlocksOf("x")}

	rows := board.BoardOf(src).Rows()

	require.Len(t, rows, 1)
	assert.True(t, rows[0].IsSection)
	assert.Nil(t, rows[0].Header)
	assert.Nil(t, rows[0].Footer)
	assert.Equal(t, []any{"x"}, contents(rows[0].Body))
}

func TestRows_SectionsFlattenTheirOwnSubtreeOnly(t *testing.T) {
	left := board.TitledSection("Left", board.Wrap("l1"))
	right := board.TitledSection("Right", board.Wrap("r1"))

	rows := board.BoardOf(left, right).Rows()

	require.Len(t, rows, 2)
	assert.Equal(t, []any{"l1"}, contents(rows[0].Body))
	assert.Equal(t, []any{"r1"}, contents(rows[1].Body))
}

func TestRows_SettingsScreenScenario(t *testing.T) {
	// Three top-level sections; the nested "Notif" section dissolves into
	// the "Preferences" body.
	b := board.BoardOf(
		board.TitledSection("Account", board.BlocksOf(
			content.Text{Content: "Name"},
			content.Text{Content: "Email"},
		)...),
		board.TitledSection("Preferences",
			board.Wrap(board.TitledSection("Notif", board.Wrap(content.Text{Content: "Push"}))),
			board.Wrap(content.Text{Content: "Dark Mode"}),
		),
		board.TitledSection("Footer", board.Wrap(content.Text{Content: "Footer Info"})),
	)

	rows := b.Rows()

	require.Len(t, rows, 3)
	for _, row := range rows {
		assert.True(t, row.IsSection)
	}
	assert.Equal(t, "Preferences", rows[1].Header)
	assert.Equal(t, []any{
		content.Text{Content: "Push"},
		content.Text{Content: "Dark Mode"},
	}, contents(rows[1].Body))
}

func TestRows_EmptyBoard(t *testing.T) {
	assert.Empty(t, board.NewBoard().Rows())
}
