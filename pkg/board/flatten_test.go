package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-board/board/pkg/board"
)

// contents projects the payloads of a block sequence for order assertions.
func contents(blocks []board.Block) []any {
	out := make([]any, len(blocks))
	for i, b := range blocks {
		out[i] = b.Content()
	}
	return out
}

func TestFlatten_EmptyInput(t *testing.T) {
	out := board.Flatten(nil)
	assert.Empty(t, out)

	out = board.Flatten([]board.Block{})
	assert.Empty(t, out)
}

func TestFlatten_LeavesPassThroughInOrder(t *testing.T) {
	in := board.BlocksOf("a", "b", "c")

	out := board.Flatten(in)

	require.Len(t, out, 3)
	assert.Equal(t, []any{"a", "b", "c"}, contents(out))
	for i := range in {
		assert.True(t, out[i].Same(in[i]), "leaf blocks are kept, not re-wrapped")
	}
}

func TestFlatten_NestedSectionsDissolve(t *testing.T) {
	inner := board.TitledSection("inner", board.BlocksOf("a", "b")...)
	outer := board.TitledSection("outer",
		board.Wrap(inner),
		board.Wrap("c"),
	)

	out := board.Flatten([]board.Block{board.Wrap(outer)})

	assert.Equal(t, []any{"a", "b", "c"}, contents(out))
	for _, b := range out {
		assert.False(t, b.IsSection(), "section wrappers never appear in the output")
	}
}

func TestFlatten_EmptySectionContributesNothing(t *testing.T) {
	in := []board.Block{
		board.Wrap("before"),
		board.Wrap(board.TitledSection("empty")),
		board.Wrap("after"),
	}

	out := board.Flatten(in)

	assert.Equal(t, []any{"before", "after"}, contents(out))
}

func TestFlatten_DepthInvariance(t *testing.T) {
	// The same leaf nested 1 level and 5 levels deep flattens identically.
	shallow := board.Wrap(board.TitledSection("s", board.Wrap("x")))

	deep := board.Wrap("x")
	deepContents := []any{"x"}
	nested := board.TitledSection("d1", deep)
	for _, title := range []string{"d2", "d3", "d4", "d5"} {
		nested = board.TitledSection(title, board.Wrap(nested))
	}

	assert.Equal(t, []any{"x"}, contents(board.Flatten([]board.Block{shallow})))
	assert.Equal(t, deepContents, contents(board.Flatten([]board.Block{board.Wrap(nested)})))
}

func TestFlatten_IdempotentOnFlatInput(t *testing.T) {
	flat := board.BlocksOf("a", "b", "c")

	once := board.Flatten(flat)
	twice := board.Flatten(once)

	require.Len(t, twice, len(once))
	for i := range once {
		assert.True(t, twice[i].Same(once[i]))
	}
}

func TestFlatten_InterleavedLeavesAndSections(t *testing.T) {
	in := []board.Block{
		board.Wrap("1"),
		board.Wrap(board.TitledSection("s", board.BlocksOf("2", "3")...)),
		board.Wrap("4"),
		board.Wrap(board.TitledSection("t",
			board.Wrap(board.TitledSection("u", board.Wrap("5"))),
			board.Wrap("6"),
		)),
	}

	out := board.Flatten(in)

	assert.Equal(t, []any{"1", "2", "3", "4", "5", "6"}, contents(out))
}

func TestFlatten_DoesNotMutateInput(t *testing.T) {
	in := []board.Block{
		board.Wrap(board.TitledSection("s", board.Wrap("a"))),
		board.Wrap("b"),
	}
	before := contents(in)

	_ = board.Flatten(in)

	assert.Equal(t, before, contents(in))
	assert.True(t, in[0].IsSection())
}
