package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-board/board/pkg/board"
)

func TestNewSection_StoresPayloadsVerbatim(t *testing.T) {
	leaf := board.Wrap("item")
	s := board.NewSection("head", "foot", leaf)

	assert.Equal(t, "head", s.Header())
	assert.Equal(t, "foot", s.Footer())

	blocks := s.ExtractBlocks()
	require.Len(t, blocks, 1)
	assert.True(t, blocks[0].Same(leaf))
}

func TestNewSection_ZeroChildren(t *testing.T) {
	s := board.NewSection("h", "f")

	blocks := s.ExtractBlocks()
	assert.NotNil(t, blocks, "ExtractBlocks never returns nil")
	assert.Empty(t, blocks)
}

func TestTitledSection_TextHeaderEmptyFooter(t *testing.T) {
	s := board.TitledSection("Account", board.Wrap("Name"))

	assert.Equal(t, "Account", s.Header())
	assert.Equal(t, board.Empty{}, s.Footer())
}

func TestSection_ExtractBlocksDeterministic(t *testing.T) {
	s := board.TitledSection("t", board.BlocksOf("a", "b")...)

	first := s.ExtractBlocks()
	second := s.ExtractBlocks()

	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].Same(second[i]), "same sequence on every call")
	}
}

func TestSection_DecorCapability(t *testing.T) {
	var decor board.SectionDecor = board.TitledSection("Title")

	assert.Equal(t, "Title", decor.SectionHeader())
	assert.Equal(t, board.Empty{}, decor.SectionFooter())
}
