package board

// Board is the composition root: an ordered sequence of top-level blocks.
// The order supplied at construction is the iteration and render order.
// A Board is immutable and lives for the duration of the screen it backs.
type Board struct {
	blocks []Block
}

// NewBoard creates a Board from top-level blocks, preserving their order
// exactly.
func NewBoard(blocks ...Block) Board {
	if blocks == nil {
		blocks = []Block{}
	}
	return Board{blocks: blocks}
}

// BoardOf wraps each content value in a Block and creates a Board from
// them, in order. Ergonomic shorthand for NewBoard over Wrap.
func BoardOf(contents ...any) Board {
	blocks := make([]Block, len(contents))
	for i, c := range contents {
		blocks[i] = Wrap(c)
	}
	return NewBoard(blocks...)
}

// Blocks returns a copy of the board's top-level blocks.
func (b Board) Blocks() []Block {
	out := make([]Block, len(b.blocks))
	copy(out, b.blocks)
	return out
}

// Len returns the number of top-level blocks.
func (b Board) Len() int { return len(b.blocks) }

// Row is the renderer-facing projection of one top-level block.
//
// Only a board's direct top-level blocks may become visually distinct
// sections. A section row carries the header and footer payloads plus the
// flattened body of its own subtree: any section nested inside it has
// already dissolved, its header and footer discarded and its leaves
// spliced into Body. A leaf row carries the single content payload for
// standalone decoration.
type Row struct {
	// ID is the underlying block's stable identity.
	ID string
	// IsSection reports whether this row renders as a structural unit.
	IsSection bool
	// Header is the section header payload. Nil or [Empty] renders nothing.
	Header any
	// Footer is the section footer payload. Nil or [Empty] renders nothing.
	Footer any
	// Body is the flattened leaf sequence of the section's subtree.
	Body []Block
	// Content is the leaf payload. Set only when IsSection is false.
	Content any
}

// Rows computes the rendering decision for each top-level block, in
// order. Pure; safe to call concurrently and repeatedly.
func (b Board) Rows() []Row {
	rows := make([]Row, len(b.blocks))
	for i, blk := range b.blocks {
		if children, ok := blk.ExtractBlocks(); ok {
			row := Row{
				ID:        blk.ID(),
				IsSection: true,
				Body:      Flatten(children),
			}
			if decor, ok := blk.Content().(SectionDecor); ok {
				row.Header = decor.SectionHeader()
				row.Footer = decor.SectionFooter()
			}
			rows[i] = row
			continue
		}
		rows[i] = Row{ID: blk.ID(), Content: blk.Content()}
	}
	return rows
}
