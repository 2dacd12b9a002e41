package board

// Builder collects blocks front-to-back for a Board or Section. It is a
// plain data-collection mechanism: declarations go in through Add calls,
// the ordered block sequence comes out of [Builder.Build].
//
//	var b board.Builder
//	b.Add(content.Text{Content: "Dark Mode"})
//	b.AddSection("Notif", board.Wrap(content.Text{Content: "Push"}))
//	blocks := b.Build()
//
// The zero value is ready to use. A Builder is not safe for concurrent
// use; build on one goroutine, share the resulting immutable tree freely.
type Builder struct {
	blocks []Block
}

// Add wraps each content value in a Block and appends it. Returns the
// builder for chaining.
func (b *Builder) Add(contents ...any) *Builder {
	for _, c := range contents {
		b.blocks = append(b.blocks, Wrap(c))
	}
	return b
}

// AddBlocks appends already-wrapped blocks. Returns the builder for
// chaining.
func (b *Builder) AddBlocks(blocks ...Block) *Builder {
	b.blocks = append(b.blocks, blocks...)
	return b
}

// AddSection appends a titled section containing the given blocks.
// Returns the builder for chaining.
func (b *Builder) AddSection(title string, blocks ...Block) *Builder {
	b.blocks = append(b.blocks, Wrap(TitledSection(title, blocks...)))
	return b
}

// Build returns a snapshot of the collected blocks, in declaration order.
// The builder may keep collecting afterwards; the snapshot is unaffected.
func (b *Builder) Build() []Block {
	out := make([]Block, len(b.blocks))
	copy(out, b.blocks)
	return out
}

// Board finalizes the builder into a Board over the collected blocks.
func (b *Builder) Board() Board {
	return NewBoard(b.Build()...)
}

// BlocksOf wraps each content value in a Block, in order. Ergonomic
// shorthand for declaring a section's children inline.
func BlocksOf(contents ...any) []Block {
	blocks := make([]Block, len(contents))
	for i, c := range contents {
		blocks[i] = Wrap(c)
	}
	return blocks
}
