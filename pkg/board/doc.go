// Package board provides the semantic tree model for declarative
// section-grouped lists.
//
// A board is an ordered tree of blocks. Each [Block] wraps one content
// value and is tagged, once at wrap time, as either a leaf or a section.
// A section is any value satisfying the [SectionSource] capability; the
// concrete [Section] container is the common case, but any implementation
// is recognized the same way regardless of its type parameters.
//
// # Construction
//
// Trees are built front-to-back with [Wrap], [NewSection], [TitledSection]
// and [NewBoard], or incrementally through a [Builder]:
//
//	b := board.NewBoard(
//	    board.Wrap(board.TitledSection("Account",
//	        board.Wrap(content.Text{Content: "Name"}),
//	        board.Wrap(content.Text{Content: "Email"}),
//	    )),
//	    board.Wrap(content.Divider{}),
//	)
//
// Everything is immutable once built: no reordering, filtering, or
// re-flattening APIs exist, and concurrent reads are safe by construction.
//
// # Flattening
//
// [Flatten] linearizes a block sequence depth-first: section blocks are
// replaced by their recursively flattened children, leaf blocks are kept.
// Only a board's direct top-level sections retain structural identity at
// render time; sections nested below them dissolve into the enclosing
// body. [Board.Rows] computes that decision for renderers.
//
// # Renderer contract
//
// The package renders nothing itself. A renderer consumes [Board.Rows]:
// section rows carry a header payload, a flattened body, and a footer
// payload; leaf rows carry a single content payload for standalone
// decoration. Header and footer payloads equal to [Empty] render nothing.
package board
