// Package render provides reference renderers for boards.
//
// Renderers consume the rendering contract computed by
// [github.com/go-board/board/pkg/board.Board.Rows]: top-level section
// rows become structural units (header, flattened body, footer), leaf
// rows become individually decorated standalone items. Nothing here
// mutates a board; rendering the same board twice produces the same
// output.
//
// Two surfaces ship with the package:
//
//   - [Terminal] draws styled text with lipgloss, suitable for CLIs and
//     TUIs.
//   - [Image] rasterizes a board into an image.RGBA with a fixed-width
//     font, suitable for snapshots.
//
// Payload display text resolves through [TextOf]: a payload may
// implement [ContentRenderer] to control its own display, fall back to
// fmt.Stringer, or be formatted with %v.
package render
