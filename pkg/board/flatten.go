package board

// Flatten linearizes blocks depth-first in pre-order. Section blocks are
// replaced by their recursively flattened children and never appear in
// the output themselves; leaf blocks are kept. The result is every leaf
// reachable from blocks, in depth-first left-to-right order.
//
// Flatten is total and pure: empty input yields empty output, a section
// with zero children contributes nothing, and arbitrarily deep nesting is
// valid. Only the section tag memoized at wrap time decides treatment; a
// section whose source returns an empty sequence is dropped entirely,
// unlike a leaf, which is always kept.
//
// Termination relies on the tree being finite and acyclic. Construction
// front-ends only ever build new trees, so cycles cannot arise; this is
// an assumed invariant, not a checked one.
func Flatten(blocks []Block) []Block {
	out := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		if children, ok := b.ExtractBlocks(); ok {
			out = append(out, Flatten(children)...)
		} else {
			out = append(out, b)
		}
	}
	return out
}
