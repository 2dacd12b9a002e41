package board

import "github.com/google/uuid"

// Block wraps one content value in the tree, tagged as leaf or section.
//
// The tag is computed exactly once, when [Wrap] probes the content for the
// [SectionSource] capability, and never re-evaluated. A Block is immutable
// for its lifetime and carries a stable opaque identity suitable for
// ordered-list diffing; identity is never content-based, so two Blocks
// wrapping equal content remain distinct.
//
// The zero Block is a leaf with empty identity and nil content; real
// Blocks come from [Wrap].
type Block struct {
	id      string
	content any
	source  SectionSource // non-nil iff the content satisfied SectionSource at wrap time
}

// Wrap creates a Block around content. Every value is wrappable; there is
// no error path. If content satisfies [SectionSource] at the moment of
// wrapping, the Block is tagged as a section and the capability reference
// is memoized.
func Wrap(content any) Block {
	b := Block{
		id:      uuid.NewString(),
		content: content,
	}
	if src, ok := content.(SectionSource); ok {
		b.source = src
	}
	return b
}

// ID returns the Block's stable opaque identity.
func (b Block) ID() string { return b.id }

// Content returns the wrapped payload. The payload is opaque to this
// package; rendering it is the renderer's concern.
func (b Block) Content() any { return b.content }

// IsSection reports whether the wrapped content satisfied [SectionSource]
// when the Block was created.
func (b Block) IsSection() bool { return b.source != nil }

// ExtractBlocks returns the wrapped section's child blocks and true, or
// nil and false for a leaf Block. Pure; delegates to the capability
// reference memoized at wrap time.
func (b Block) ExtractBlocks() ([]Block, bool) {
	if b.source == nil {
		return nil, false
	}
	return b.source.ExtractBlocks(), true
}

// Same reports whether two Blocks are the same entity. Blocks hold
// arbitrary payloads, so == on Block values is not generally usable;
// compare identities instead.
func (b Block) Same(other Block) bool { return b.id == other.id }
