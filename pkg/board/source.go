package board

// SectionSource is the capability a container implements to expose its
// child blocks for extraction.
//
// Detection is by interface satisfaction, not concrete type identity:
// every parameterization of a generic container (for example
// Section[string, Empty] and Section[content.Text, content.Text]) is a
// distinct type, yet all of them are recognized uniformly through this
// one method. The probe happens exactly once, inside [Wrap].
//
// Implementations must be deterministic and side-effect free: the same
// sequence is returned on every call, so flattening can re-extract during
// traversal without caching.
type SectionSource interface {
	// ExtractBlocks returns the container's child blocks in declaration
	// order. The returned slice must not be mutated by callers.
	ExtractBlocks() []Block
}

// SectionDecor is the optional capability a section container implements
// to expose its header and footer payloads to renderers. [Section]
// implements it; a custom [SectionSource] that does not is rendered with
// no header or footer.
type SectionDecor interface {
	SectionHeader() any
	SectionFooter() any
}

// Empty is the designated render-nothing marker for header and footer
// slots. Renderers skip payloads of this type.
type Empty struct{}
