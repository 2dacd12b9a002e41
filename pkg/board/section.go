package board

// Section is a container of child blocks decorated with a header and a
// footer. The type parameters are the header and footer payload types;
// every parameterization satisfies [SectionSource] and [SectionDecor] the
// same way, which is how [Wrap] recognizes sections without knowing the
// concrete shape.
//
// A Section is fixed at construction. There is no mutation API.
type Section[H, F any] struct {
	header H
	footer F
	blocks []Block
}

// NewSection creates a Section from a header payload, a footer payload,
// and zero or more child blocks. Any child count is valid, including
// zero; no validation is performed.
func NewSection[H, F any](header H, footer F, blocks ...Block) Section[H, F] {
	if blocks == nil {
		blocks = []Block{}
	}
	return Section[H, F]{header: header, footer: footer, blocks: blocks}
}

// TitledSection creates a Section whose header is a text label and whose
// footer renders nothing.
func TitledSection(title string, blocks ...Block) Section[string, Empty] {
	return NewSection(title, Empty{}, blocks...)
}

// ExtractBlocks returns the section's child blocks, in declaration order.
// Total; never returns nil.
func (s Section[H, F]) ExtractBlocks() []Block { return s.blocks }

// Header returns the header payload.
func (s Section[H, F]) Header() H { return s.header }

// Footer returns the footer payload.
func (s Section[H, F]) Footer() F { return s.footer }

// SectionHeader implements [SectionDecor].
func (s Section[H, F]) SectionHeader() any { return s.header }

// SectionFooter implements [SectionDecor].
func (s Section[H, F]) SectionFooter() any { return s.footer }
