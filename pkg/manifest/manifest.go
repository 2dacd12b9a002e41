// Package manifest loads boards from declarative YAML documents.
//
// A manifest is a pure construction front-end: it produces the same
// block tree the core consumes, through the same builder. The format is
// versioned; this package reads major version v1:
//
//	version: v1
//	board:
//	  - section:
//	      title: Account
//	      blocks:
//	        - text: Name
//	        - field: {label: Email, value: pat@example.com}
//	  - divider: true
//	  - text: Standalone note
//
// Sections nest arbitrarily deep; the one-level-of-structure rule is the
// core's concern, not the format's.
package manifest

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-board/board/pkg/board"
	"github.com/go-board/board/pkg/content"
)

// SupportedVersion is the manifest major version this package reads.
const SupportedVersion = "v1"

// ErrUnsupportedVersion is returned when a manifest declares a version
// whose major differs from [SupportedVersion].
var ErrUnsupportedVersion = errors.New("unsupported manifest version")

// Document is the top-level manifest shape.
type Document struct {
	Version string `yaml:"version"`
	Board   []Node `yaml:"board"`
}

// Node declares exactly one block: a text leaf, a field leaf, a divider,
// or a nested section.
type Node struct {
	Text    string       `yaml:"text,omitempty"`
	Field   *FieldNode   `yaml:"field,omitempty"`
	Divider bool         `yaml:"divider,omitempty"`
	Section *SectionNode `yaml:"section,omitempty"`
}

// FieldNode declares a labeled value leaf.
type FieldNode struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// SectionNode declares a section with a title header, an optional text
// footer, and child nodes.
type SectionNode struct {
	Title  string `yaml:"title"`
	Footer string `yaml:"footer,omitempty"`
	Blocks []Node `yaml:"blocks"`
}

// Load reads and parses a manifest file into a Board.
func Load(path string) (board.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return board.Board{}, fmt.Errorf("failed to read manifest: %w", err)
	}
	b, err := Parse(data)
	if err != nil {
		return board.Board{}, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// Parse decodes a manifest document and builds the Board it declares.
func Parse(data []byte) (board.Board, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return board.Board{}, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := checkVersion(doc.Version); err != nil {
		return board.Board{}, err
	}
	blocks, err := buildNodes(doc.Board, "board")
	if err != nil {
		return board.Board{}, err
	}
	return board.NewBoard(blocks...), nil
}

func checkVersion(version string) error {
	if version == "" {
		return errors.New("manifest is missing a version")
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("invalid manifest version %q", version)
	}
	if semver.Major(version) != SupportedVersion {
		return fmt.Errorf("%w: %s (want major %s)", ErrUnsupportedVersion, version, SupportedVersion)
	}
	return nil
}

// buildNodes converts declared nodes to blocks through the core builder.
// path names the node's location for error messages.
func buildNodes(nodes []Node, path string) ([]board.Block, error) {
	var b board.Builder
	for i, node := range nodes {
		at := fmt.Sprintf("%s[%d]", path, i)
		blk, err := buildNode(node, at)
		if err != nil {
			return nil, err
		}
		b.AddBlocks(blk)
	}
	return b.Build(), nil
}

func buildNode(node Node, at string) (board.Block, error) {
	if err := checkExclusive(node, at); err != nil {
		return board.Block{}, err
	}
	switch {
	case node.Section != nil:
		children, err := buildNodes(node.Section.Blocks, at+".section.blocks")
		if err != nil {
			return board.Block{}, err
		}
		if node.Section.Footer != "" {
			return board.Wrap(board.NewSection(node.Section.Title, node.Section.Footer, children...)), nil
		}
		return board.Wrap(board.TitledSection(node.Section.Title, children...)), nil
	case node.Field != nil:
		return board.Wrap(content.Field{Label: node.Field.Label, Value: node.Field.Value}), nil
	case node.Divider:
		return board.Wrap(content.Divider{}), nil
	default:
		return board.Wrap(content.Text{Content: node.Text}), nil
	}
}

// checkExclusive rejects nodes that declare more than one block kind.
func checkExclusive(node Node, at string) error {
	count := 0
	if node.Text != "" {
		count++
	}
	if node.Field != nil {
		count++
	}
	if node.Divider {
		count++
	}
	if node.Section != nil {
		count++
	}
	if count > 1 {
		return fmt.Errorf("%s: declares more than one block kind", at)
	}
	if count == 0 {
		return fmt.Errorf("%s: declares no block kind", at)
	}
	return nil
}
