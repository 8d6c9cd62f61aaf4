package taxagent

import "strings"

// Kind is the structural kind of a legal-document node.
type Kind int

// Structural kinds, ordered from outermost to innermost. KindUnknown marks
// tags outside the schema table; their text is folded into the nearest
// enclosing structural node rather than producing a node of their own.
const (
	KindUnknown Kind = iota
	KindDocument
	KindTitle
	KindChapter
	KindSection
	KindSubsection
	KindParagraph
	KindSubparagraph
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindTitle:
		return "title"
	case KindChapter:
		return "chapter"
	case KindSection:
		return "section"
	case KindSubsection:
		return "subsection"
	case KindParagraph:
		return "paragraph"
	case KindSubparagraph:
		return "subparagraph"
	default:
		return "unknown"
	}
}

// kindForTag is the fixed schema table mapping XML tag names to structural
// kinds. Subchapters and parts are grouped with chapters: they are purely
// organizational and never carry a section citation of their own.
var kindForTag = map[string]Kind{
	"uscDoc":       KindDocument,
	"title":        KindTitle,
	"chapter":      KindChapter,
	"subchapter":   KindChapter,
	"part":         KindChapter,
	"subpart":      KindChapter,
	"subtitle":     KindChapter,
	"section":      KindSection,
	"subsection":   KindSubsection,
	"paragraph":    KindParagraph,
	"subparagraph": KindSubparagraph,
}

// KindForTag maps an XML tag name to its structural kind.
// Unrecognized tags map to KindUnknown.
func KindForTag(tag string) Kind {
	return kindForTag[tag]
}

// Sectional reports whether nodes of this kind are addressable units that
// produce output records (section or deeper).
func (k Kind) Sectional() bool {
	return k >= KindSection
}

// Node is a node in the parsed legal-document tree.
type Node struct {
	Kind       Kind
	Identifier string // normalized citation fragment, e.g. "26", "63", "c"
	Heading    string
	Blocks     []string // body text blocks in reading order
	Children   []*Node  // ordered as in the source document
}

// AddBlock appends a body text block, dropping empty blocks.
func (n *Node) AddBlock(block string) {
	if block == "" {
		return
	}
	n.Blocks = append(n.Blocks, block)
}

// Body returns the node's body text blocks joined by blank lines.
func (n *Node) Body() string {
	return strings.Join(n.Blocks, "\n\n")
}

// HasBody reports whether the node carries any body text.
func (n *Node) HasBody() bool {
	return len(n.Blocks) > 0
}

// NormalizeWhitespace collapses runs of whitespace to a single space and
// trims leading and trailing whitespace.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeIdentifier strips citation decoration from an identifier:
// section marks, enclosing parentheses, trailing dots and whitespace.
// "§ 63." becomes "63" and "(c)" becomes "c".
func NormalizeIdentifier(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "§")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, ".")
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}
