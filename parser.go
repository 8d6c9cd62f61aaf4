package taxagent

import "io"

// Parser loads a legal-code XML document into a Node tree.
type Parser interface {
	// Parse reads an XML document and returns the root of the parsed tree.
	// Returns EMALFORMED if the document is not well-formed or a structural
	// element lacks its identifier.
	Parse(r io.Reader) (*Node, error)
}
