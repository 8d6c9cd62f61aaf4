// Package mock provides hand-written mocks for taxagent interfaces.
package mock

import (
	"io"

	"github.com/taxagent/taxagent"
)

var _ taxagent.Parser = (*Parser)(nil)

// Parser is a mock implementation of taxagent.Parser.
type Parser struct {
	ParseFn func(r io.Reader) (*taxagent.Node, error)
}

func (p *Parser) Parse(r io.Reader) (*taxagent.Node, error) {
	return p.ParseFn(r)
}
