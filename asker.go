package taxagent

import "context"

// Asker provides natural language question answering over the tax code.
type Asker interface {
	// Ask answers a tax question using the given relevant sections as
	// context. Returns EINVALID if the question is empty.
	Ask(ctx context.Context, question string, sections []ScoredSection) (string, error)
}
