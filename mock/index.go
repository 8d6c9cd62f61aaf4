package mock

import "github.com/taxagent/taxagent"

var _ taxagent.Index = (*Index)(nil)

// Index is a mock implementation of taxagent.Index.
type Index struct {
	SearchFn func(terms []string, limit int) []taxagent.ScoredSection
}

func (i *Index) Search(terms []string, limit int) []taxagent.ScoredSection {
	return i.SearchFn(terms, limit)
}
