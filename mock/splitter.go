package mock

import "github.com/taxagent/taxagent"

var _ taxagent.Splitter = (*Splitter)(nil)

// Splitter is a mock implementation of taxagent.Splitter.
type Splitter struct {
	SplitFn func(markdown string) []taxagent.Section
}

func (s *Splitter) Split(markdown string) []taxagent.Section {
	return s.SplitFn(markdown)
}
