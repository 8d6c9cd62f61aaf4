package mock

import (
	"context"

	"github.com/taxagent/taxagent"
)

var _ taxagent.Asker = (*Asker)(nil)

// Asker is a mock implementation of taxagent.Asker.
type Asker struct {
	AskFn func(ctx context.Context, question string, sections []taxagent.ScoredSection) (string, error)
}

func (a *Asker) Ask(ctx context.Context, question string, sections []taxagent.ScoredSection) (string, error) {
	return a.AskFn(ctx, question, sections)
}
