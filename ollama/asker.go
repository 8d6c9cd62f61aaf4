package ollama

import (
	"context"

	"github.com/taxagent/taxagent"
)

// Ensure Asker implements taxagent.Asker at compile time.
var _ taxagent.Asker = (*Asker)(nil)

// Asker implements taxagent.Asker using a local Ollama model.
type Asker struct {
	client *Client
}

// NewAsker creates a new Asker.
func NewAsker(client *Client) *Asker {
	return &Asker{client: client}
}

// Ask answers a tax question using the given sections as context.
func (a *Asker) Ask(ctx context.Context, question string, sections []taxagent.ScoredSection) (string, error) {
	if question == "" {
		return "", taxagent.Errorf(taxagent.EINVALID, "question required")
	}
	if len(sections) == 0 {
		return "", taxagent.Errorf(taxagent.ENOTFOUND, "no relevant sections provided")
	}

	messages := []Message{
		{Role: "system", Content: taxagent.AskSystemInstruction},
		{Role: "user", Content: taxagent.BuildAskPrompt(question, sections)},
	}
	return a.client.Chat(ctx, messages)
}
