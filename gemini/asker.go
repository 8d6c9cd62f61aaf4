// Package gemini provides question answering backed by Google Gemini.
package gemini

import (
	"context"

	"github.com/taxagent/taxagent"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Asker implements taxagent.Asker at compile time.
var _ taxagent.Asker = (*Asker)(nil)

// Asker implements taxagent.Asker using Google Gemini.
type Asker struct {
	client *genai.Client
	model  string
}

// NewAsker creates a new Asker. An empty model selects DefaultModel.
func NewAsker(client *genai.Client, model string) *Asker {
	if model == "" {
		model = DefaultModel
	}
	return &Asker{client: client, model: model}
}

// Ask answers a tax question using the given sections as context.
func (a *Asker) Ask(ctx context.Context, question string, sections []taxagent.ScoredSection) (string, error) {
	if question == "" {
		return "", taxagent.Errorf(taxagent.EINVALID, "question required")
	}
	if len(sections) == 0 {
		return "", taxagent.Errorf(taxagent.ENOTFOUND, "no relevant sections provided")
	}

	prompt := taxagent.BuildAskPrompt(question, sections)

	result, err := a.client.Models.GenerateContent(ctx, a.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", taxagent.Errorf(taxagent.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: taxagent.AskSystemInstruction,
			}},
		},
		Temperature: &temp,
	}
}
