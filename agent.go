package taxagent

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxRelevantSections caps the number of sections passed to the model.
const maxRelevantSections = 3

// noAnswerMessage is returned when no section of the corpus matches the
// question's key terms.
const noAnswerMessage = "I couldn't find specific information about that in the tax code. Please try rephrasing your question or ask something more specific about tax regulations."

// Exchange is one question/answer pair in a conversation.
type Exchange struct {
	ID       string    `json:"id"`
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	AskedAt  time.Time `json:"askedAt"`
}

// Agent answers tax questions against an indexed Markdown corpus, keeping
// an append-only conversation history. Only one question is in flight at a
// time; Agent is not safe for concurrent use.
type Agent struct {
	index   Index
	asker   Asker
	history []Exchange
}

// NewAgent creates an Agent over the given corpus index and asker backend.
func NewAgent(index Index, asker Asker) *Agent {
	return &Agent{index: index, asker: asker}
}

// Query answers a tax question, recording the exchange in the history.
// The answer always ends with at least one "Source:" citation when any
// relevant section was found.
func (a *Agent) Query(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", Errorf(EINVALID, "question required")
	}

	terms := ExtractKeyTerms(question)
	sections := a.index.Search(terms, maxRelevantSections)

	answer := noAnswerMessage
	if len(sections) > 0 {
		got, err := a.asker.Ask(ctx, question, sections)
		if err != nil {
			return "", err
		}
		answer = got
		if !strings.Contains(answer, "Source:") {
			answer += "\n\nSource: " + sections[0].Section.Citation
		}
	}

	a.history = append(a.history, Exchange{
		ID:       uuid.NewString(),
		Question: question,
		Answer:   answer,
		AskedAt:  time.Now(),
	})

	return answer, nil
}

// History returns a copy of the conversation history in order.
func (a *Agent) History() []Exchange {
	return append([]Exchange(nil), a.history...)
}
