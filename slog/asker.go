package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/taxagent/taxagent"
)

// Ensure LoggingAsker implements taxagent.Asker at compile time.
var _ taxagent.Asker = (*LoggingAsker)(nil)

// LoggingAsker wraps an Asker with timing and error logging.
type LoggingAsker struct {
	next   taxagent.Asker
	logger *slog.Logger
}

// NewLoggingAsker creates a new LoggingAsker.
func NewLoggingAsker(next taxagent.Asker, logger *slog.Logger) *LoggingAsker {
	return &LoggingAsker{next: next, logger: logger}
}

// Ask delegates to the wrapped asker, logging the outcome.
func (a *LoggingAsker) Ask(ctx context.Context, question string, sections []taxagent.ScoredSection) (string, error) {
	begin := time.Now()
	answer, err := a.next.Ask(ctx, question, sections)
	if err != nil {
		a.logger.Error("ask failed",
			"question", question,
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	a.logger.Info("answered question",
		"question", question,
		"sections", len(sections),
		"duration", time.Since(begin),
		"answer_bytes", len(answer),
	)
	return answer, nil
}
