// Package slog provides logging decorators for taxagent services.
package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/taxagent/taxagent"
)

// Ensure LoggingParser implements taxagent.Parser at compile time.
var _ taxagent.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with timing and error logging.
type LoggingParser struct {
	next   taxagent.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next taxagent.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser, logging the outcome.
func (p *LoggingParser) Parse(r io.Reader) (*taxagent.Node, error) {
	begin := time.Now()
	root, err := p.next.Parse(r)
	if err != nil {
		p.logger.Error("parse failed",
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	p.logger.Info("parsed document",
		"duration", time.Since(begin),
		"nodes", countNodes(root),
	)
	return root, nil
}

func countNodes(n *taxagent.Node) int {
	if n == nil {
		return 0
	}
	count := 1
	for _, c := range n.Children {
		count += countNodes(c)
	}
	return count
}
