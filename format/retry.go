package format

import (
	"context"
	"log/slog"
	"time"

	"github.com/taxagent/taxagent"
)

// DefaultRetryDelays returns the backoff delays for chunk formatting
// retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// formatWithRetry attempts to format a chunk with backoff retry logic.
// One initial attempt plus one retry per delay.
func formatWithRetry(ctx context.Context, f taxagent.ChunkFormatter, req taxagent.ChunkRequest, delays []time.Duration, logger *slog.Logger) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		formatted, err := f.FormatChunk(ctx, req)
		if err == nil {
			return formatted, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		logger.Warn("retrying chunk",
			"chunk", req.Index+1,
			"attempt", attempt+2,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
