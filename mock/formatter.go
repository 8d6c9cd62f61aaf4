package mock

import (
	"context"

	"github.com/taxagent/taxagent"
)

var _ taxagent.ChunkFormatter = (*ChunkFormatter)(nil)

// ChunkFormatter is a mock implementation of taxagent.ChunkFormatter.
type ChunkFormatter struct {
	FormatChunkFn func(ctx context.Context, req taxagent.ChunkRequest) (string, error)
}

func (f *ChunkFormatter) FormatChunk(ctx context.Context, req taxagent.ChunkRequest) (string, error) {
	return f.FormatChunkFn(ctx, req)
}
