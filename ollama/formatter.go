package ollama

import (
	"context"
	"fmt"
	"strings"

	"github.com/taxagent/taxagent"
)

// Ensure Formatter implements taxagent.ChunkFormatter at compile time.
var _ taxagent.ChunkFormatter = (*Formatter)(nil)

// Formatter implements taxagent.ChunkFormatter using a local Ollama model.
type Formatter struct {
	client *Client
}

// NewFormatter creates a new Formatter.
func NewFormatter(client *Client) *Formatter {
	return &Formatter{client: client}
}

// FormatChunk asks the model to reformat one chunk as proper Markdown,
// giving it the neighboring chunks for context.
func (f *Formatter) FormatChunk(ctx context.Context, req taxagent.ChunkRequest) (string, error) {
	if req.Current == "" {
		return "", taxagent.Errorf(taxagent.EINVALID, "chunk content required")
	}

	messages := []Message{
		{Role: "user", Content: BuildFormatPrompt(req)},
	}
	reply, err := f.client.Chat(ctx, messages)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(reply), nil
}

// BuildFormatPrompt builds the formatting prompt for one chunk.
func BuildFormatPrompt(req taxagent.ChunkRequest) string {
	var sb strings.Builder
	sb.WriteString("Format the following text as proper markdown.\n\n")
	if req.Existing != "" {
		fmt.Fprintf(&sb, "A previous formatting of this chunk exists; improve on it if possible:\n%s\n\n", req.Existing)
	}
	if req.Previous != "" {
		fmt.Fprintf(&sb, "Previous chunk (context only):\n%s\n\n", req.Previous)
	}
	fmt.Fprintf(&sb, "Current chunk (%d of %d):\n%s\n\n", req.Index+1, req.Total, req.Current)
	if req.Next != "" {
		fmt.Fprintf(&sb, "Next chunk (context only):\n%s\n\n", req.Next)
	}
	sb.WriteString("Return only the current chunk formatted as proper markdown. The previous and next chunks are provided for context.")
	return sb.String()
}
