package taxagent

import (
	"context"
	"strings"
)

// SplitByParagraphs splits text at paragraph boundaries into chunks no
// larger than maxChunkSize, except when a single paragraph exceeds the
// limit on its own. Paragraph order and content are preserved.
func SplitByParagraphs(text string, maxChunkSize int) []string {
	paragraphs := strings.Split(text, "\n\n")

	var chunks []string
	var current strings.Builder

	for _, para := range paragraphs {
		if current.Len() > 0 && current.Len()+len(para)+2 > maxChunkSize {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(para)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}

// ChunkRequest is one chunk of a Markdown document to be reformatted,
// with its neighbors for context.
type ChunkRequest struct {
	Index int
	Total int

	// Previous and Next give the model surrounding context; only Current
	// is reformatted.
	Previous string
	Current  string
	Next     string

	// Existing holds a prior formatting of this chunk, if any.
	Existing string
}

// ChunkFormatter reformats one chunk of a Markdown document.
type ChunkFormatter interface {
	FormatChunk(ctx context.Context, req ChunkRequest) (string, error)
}
