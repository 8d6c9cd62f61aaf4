// Package goldmark splits a Markdown corpus into heading-delimited
// sections using the goldmark AST.
package goldmark

import (
	"bytes"
	"strings"

	"github.com/taxagent/taxagent"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Ensure Splitter implements taxagent.Splitter at compile time.
var _ taxagent.Splitter = (*Splitter)(nil)

// Splitter splits Markdown into sections, one per heading. A section's
// content runs from the end of its heading line to the start of the next
// heading, regardless of level.
type Splitter struct {
	md goldmark.Markdown
}

// NewSplitter creates a new Splitter.
func NewSplitter() *Splitter {
	return &Splitter{
		md: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),
	}
}

type headingMark struct {
	level        int
	text         string
	lineStart    int // offset of the heading line's first byte
	contentStart int // offset just past the heading line
}

// Split parses markdown and returns its sections in document order.
// Content before the first heading is ignored, which also skips any
// artifact frontmatter.
func (s *Splitter) Split(markdown string) []taxagent.Section {
	if markdown == "" {
		return nil
	}

	src := []byte(markdown)
	doc := s.md.Parser().Parse(text.NewReader(src))

	var marks []headingMark
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if h.Lines().Len() == 0 {
			return ast.WalkSkipChildren, nil
		}

		seg := h.Lines().At(0)
		lineStart := 0
		if idx := bytes.LastIndexByte(src[:seg.Start], '\n'); idx >= 0 {
			lineStart = idx + 1
		}
		contentStart := len(src)
		if idx := bytes.IndexByte(src[seg.Stop:], '\n'); idx >= 0 {
			contentStart = seg.Stop + idx + 1
		}

		marks = append(marks, headingMark{
			level:        h.Level,
			text:         strings.TrimSpace(string(h.Text(src))),
			lineStart:    lineStart,
			contentStart: contentStart,
		})
		return ast.WalkSkipChildren, nil
	})

	if len(marks) == 0 {
		return nil
	}

	sections := make([]taxagent.Section, 0, len(marks))
	for i, m := range marks {
		end := len(src)
		if i+1 < len(marks) {
			end = marks[i+1].lineStart
		}
		content := strings.TrimSpace(string(src[m.contentStart:end]))

		sections = append(sections, taxagent.Section{
			Level:    m.level,
			Heading:  m.text,
			Content:  content,
			Citation: citationFor(m.text, content),
		})
	}
	return sections
}

// citationFor prefers the "Source:" line the conversion pipeline writes at
// the top of each section, falling back to parsing the heading.
func citationFor(heading, content string) string {
	first, _, _ := strings.Cut(content, "\n")
	if c, ok := strings.CutPrefix(first, "Source: "); ok {
		if c = strings.TrimSpace(c); c != "" {
			return c
		}
	}
	return taxagent.ExtractCitation(heading)
}
