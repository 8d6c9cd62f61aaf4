package taxagent

import "strings"

// maxHeadingLevel is the deepest Markdown heading level.
const maxHeadingLevel = 6

// Render serializes section records into a Markdown document. It is a pure
// function: the same input sequence always produces byte-identical output.
//
// Each record renders as a heading whose level is min(depth, 6), a
// "Source:" citation line, and the body blocks separated by blank lines.
// Record blocks are separated by exactly one blank line and the document
// ends with a single trailing newline.
func Render(records []SectionRecord) string {
	if len(records) == 0 {
		return ""
	}

	var b strings.Builder
	for i := range records {
		r := &records[i]
		if i > 0 {
			b.WriteString("\n")
		}

		level := r.Depth
		if level > maxHeadingLevel {
			level = maxHeadingLevel
		}
		if level < 1 {
			level = 1
		}
		b.WriteString(strings.Repeat("#", level))
		b.WriteString(" ")
		b.WriteString(r.HeadingText())
		b.WriteString("\n")

		b.WriteString("Source: ")
		b.WriteString(r.Citation())
		b.WriteString("\n")

		for _, block := range r.Blocks {
			b.WriteString("\n")
			b.WriteString(block)
			b.WriteString("\n")
		}
	}

	return b.String()
}
