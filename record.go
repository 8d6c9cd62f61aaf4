package taxagent

import "strings"

// SectionRecord is the flattened representation of one addressable unit of
// the tax code. Records are produced by Flatten and consumed by Render;
// they are never persisted.
type SectionRecord struct {
	// CitationPath is the ordered sequence of identifiers from the document
	// root to this node, e.g. ["26", "63", "c", "7", "A"].
	CitationPath []string

	// Kinds parallels CitationPath with the structural kind of each level.
	// The citation formatter needs it to tell organizational levels
	// (title, chapter) apart from sectional ones.
	Kinds []Kind

	// Depth is the hierarchy level, used for heading-level mapping.
	Depth int

	Heading string
	Blocks  []string
}

// Body returns the record's body blocks joined by blank lines.
func (r *SectionRecord) Body() string {
	return strings.Join(r.Blocks, "\n\n")
}

// Citation returns the record's citation string, e.g. "26 USC §63(c)(7)(A)".
// The title identifier becomes the "<n> USC" prefix, organizational levels
// (chapters, subchapters) are omitted, the section identifier follows the
// section mark and deeper identifiers are parenthesized. When the tree has
// no title node the Title 26 prefix is assumed.
func (r *SectionRecord) Citation() string {
	title := "26"
	var b strings.Builder
	sectional := false
	for i, id := range r.CitationPath {
		kind := KindUnknown
		if i < len(r.Kinds) {
			kind = r.Kinds[i]
		}
		switch {
		case kind == KindTitle:
			title = id
		case kind == KindChapter || kind == KindDocument:
			// organizational, not part of the citation string
		case !sectional:
			b.WriteString("§")
			b.WriteString(id)
			sectional = true
		default:
			b.WriteString("(")
			b.WriteString(id)
			b.WriteString(")")
		}
	}
	if b.Len() == 0 {
		return title + " USC"
	}
	return title + " USC " + b.String()
}

// HeadingText returns the record's heading, falling back to the citation
// string when the source carried no heading.
func (r *SectionRecord) HeadingText() string {
	if r.Heading != "" {
		return r.Heading
	}
	return r.Citation()
}
