package taxagent

import (
	"regexp"
	"strings"
)

var (
	sectionRe     = regexp.MustCompile(`§(\d+[A-Za-z]*)(?:\([^)]+\))*`)
	headingMarkRe = regexp.MustCompile(`^#{1,6}\s+`)
)

// ExtractCitation derives a citation string from a section heading.
// "## §63(c) Standard Deduction" becomes "26 USC §63(c) [Standard Deduction]".
// Headings without a section number fall back to "US Tax Code [<heading>]".
func ExtractCitation(heading string) string {
	clean := headingMarkRe.ReplaceAllString(strings.TrimSpace(heading), "")

	m := sectionRe.FindString(clean)
	if m == "" {
		if clean == "" {
			return "US Tax Code"
		}
		return "US Tax Code [" + clean + "]"
	}

	text := strings.TrimSpace(strings.Replace(clean, m, "", 1))
	if text == "" {
		return "26 USC " + m
	}
	return "26 USC " + m + " [" + text + "]"
}
