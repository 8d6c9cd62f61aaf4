package taxagent

// Section is a heading-delimited unit of the Markdown corpus.
type Section struct {
	Level    int    `json:"level"`
	Heading  string `json:"heading"`
	Content  string `json:"content"`
	Citation string `json:"citation"`
}

// ScoredSection is a section ranked against a question.
type ScoredSection struct {
	Section Section `json:"section"`
	Score   int     `json:"score"`
}

// Splitter splits a Markdown corpus into sections.
type Splitter interface {
	// Split parses markdown and returns its heading-delimited sections in
	// document order. Content before the first heading is ignored.
	Split(markdown string) []Section
}

// Index finds sections of the corpus relevant to a question.
type Index interface {
	// Search returns up to limit sections matching the terms, ordered by
	// descending relevance. Ties keep document order. Sections matching no
	// term are not returned.
	Search(terms []string, limit int) []ScoredSection
}
