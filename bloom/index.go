// Package bloom provides a keyword index over corpus sections, using Bloom
// filters to prescreen candidates before exact scoring.
package bloom

import (
	"sort"
	"strings"
	"unicode"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/taxagent/taxagent"
)

// fpRate is the acceptable false positive rate for the per-section
// filters. A false positive only costs one exact scoring pass.
const fpRate = 0.01

// minFilterSize keeps filters for tiny sections from degenerating.
const minFilterSize = 64

// contentPreview bounds how much section content is handed to the model.
const contentPreview = 500

// Ensure Index implements taxagent.Index at compile time.
var _ taxagent.Index = (*Index)(nil)

// Index holds one Bloom filter of lowercased words per section. Search
// tests terms against the filters first and scores only sections that
// might match, so most of the corpus is skipped without a text scan.
type Index struct {
	sections []taxagent.Section
	filters  []*bloom.BloomFilter
}

// NewIndex builds an index over the given sections.
func NewIndex(sections []taxagent.Section) *Index {
	idx := &Index{
		sections: sections,
		filters:  make([]*bloom.BloomFilter, len(sections)),
	}
	for i, s := range sections {
		words := tokenize(s.Heading + " " + s.Content)
		n := uint(len(words))
		if n < minFilterSize {
			n = minFilterSize
		}
		f := bloom.NewWithEstimates(n, fpRate)
		for _, w := range words {
			f.AddString(w)
		}
		idx.filters[i] = f
	}
	return idx
}

// Search returns up to limit sections matching the terms, ordered by
// descending score. Ties keep document order. False positives from the
// prescreen are eliminated by the exact scoring pass.
func (idx *Index) Search(terms []string, limit int) []taxagent.ScoredSection {
	if len(terms) == 0 || limit <= 0 {
		return nil
	}

	lowered := make([]string, len(terms))
	for i, t := range terms {
		lowered[i] = strings.ToLower(t)
	}

	var scored []taxagent.ScoredSection
	for i, f := range idx.filters {
		candidate := false
		for _, t := range lowered {
			if f.TestString(t) {
				candidate = true
				break
			}
		}
		if !candidate {
			continue
		}

		s := idx.sections[i]
		haystack := strings.ToLower(s.Heading + " " + s.Content)
		score := 0
		for _, t := range lowered {
			if strings.Contains(haystack, t) {
				score++
			}
		}
		if score == 0 {
			continue
		}

		if len(s.Content) > contentPreview {
			s.Content = s.Content[:contentPreview]
		}
		scored = append(scored, taxagent.ScoredSection{Section: s, Score: score})
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}

// tokenize lowercases text and splits it into letter/digit runs.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
