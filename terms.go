package taxagent

import "strings"

// taxTerms is the fixed vocabulary used to match questions against the
// corpus before falling back to generic word extraction.
var taxTerms = []string{
	"deduction",
	"credit",
	"income",
	"tax",
	"filing",
	"return",
	"dependent",
	"exemption",
	"liability",
	"asset",
	"charitable",
	"business",
	"expense",
	"capital",
	"gain",
	"loss",
	"dividend",
	"interest",
	"retirement",
	"IRA",
	"401k",
	"estate",
	"gift",
}

// stopWords are question words excluded by the fallback extraction.
var stopWords = map[string]bool{
	"what":  true,
	"where": true,
	"when":  true,
	"which": true,
	"there": true,
	"their": true,
	"about": true,
}

// ExtractKeyTerms extracts tax-related terms from a question. If no term
// from the tax vocabulary appears, it falls back to the question's words
// longer than four characters, minus common question words.
func ExtractKeyTerms(question string) []string {
	lower := strings.ToLower(question)

	var found []string
	for _, term := range taxTerms {
		if strings.Contains(lower, strings.ToLower(term)) {
			found = append(found, term)
		}
	}
	if len(found) > 0 {
		return found
	}

	for _, word := range strings.Fields(question) {
		word = strings.Trim(word, ".,?!;:\"'()")
		if len(word) <= 4 || stopWords[strings.ToLower(word)] {
			continue
		}
		found = append(found, word)
	}
	return found
}
