package index

import "strings"

// Stop words dropped during normalization. Queries and documents share this
// list so lexical matching stays consistent between indexing and search.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true,
}

// Tokenize splits text into normalized index terms: lowercased, punctuation
// trimmed, stop words removed. The same rules apply to document content at
// build time and to query strings at search time.
func Tokenize(text string) []string {
	words := strings.Fields(text)
	terms := make([]string, 0, len(words))

	for _, word := range words {
		cleaned := strings.ToLower(strings.Trim(word, ".,!?;:'\"-()[]{}"))

		if cleaned != "" && !stopWords[cleaned] {
			terms = append(terms, cleaned)
		}
	}

	return terms
}

// IsStopWord reports whether a normalized term is filtered during tokenization.
func IsStopWord(term string) bool {
	return stopWords[term]
}
