package stats

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"flickdash/internal/domain"
)

// MaxCloudWords caps the word cloud size
const MaxCloudWords = 100

// stopwords excluded from title word frequencies
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true,
	"at": true, "be": true, "by": true, "de": true, "do": true,
	"el": true, "for": true, "from": true, "he": true, "her": true,
	"his": true, "how": true, "in": true, "is": true, "it": true,
	"its": true, "la": true, "las": true, "le": true, "los": true,
	"my": true, "no": true, "not": true, "of": true, "on": true,
	"or": true, "our": true, "she": true, "that": true, "the": true,
	"their": true, "this": true, "to": true, "up": true, "was": true,
	"we": true, "what": true, "when": true, "who": true, "why": true,
	"with": true, "you": true, "your": true,
}

// TitleWords computes word frequencies across all titles of one type.
// Words are lowercased letter/digit runs, minimum two characters,
// stopwords removed; at most max words are returned, descending by
// count with ties broken by word.
func TitleWords(titles []domain.Title, typ domain.TitleType, max int) []Count {
	if max <= 0 {
		max = MaxCloudWords
	}
	counts := make(map[string]int)
	for _, t := range titles {
		if t.Type != typ {
			continue
		}
		for _, w := range splitWords(t.Name) {
			if utf8.RuneCountInString(w) < 2 || stopwords[w] {
				continue
			}
			counts[w]++
		}
	}
	return head(sortedCounts(counts), max)
}

// splitWords tokenizes a title into lowercase letter/digit runs
func splitWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
