package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flickdash/internal/domain"
)

func TestTitleWords(t *testing.T) {
	titles := []domain.Title{
		{Name: "The Dark Knight", Type: domain.TypeMovie},
		{Name: "Dark Waters", Type: domain.TypeMovie},
		{Name: "Love & War: Dark Days", Type: domain.TypeMovie},
		{Name: "Dark Desire", Type: domain.TypeShow},
	}

	words := TitleWords(titles, domain.TypeMovie, 0)

	require.NotEmpty(t, words)
	assert.Equal(t, Count{Key: "dark", N: 3}, words[0], "only movie titles count")

	for _, w := range words {
		assert.NotEqual(t, "the", w.Key, "stopwords are excluded")
		assert.GreaterOrEqual(t, len(w.Key), 2)
	}
}

func TestTitleWordsTokenization(t *testing.T) {
	titles := []domain.Title{
		{Name: "Ocean's 11: Re-Match!", Type: domain.TypeMovie},
	}

	words := TitleWords(titles, domain.TypeMovie, 0)

	keys := make([]string, len(words))
	for i, w := range words {
		keys[i] = w.Key
	}
	// Punctuation splits tokens; single letters ("s") are dropped
	assert.ElementsMatch(t, []string{"ocean", "11", "re", "match"}, keys)
}

func TestTitleWordsMinLengthIsRunes(t *testing.T) {
	titles := []domain.Title{
		{Name: "É Øl Saga", Type: domain.TypeMovie},
	}

	words := TitleWords(titles, domain.TypeMovie, 0)

	keys := make([]string, len(words))
	for i, w := range words {
		keys[i] = w.Key
	}
	// "é" is one rune (two bytes) and stays excluded; "øl" counts two
	assert.ElementsMatch(t, []string{"øl", "saga"}, keys)
}

func TestTitleWordsCap(t *testing.T) {
	var titles []domain.Title
	names := []string{
		"Winter Storm", "Summer Heat", "Autumn Rain", "Spring Bloom",
		"Night City", "Morning Light",
	}
	for _, n := range names {
		titles = append(titles, domain.Title{Name: n, Type: domain.TypeMovie})
	}

	words := TitleWords(titles, domain.TypeMovie, 3)
	assert.Len(t, words, 3)

	// max <= 0 falls back to the default cap
	words = TitleWords(titles, domain.TypeMovie, -1)
	assert.Len(t, words, 12)
}

func TestTitleWordsEmpty(t *testing.T) {
	assert.Empty(t, TitleWords(nil, domain.TypeMovie, 0))
}
