// Package stats computes the read-only aggregations behind each
// dashboard view. Every function takes the immutable snapshot slice
// and allocates its own result; nothing here mutates the catalog.
package stats

import (
	"sort"
	"time"

	"flickdash/internal/domain"
)

// Count is one row of a frequency table
type Count struct {
	Key string
	N   int
}

// Summary holds the overview metrics
type Summary struct {
	Total           int
	Movies          int
	Shows           int
	LatestYearAdded int
}

// Summarize computes the overview metric cards
func Summarize(titles []domain.Title) Summary {
	var s Summary
	s.Total = len(titles)
	for _, t := range titles {
		switch t.Type {
		case domain.TypeMovie:
			s.Movies++
		case domain.TypeShow:
			s.Shows++
		}
		if y := t.YearAdded(); y > s.LatestYearAdded {
			s.LatestYearAdded = y
		}
	}
	return s
}

// CountTypes returns the content-type distribution
func CountTypes(titles []domain.Title) []Count {
	counts := make(map[string]int)
	for _, t := range titles {
		counts[t.Type.String()]++
	}
	return sortedCounts(counts)
}

// TopRatings returns the n most common content ratings
func TopRatings(titles []domain.Title, n int) []Count {
	counts := make(map[string]int)
	for _, t := range titles {
		if t.Rating != "" {
			counts[t.Rating]++
		}
	}
	return head(sortedCounts(counts), n)
}

// GenreCounts returns the full genre frequency table.
// A title contributes once to each of its genres.
func GenreCounts(titles []domain.Title) []Count {
	counts := make(map[string]int)
	for _, t := range titles {
		for _, g := range t.Genres {
			counts[g]++
		}
	}
	return sortedCounts(counts)
}

// TopGenres returns the n most frequent genres
func TopGenres(titles []domain.Title, n int) []Count {
	return head(GenreCounts(titles), n)
}

// GenreInsights summarizes the genre frequency table
type GenreInsights struct {
	Unique       int
	Top          string
	TopCount     int
	MeanPerGenre float64
}

// SummarizeGenres computes the insight panel next to the genre chart
func SummarizeGenres(titles []domain.Title) GenreInsights {
	counts := GenreCounts(titles)
	var in GenreInsights
	in.Unique = len(counts)
	if len(counts) == 0 {
		return in
	}
	in.Top = counts[0].Key
	in.TopCount = counts[0].N
	total := 0
	for _, c := range counts {
		total += c.N
	}
	in.MeanPerGenre = round1(float64(total) / float64(len(counts)))
	return in
}

// YearCount is one point of the added-per-year trend
type YearCount struct {
	Year int
	N    int
}

// AddedByYear returns titles added per year, ascending by year.
// Titles with an unparsable date_added are excluded.
func AddedByYear(titles []domain.Title) []YearCount {
	counts := make(map[int]int)
	for _, t := range titles {
		if y := t.YearAdded(); y > 0 {
			counts[y]++
		}
	}
	out := make([]YearCount, 0, len(counts))
	for y, n := range counts {
		out = append(out, YearCount{Year: y, N: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// AddedByMonth returns titles added per calendar month.
// Index 0 = January; months with no additions stay zero so the chart
// axis always lines up with the calendar.
func AddedByMonth(titles []domain.Title) [12]int {
	var out [12]int
	for _, t := range titles {
		if m := t.MonthAdded(); m >= time.January && m <= time.December {
			out[m-1]++
		}
	}
	return out
}

// YearTypeCount is one point of the added-per-year-per-type trend
type YearTypeCount struct {
	Year   int
	Movies int
	Shows  int
}

// AddedByYearType returns the per-type growth series, ascending by year
func AddedByYearType(titles []domain.Title) []YearTypeCount {
	byYear := make(map[int]*YearTypeCount)
	for _, t := range titles {
		y := t.YearAdded()
		if y == 0 {
			continue
		}
		row, ok := byYear[y]
		if !ok {
			row = &YearTypeCount{Year: y}
			byYear[y] = row
		}
		if t.Type == domain.TypeMovie {
			row.Movies++
		} else {
			row.Shows++
		}
	}
	out := make([]YearTypeCount, 0, len(byYear))
	for _, row := range byYear {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// TopDirectors returns the n most prolific directors.
// Unknown markers ("Not Given", "Unknown", empty) are excluded before
// ranking so the table is always n real names when enough exist.
func TopDirectors(titles []domain.Title, n int) []Count {
	counts := make(map[string]int)
	for _, t := range titles {
		if t.DirectorKnown() {
			counts[t.Director]++
		}
	}
	return head(sortedCounts(counts), n)
}

// TopCountries returns the n countries with the most titles,
// counting each title's primary production country.
func TopCountries(titles []domain.Title, n int) []Count {
	counts := make(map[string]int)
	for _, t := range titles {
		if c := t.PrimaryCountry(); c != "" {
			counts[c]++
		}
	}
	return head(sortedCounts(counts), n)
}

// HistBin is one bucket of the title-length histogram
type HistBin struct {
	Lo, Hi int // character lengths [Lo, Hi)
	N      int
}

// TitleLengthHistogram buckets title lengths (in runes) for one type
func TitleLengthHistogram(titles []domain.Title, typ domain.TitleType, binWidth int) []HistBin {
	if binWidth <= 0 {
		binWidth = 5
	}
	counts := make(map[int]int)
	maxBin := -1
	for _, t := range titles {
		if t.Type != typ {
			continue
		}
		bin := len([]rune(t.Name)) / binWidth
		counts[bin]++
		if bin > maxBin {
			maxBin = bin
		}
	}
	if maxBin < 0 {
		return nil
	}
	out := make([]HistBin, 0, maxBin+1)
	for b := 0; b <= maxBin; b++ {
		out = append(out, HistBin{Lo: b * binWidth, Hi: (b + 1) * binWidth, N: counts[b]})
	}
	return out
}

// sortedCounts orders a frequency map descending by count, then
// ascending by key so results are deterministic.
func sortedCounts(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for k, n := range m {
		out = append(out, Count{Key: k, N: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N > out[j].N
		}
		return out[i].Key < out[j].Key
	})
	return out
}

func head(counts []Count, n int) []Count {
	if n < 0 {
		n = 0
	}
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

func round1(f float64) float64 {
	return float64(int(f*10+0.5)) / 10
}
