package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flickdash/internal/stats"
	"flickdash/internal/tui/styles"
)

func TestRenderBarChart(t *testing.T) {
	counts := []stats.Count{
		{Key: "Dramas", N: 30},
		{Key: "Comedies", N: 15},
		{Key: "Documentaries", N: 1},
	}

	out := RenderBarChart("Top Genres", counts, 60, styles.BarStyle)

	assert.Contains(t, out, "Top Genres")
	assert.Contains(t, out, "Dramas")
	assert.Contains(t, out, "30")
	assert.Contains(t, out, "█")
	assert.Len(t, strings.Split(out, "\n"), 4, "title plus one row per count")
}

func TestRenderBarChartEmpty(t *testing.T) {
	out := RenderBarChart("Empty", nil, 60, styles.BarStyle)
	assert.Contains(t, out, "no data")
}

func TestRenderBarChartNarrowWidth(t *testing.T) {
	counts := []stats.Count{{Key: "An Extremely Long Genre Label", N: 5}}
	assert.NotPanics(t, func() {
		RenderBarChart("", counts, 10, styles.BarStyle)
	})
}

func TestRenderProportionBar(t *testing.T) {
	counts := []stats.Count{
		{Key: "Movie", N: 3},
		{Key: "TV Show", N: 1},
	}

	out := RenderProportionBar("Split", counts, 40)

	assert.Contains(t, out, "75.0%")
	assert.Contains(t, out, "25.0%")
	assert.Contains(t, out, "Movie")
	assert.Contains(t, out, "TV Show")
}

func TestRenderProportionBarEmpty(t *testing.T) {
	out := RenderProportionBar("Split", nil, 40)
	assert.Contains(t, out, "no data")
}

func TestRenderYearTrend(t *testing.T) {
	series := []stats.YearCount{
		{Year: 2019, N: 5},
		{Year: 2020, N: 10},
	}

	out := RenderYearTrend("Per Year", series, 60)

	assert.Contains(t, out, "2019")
	assert.Contains(t, out, "2020")
	assert.Contains(t, out, "10")
}

func TestRenderMonthTrend(t *testing.T) {
	var months [12]int
	months[0] = 7

	out := RenderMonthTrend("Per Month", months, 60)

	assert.Contains(t, out, "Jan")
	assert.Contains(t, out, "Dec", "zero months still render")
	assert.Contains(t, out, "7")
}

func TestRenderTypeTrend(t *testing.T) {
	series := []stats.YearTypeCount{
		{Year: 2020, Movies: 6, Shows: 2},
		{Year: 2021, Movies: 1, Shows: 9},
	}

	out := RenderTypeTrend("Growth", series, 60)

	assert.Contains(t, out, "2020")
	assert.Contains(t, out, "Movies")
	assert.Contains(t, out, "TV Shows")
	assert.Contains(t, out, "8", "rows show the combined total")
}

func TestRenderTypeTrendEmpty(t *testing.T) {
	out := RenderTypeTrend("Growth", nil, 60)
	assert.Contains(t, out, "no data")
}

func TestRenderTreemap(t *testing.T) {
	counts := []stats.Count{
		{Key: "United States", N: 300},
		{Key: "India", N: 100},
		{Key: "United Kingdom", N: 50},
	}

	out := RenderTreemap("Countries", counts, 60, 10)

	assert.Contains(t, out, "Countries")
	assert.Contains(t, out, "United States")
	assert.Contains(t, out, "300")
	require.GreaterOrEqual(t, len(strings.Split(out, "\n")), 10)
}

func TestRenderTreemapDegenerate(t *testing.T) {
	assert.Contains(t, RenderTreemap("X", nil, 60, 10), "no data")

	assert.NotPanics(t, func() {
		RenderTreemap("X", []stats.Count{{Key: "A", N: 0}, {Key: "B", N: 0}}, 60, 10)
		RenderTreemap("X", []stats.Count{{Key: "Solo", N: 5}}, 3, 1)
	})
}

func TestRenderWordCloud(t *testing.T) {
	words := []stats.Count{
		{Key: "love", N: 40},
		{Key: "christmas", N: 20},
		{Key: "story", N: 2},
	}

	out := RenderWordCloud("Words", words, 40)

	assert.Contains(t, out, "love(40)", "heaviest words carry their count")
	assert.Contains(t, out, "christmas")
	assert.Contains(t, out, "story")
}

func TestRenderWordCloudWraps(t *testing.T) {
	words := []stats.Count{
		{Key: "aaaaaaaaaa", N: 3},
		{Key: "bbbbbbbbbb", N: 2},
		{Key: "cccccccccc", N: 1},
	}

	out := RenderWordCloud("", words, 15)
	assert.GreaterOrEqual(t, len(strings.Split(out, "\n")), 3)
}

func TestRenderWordCloudEmpty(t *testing.T) {
	out := RenderWordCloud("Words", nil, 40)
	assert.Contains(t, out, "no data")
}

func TestRenderHistogram(t *testing.T) {
	bins := []stats.HistBin{
		{Lo: 0, Hi: 5, N: 2},
		{Lo: 5, Hi: 10, N: 8},
	}

	out := RenderHistogram("Lengths", bins, 60)

	assert.Contains(t, out, "0-4")
	assert.Contains(t, out, "5-9")
	assert.Contains(t, out, "8")
}

func TestRenderMetricCards(t *testing.T) {
	out := RenderMetricCards([]Metric{
		IntMetric("Total Titles", 8807),
		{Label: "Latest Year", Value: "2021"},
	}, 60)

	assert.Contains(t, out, "8,807")
	assert.Contains(t, out, "Total Titles")
	assert.Contains(t, out, "2021")

	assert.Empty(t, RenderMetricCards(nil, 60))
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "0", groupDigits(0))
	assert.Equal(t, "999", groupDigits(999))
	assert.Equal(t, "1,000", groupDigits(1000))
	assert.Equal(t, "8,807", groupDigits(8807))
	assert.Equal(t, "1,234,567", groupDigits(1234567))
	assert.Equal(t, "-12,345", groupDigits(-12345))
}
