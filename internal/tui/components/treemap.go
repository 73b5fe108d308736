package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"flickdash/internal/stats"
	"flickdash/internal/tui/styles"
)

// Treemap cell fills
var treemapColors = []lipgloss.Color{
	lipgloss.Color("#7F1D1D"),
	lipgloss.Color("#1E3A8A"),
	lipgloss.Color("#991B1B"),
	lipgloss.Color("#1D4ED8"),
	lipgloss.Color("#B91C1C"),
	lipgloss.Color("#374151"),
	lipgloss.Color("#DC2626"),
	lipgloss.Color("#4B5563"),
}

type tmRect struct {
	x, y, w, h int
}

// RenderTreemap renders the counts as a text treemap: the drawing
// area is split recursively by weight along the longer axis, each
// region is filled with a distinct background and labeled with its
// key and count where they fit.
func RenderTreemap(title string, counts []stats.Count, width, height int) string {
	var b strings.Builder

	if title != "" {
		b.WriteString(styles.AccentStyle.Render(title))
		b.WriteString("\n")
	}

	if len(counts) == 0 {
		b.WriteString(styles.DimStyle.Render("no data"))
		return b.String()
	}
	if width < 10 {
		width = 10
	}
	if height < 4 {
		height = 4
	}

	// grid[y][x] = index into counts, -1 = unassigned
	grid := make([][]int, height)
	for y := range grid {
		grid[y] = make([]int, width)
		for x := range grid[y] {
			grid[y][x] = -1
		}
	}

	rects := make([]tmRect, len(counts))
	layoutTreemap(counts, 0, tmRect{0, 0, width, height}, grid, rects)

	// Paint labels into the cells where they fit
	labels := make([][]rune, height)
	for y := range labels {
		labels[y] = make([]rune, width)
	}
	for i, r := range rects {
		if r.w < 3 || r.h < 1 {
			continue
		}
		writeLabel(labels, r, styles.Truncate(counts[i].Key, r.w-2), 0)
		writeLabel(labels, r, styles.Truncate(fmt.Sprintf("%d", counts[i].N), r.w-2), 1)
	}

	for y := 0; y < height; y++ {
		b.WriteString("\n")
		x := 0
		for x < width {
			idx := grid[y][x]
			run := x
			for run < width && grid[y][run] == idx {
				run++
			}
			seg := make([]rune, 0, run-x)
			for i := x; i < run; i++ {
				if labels[y][i] != 0 {
					seg = append(seg, labels[y][i])
				} else {
					seg = append(seg, ' ')
				}
			}
			style := lipgloss.NewStyle().Foreground(styles.White)
			if idx >= 0 {
				style = style.Background(treemapColors[idx%len(treemapColors)])
			}
			b.WriteString(style.Render(string(seg)))
			x = run
		}
	}

	return b.String()
}

// layoutTreemap recursively splits the rect between counts[offset:]
// by weight. offset tracks each leaf's index in the original slice.
func layoutTreemap(counts []stats.Count, offset int, r tmRect, grid [][]int, rects []tmRect) {
	if len(counts) == 0 || r.w <= 0 || r.h <= 0 {
		return
	}
	if len(counts) == 1 {
		fillRect(grid, r, offset)
		rects[offset] = r
		return
	}

	// Split the list into two groups of roughly equal weight
	total := 0
	for _, c := range counts {
		total += c.N
	}
	if total <= 0 {
		total = len(counts) // degenerate: equal weights
	}
	acc := 0
	split := 1
	for i, c := range counts {
		if acc > 0 && acc+c.N > total/2 {
			split = i
			break
		}
		acc += c.N
		split = i + 1
	}
	if split <= 0 {
		split = 1
	}
	if split >= len(counts) {
		split = len(counts) - 1
	}
	left := 0
	for _, c := range counts[:split] {
		left += c.N
	}

	// Split the rect along its longer axis, proportional to weight
	if r.w >= r.h {
		lw := r.w * left / total
		if lw < 1 {
			lw = 1
		}
		if lw >= r.w {
			lw = r.w - 1
		}
		layoutTreemap(counts[:split], offset, tmRect{r.x, r.y, lw, r.h}, grid, rects)
		layoutTreemap(counts[split:], offset+split, tmRect{r.x + lw, r.y, r.w - lw, r.h}, grid, rects)
	} else {
		lh := r.h * left / total
		if lh < 1 {
			lh = 1
		}
		if lh >= r.h {
			lh = r.h - 1
		}
		layoutTreemap(counts[:split], offset, tmRect{r.x, r.y, r.w, lh}, grid, rects)
		layoutTreemap(counts[split:], offset+split, tmRect{r.x, r.y + lh, r.w, r.h - lh}, grid, rects)
	}
}

func fillRect(grid [][]int, r tmRect, idx int) {
	for y := r.y; y < r.y+r.h && y < len(grid); y++ {
		for x := r.x; x < r.x+r.w && x < len(grid[y]); x++ {
			grid[y][x] = idx
		}
	}
}

func writeLabel(labels [][]rune, r tmRect, text string, line int) {
	y := r.y + line
	if line >= r.h || y >= len(labels) || text == "" || r.w < 3 {
		return
	}
	x := r.x + 1
	for _, ch := range text {
		if x >= r.x+r.w-1 || x >= len(labels[y]) {
			break
		}
		labels[y][x] = ch
		x++
	}
}
