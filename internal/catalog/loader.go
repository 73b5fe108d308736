package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"flickdash/internal/domain"
)

// Snapshot is the immutable in-memory catalog for one session.
// It is loaded once and never mutated; views derive fresh
// aggregations from Titles on every render.
type Snapshot struct {
	Titles   []domain.Title
	Path     string
	LoadedAt time.Time
}

// Fingerprint identifies the on-disk state the snapshot was parsed from
type Fingerprint struct {
	Size    int64 `json:"size"`
	ModTime int64 `json:"mod_time"`
}

// Stat fingerprints the CSV file for cache validation
func Stat(path string) (Fingerprint, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("stat catalog file: %w", err)
	}
	return Fingerprint{Size: info.Size(), ModTime: info.ModTime().UnixNano()}, nil
}

// column indexes resolved from the header row; -1 = column absent
type columns struct {
	id, typ, title, director, cast, country  int
	dateAdded, releaseYear, rating, duration int
	listedIn, description                    int
}

// Load parses the catalog CSV at path into a Snapshot.
// Rows with a duplicate show ID are dropped; malformed cells degrade
// per-field (zero date, zero duration) rather than rejecting the row.
func Load(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // tolerate ragged rows

	header, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("catalog file %s is empty", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var titles []domain.Title
	seen := make(map[string]bool)

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}

		t, ok := parseRow(row, cols)
		if !ok {
			continue
		}
		if seen[t.Key()] {
			continue
		}
		seen[t.Key()] = true
		titles = append(titles, t)
	}

	return &Snapshot{
		Titles:   titles,
		Path:     path,
		LoadedAt: time.Now(),
	}, nil
}

func resolveColumns(header []string) (columns, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}

	get := func(name string) int {
		if i, ok := idx[name]; ok {
			return i
		}
		return -1
	}

	cols := columns{
		id:          get("show_id"),
		typ:         get("type"),
		title:       get("title"),
		director:    get("director"),
		cast:        get("cast"),
		country:     get("country"),
		dateAdded:   get("date_added"),
		releaseYear: get("release_year"),
		rating:      get("rating"),
		duration:    get("duration"),
		listedIn:    get("listed_in"),
		description: get("description"),
	}

	if cols.title < 0 || cols.typ < 0 {
		return columns{}, fmt.Errorf("catalog header missing required columns (have %v, need title and type)", header)
	}
	return cols, nil
}

func parseRow(row []string, cols columns) (domain.Title, bool) {
	cell := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	name := cell(cols.title)
	if name == "" {
		return domain.Title{}, false
	}
	typ, ok := domain.ParseTitleType(cell(cols.typ))
	if !ok {
		return domain.Title{}, false
	}

	t := domain.Title{
		ID:          cell(cols.id),
		Type:        typ,
		Name:        name,
		Director:    cell(cols.director),
		Cast:        splitList(cell(cols.cast)),
		Countries:   splitList(cell(cols.country)),
		DateAdded:   parseDate(cell(cols.dateAdded)),
		ReleaseYear: parseInt(cell(cols.releaseYear)),
		Rating:      cell(cols.rating),
		Genres:      splitList(cell(cols.listedIn)),
		Description: cell(cols.description),
	}

	mins, seasons := parseDuration(cell(cols.duration))
	t.DurationMin = mins
	t.Seasons = seasons

	return t, true
}

// splitList splits a comma-separated cell into trimmed entries
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Date formats seen in catalog exports, most common first
var dateLayouts = []string{
	"January 2, 2006",
	"2-Jan-06",
	"2006-01-02",
}

func parseDate(s string) time.Time {
	// Exports pad dates unevenly ("September  25, 2021")
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// parseDuration handles "90 min" for movies and "3 Seasons" for shows
func parseDuration(s string) (mins, seasons int) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return 0, 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0
	}
	unit := strings.ToLower(fields[1])
	switch {
	case strings.HasPrefix(unit, "min"):
		return n, 0
	case strings.HasPrefix(unit, "season"):
		return 0, n
	}
	return 0, 0
}
