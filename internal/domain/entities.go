package domain

import (
	"fmt"
	"strings"
	"time"
)

// TitleType distinguishes catalog content types
type TitleType int

const (
	TypeMovie TitleType = iota
	TypeShow
)

// String returns the catalog's display label for the type
func (t TitleType) String() string {
	switch t {
	case TypeMovie:
		return "Movie"
	case TypeShow:
		return "TV Show"
	default:
		return "Unknown"
	}
}

// ParseTitleType maps a raw CSV type cell to a TitleType
func ParseTitleType(s string) (TitleType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie":
		return TypeMovie, true
	case "tv show", "show":
		return TypeShow, true
	default:
		return TypeMovie, false
	}
}

// Unknown-director markers that appear in catalog exports
var unknownMarkers = map[string]bool{
	"":          true,
	"unknown":   true,
	"not given": true,
	"n/a":       true,
}

// Title is one catalog record: a single movie or TV show
type Title struct {
	ID          string     // show_id column, may be empty
	Type        TitleType  // Movie or TV Show
	Name        string     // Display title
	Director    string     // Primary director, may be an unknown marker
	Cast        []string   // Cast members, trimmed
	Countries   []string   // Production countries, trimmed
	DateAdded   time.Time  // When the title landed on the platform (zero if unparsable)
	ReleaseYear int        // Original release year
	Rating      string     // Content rating ("PG-13", "TV-MA", ...)
	DurationMin int        // Runtime in minutes (movies)
	Seasons     int        // Season count (shows)
	Genres      []string   // listed_in entries, trimmed
	Description string     // Plot synopsis
}

// HasDateAdded reports whether the date_added cell parsed
func (t Title) HasDateAdded() bool {
	return !t.DateAdded.IsZero()
}

// YearAdded returns the year the title was added, 0 when unknown
func (t Title) YearAdded() int {
	if !t.HasDateAdded() {
		return 0
	}
	return t.DateAdded.Year()
}

// MonthAdded returns the calendar month the title was added, 0 when unknown
func (t Title) MonthAdded() time.Month {
	if !t.HasDateAdded() {
		return 0
	}
	return t.DateAdded.Month()
}

// DirectorKnown reports whether the director cell names a real person
func (t Title) DirectorKnown() bool {
	return !unknownMarkers[strings.ToLower(strings.TrimSpace(t.Director))]
}

// PrimaryCountry returns the first listed production country
func (t Title) PrimaryCountry() string {
	if len(t.Countries) == 0 {
		return ""
	}
	return t.Countries[0]
}

// FormattedDuration returns the duration in a human-readable format,
// empty when the duration cell did not parse.
func (t Title) FormattedDuration() string {
	if t.Type == TypeShow {
		if t.Seasons == 0 {
			return ""
		}
		if t.Seasons == 1 {
			return "1 Season"
		}
		return fmt.Sprintf("%d Seasons", t.Seasons)
	}
	if t.DurationMin == 0 {
		return ""
	}
	h := t.DurationMin / 60
	m := t.DurationMin % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// FormattedDateAdded returns the added date for display
func (t Title) FormattedDateAdded() string {
	if !t.HasDateAdded() {
		return "—"
	}
	return t.DateAdded.Format("Jan 2, 2006")
}

// Key uniquely identifies a record for deduplication
func (t Title) Key() string {
	if t.ID != "" {
		return t.ID
	}
	return t.Type.String() + ":" + strings.ToLower(t.Name)
}
