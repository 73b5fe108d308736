package search

import (
	"log/slog"
	"strings"
	"sync"

	sahilm "github.com/sahilm/fuzzy"

	"flickdash/internal/domain"
)

// Result is a search hit with match metadata for highlighting
type Result struct {
	Title          domain.Title
	MatchedIndexes []int // Character positions in the title that matched
	Score          int   // Higher is better (sahilm convention)
}

// index implements sahilm/fuzzy.Source over pre-lowered title names
type index struct {
	titles     []domain.Title
	lowerNames []string
}

func (idx *index) String(i int) string { return idx.lowerNames[i] }
func (idx *index) Len() int            { return len(idx.titles) }

// Service answers fuzzy title queries for the omnibar, with the match
// positions the result list needs for highlighting
type Service struct {
	logger *slog.Logger

	mu  sync.RWMutex
	idx *index
}

// NewService creates an empty search service
func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger, idx: &index{}}
}

// Index replaces the search index with the given titles.
// Lowercase names are pre-computed so queries allocate nothing per item.
func (s *Service) Index(titles []domain.Title) {
	idx := &index{
		titles:     titles,
		lowerNames: make([]string, len(titles)),
	}
	for i, t := range titles {
		idx.lowerNames[i] = strings.ToLower(t.Name)
	}

	s.mu.Lock()
	s.idx = idx
	s.mu.Unlock()

	s.logger.Debug("indexed titles for search", "count", len(titles))
}

// Count returns the number of indexed titles
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.idx.Len()
}

// Query returns titles matching the query with highlight positions,
// best match first.
func (s *Service) Query(query string) []Result {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	s.mu.RLock()
	idx := s.idx
	s.mu.RUnlock()

	if idx.Len() == 0 {
		return nil
	}

	matches := sahilm.FindFrom(query, idx)
	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Title:          idx.titles[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}
