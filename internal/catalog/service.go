package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"flickdash/internal/store"
)

// Service loads the catalog and hands out the session snapshot.
// The parsed snapshot is cached in the store keyed by the file's
// fingerprint so repeat launches skip the CSV parse.
type Service struct {
	path   string
	store  *store.Store // nil = no persistence
	logger *slog.Logger

	mu   sync.RWMutex
	snap *Snapshot
}

// NewService creates a catalog service for the CSV at path
func NewService(path string, st *store.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{path: path, store: st, logger: logger}
}

// Path returns the configured catalog file path
func (s *Service) Path() string {
	return s.path
}

// Snapshot returns the current session snapshot, nil before Load
func (s *Service) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Load returns the catalog snapshot, reading the cache when the file
// is unchanged. force bypasses both the in-memory snapshot and the
// cache and re-parses the CSV.
func (s *Service) Load(ctx context.Context, force bool) (*Snapshot, error) {
	if !force {
		if snap := s.Snapshot(); snap != nil {
			return snap, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fp, err := Stat(s.path)
	if err != nil {
		return nil, err
	}

	if !force && s.store != nil {
		if titles, ok := s.store.GetSnapshot(s.path, fp.Size, fp.ModTime); ok {
			s.logger.Debug("catalog loaded from cache", "path", s.path, "titles", len(titles))
			snap := &Snapshot{Titles: titles, Path: s.path, LoadedAt: time.Now()}
			s.setSnapshot(snap)
			return snap, nil
		}
	}

	snap, err := Load(s.path)
	if err != nil {
		return nil, err
	}
	s.logger.Info("catalog parsed", "path", s.path, "titles", len(snap.Titles))

	if s.store != nil {
		if err := s.store.SaveSnapshot(s.path, fp.Size, fp.ModTime, snap.Titles); err != nil {
			// Cache failures are not fatal; next launch re-parses
			s.logger.Warn("failed to cache catalog snapshot", "error", err)
		}
	}

	s.setSnapshot(snap)
	return snap, nil
}

func (s *Service) setSnapshot(snap *Snapshot) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}
