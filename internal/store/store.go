// Package store persists the parsed catalog snapshot and TUI session
// state in a BoltDB file so repeat launches skip the CSV parse and
// reopen on the last view. Deleting the file is always safe.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"

	"flickdash/internal/domain"
)

// Bucket names
var (
	bucketSnapshots = []byte("snapshots")
	bucketSession   = []byte("session")
)

// snapshotRecord wraps a cached snapshot with its file fingerprint
type snapshotRecord struct {
	Size    int64          `json:"size"`
	ModTime int64          `json:"mod_time"`
	Titles  []domain.Title `json:"titles"`
}

// Session is the UI state persisted across runs
type Session struct {
	View      string `json:"view"`
	TopGenres int    `json:"top_genres"`
}

// Store wraps the BoltDB handle
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the store under dir
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	dbPath := filepath.Join(dir, "flickdash.db")
	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketSnapshots, bucketSession} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// hashPath keys snapshots by a normalized catalog path
func hashPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	normalized := strings.ToLower(path)
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:6])
}

// === Generic helpers ===

func (s *Store) get(bucket []byte, key string, dest interface{}) bool {
	if s == nil || s.db == nil {
		return false
	}
	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if data == nil {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

func (s *Store) set(bucket []byte, key string, value interface{}) error {
	if s == nil || s.db == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucket)
		return b.Put([]byte(key), data)
	})
}

// === Snapshots ===

// GetSnapshot returns the cached titles for the catalog at path when
// the stored fingerprint still matches the file on disk.
func (s *Store) GetSnapshot(path string, size, modTime int64) ([]domain.Title, bool) {
	var rec snapshotRecord
	if !s.get(bucketSnapshots, hashPath(path), &rec) {
		return nil, false
	}
	if rec.Size != size || rec.ModTime != modTime {
		return nil, false
	}
	return rec.Titles, true
}

// SaveSnapshot caches the parsed titles with the file fingerprint
func (s *Store) SaveSnapshot(path string, size, modTime int64, titles []domain.Title) error {
	rec := snapshotRecord{Size: size, ModTime: modTime, Titles: titles}
	return s.set(bucketSnapshots, hashPath(path), rec)
}

// InvalidateSnapshot drops the cached snapshot for path
func (s *Store) InvalidateSnapshot(path string) {
	if s == nil || s.db == nil {
		return
	}
	s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSnapshots)
		if b != nil {
			b.Delete([]byte(hashPath(path)))
		}
		return nil
	})
}

// === Session ===

// GetSession returns the persisted UI session state
func (s *Store) GetSession() (Session, bool) {
	var sess Session
	ok := s.get(bucketSession, "current", &sess)
	return sess, ok
}

// SaveSession persists the UI session state
func (s *Store) SaveSession(sess Session) error {
	return s.set(bucketSession, "current", sess)
}
