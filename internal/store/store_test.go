package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flickdash/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSnapshotRoundTrip(t *testing.T) {
	st := openTestStore(t)

	titles := []domain.Title{
		{ID: "s1", Name: "Alpha", Type: domain.TypeMovie, Genres: []string{"Dramas"}},
		{ID: "s2", Name: "Beta", Type: domain.TypeShow, Seasons: 2},
	}
	require.NoError(t, st.SaveSnapshot("/data/catalog.csv", 100, 42, titles))

	got, ok := st.GetSnapshot("/data/catalog.csv", 100, 42)
	require.True(t, ok)
	assert.Equal(t, titles, got)
}

func TestSnapshotFingerprintMismatch(t *testing.T) {
	st := openTestStore(t)

	titles := []domain.Title{{ID: "s1", Name: "Alpha"}}
	require.NoError(t, st.SaveSnapshot("/data/catalog.csv", 100, 42, titles))

	_, ok := st.GetSnapshot("/data/catalog.csv", 101, 42)
	assert.False(t, ok, "size change invalidates the snapshot")

	_, ok = st.GetSnapshot("/data/catalog.csv", 100, 43)
	assert.False(t, ok, "mtime change invalidates the snapshot")

	_, ok = st.GetSnapshot("/data/other.csv", 100, 42)
	assert.False(t, ok, "snapshots are keyed by path")
}

func TestInvalidateSnapshot(t *testing.T) {
	st := openTestStore(t)

	require.NoError(t, st.SaveSnapshot("/data/catalog.csv", 100, 42, []domain.Title{{ID: "s1"}}))
	st.InvalidateSnapshot("/data/catalog.csv")

	_, ok := st.GetSnapshot("/data/catalog.csv", 100, 42)
	assert.False(t, ok)
}

func TestSessionRoundTrip(t *testing.T) {
	st := openTestStore(t)

	_, ok := st.GetSession()
	assert.False(t, ok, "no session before first save")

	sess := Session{View: "trends", TopGenres: 12}
	require.NoError(t, st.SaveSession(sess))

	got, ok := st.GetSession()
	require.True(t, ok)
	assert.Equal(t, sess, got)
}

func TestNilStoreIsSafe(t *testing.T) {
	var st *Store

	_, ok := st.GetSnapshot("/x.csv", 1, 1)
	assert.False(t, ok)
	assert.NoError(t, st.SaveSnapshot("/x.csv", 1, 1, nil))
	st.InvalidateSnapshot("/x.csv")

	_, ok = st.GetSession()
	assert.False(t, ok)
	assert.NoError(t, st.SaveSession(Session{}))
}
