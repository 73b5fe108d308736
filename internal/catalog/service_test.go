package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flickdash/internal/log"
	"flickdash/internal/store"
)

const serviceCSV = `type,title,duration
Movie,Alpha,90 min
TV Show,Beta,2 Seasons
`

func TestServiceLoad(t *testing.T) {
	path := writeFixture(t, serviceCSV)
	svc := NewService(path, nil, log.NullLogger())

	assert.Nil(t, svc.Snapshot())

	snap, err := svc.Load(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, snap.Titles, 2)
	assert.Same(t, snap, svc.Snapshot())

	// Second load reuses the in-memory snapshot
	again, err := svc.Load(context.Background(), false)
	require.NoError(t, err)
	assert.Same(t, snap, again)
}

func TestServiceLoadUsesCache(t *testing.T) {
	path := writeFixture(t, serviceCSV)
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	defer st.Close()

	first := NewService(path, st, log.NullLogger())
	snap, err := first.Load(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, snap.Titles, 2)

	// A fresh service against the same store hits the cached snapshot
	second := NewService(path, st, log.NullLogger())
	cached, err := second.Load(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, snap.Titles, cached.Titles)
}

func TestServiceLoadInvalidatesOnChange(t *testing.T) {
	path := writeFixture(t, serviceCSV)
	st, err := store.Open(t.TempDir())
	require.NoError(t, err)
	defer st.Close()

	svc := NewService(path, st, log.NullLogger())
	_, err = svc.Load(context.Background(), false)
	require.NoError(t, err)

	// Grow the file; the fingerprint no longer matches the cache
	grown := serviceCSV + "Movie,Gamma,100 min\n"
	require.NoError(t, os.WriteFile(path, []byte(grown), 0644))

	fresh := NewService(path, st, log.NullLogger())
	snap, err := fresh.Load(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, snap.Titles, 3)
}

func TestServiceLoadForce(t *testing.T) {
	path := writeFixture(t, serviceCSV)
	svc := NewService(path, nil, log.NullLogger())

	first, err := svc.Load(context.Background(), false)
	require.NoError(t, err)

	forced, err := svc.Load(context.Background(), true)
	require.NoError(t, err)
	assert.NotSame(t, first, forced)
	assert.Equal(t, first.Titles, forced.Titles)
}

func TestServiceLoadMissingFile(t *testing.T) {
	svc := NewService(filepath.Join(t.TempDir(), "gone.csv"), nil, log.NullLogger())

	_, err := svc.Load(context.Background(), false)
	assert.Error(t, err)
}

func TestServiceLoadCancelledContext(t *testing.T) {
	path := writeFixture(t, serviceCSV)
	svc := NewService(path, nil, log.NullLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Load(ctx, false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestServicePath(t *testing.T) {
	svc := NewService("some/catalog.csv", nil, log.NullLogger())
	assert.Equal(t, "some/catalog.csv", svc.Path())
}
