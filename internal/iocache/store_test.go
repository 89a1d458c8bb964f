package iocache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/protax/internal/iocache"
	"github.com/gnames/protax/internal/iotesting"
	"github.com/gnames/protax/pkg/taxon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy_db.gob")
	st := iocache.New(path)

	cache, err := st.Load()
	assert.Nil(t, cache)
	require.Error(t, err)
	assert.True(t, iocache.IsNotFound(err),
		"missing snapshot should be reported as not-found")
}

func TestIsNotFoundOtherErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy_db.gob")
	require.NoError(t, os.WriteFile(path, []byte("not a gob"), 0644))

	_, err := iocache.New(path).Load()
	require.Error(t, err)
	assert.False(t, iocache.IsNotFound(err),
		"corrupted snapshot is not a not-found condition")
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy_db.gob")
	st := iocache.New(path)
	cache := iotesting.FixtureCache()

	require.NoError(t, st.Save(cache))

	res, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, cache, res,
		"snapshot should round-trip structurally equal")
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxonomy_db.gob")
	st := iocache.New(path)

	first := taxon.Cache{
		"1": {TaxonID: 1, ScientificName: "one"},
	}
	require.NoError(t, st.Save(first))

	second := iotesting.FixtureCache()
	require.NoError(t, st.Save(second))

	res, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, second, res)
}

func TestSaveCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "db.gob")
	st := iocache.New(path)

	require.NoError(t, st.Save(iotesting.FixtureCache()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "db.gob")
	st := iocache.New(path)

	require.NoError(t, st.Save(iotesting.FixtureCache()))
	require.NoError(t, st.Save(iotesting.FixtureCache()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "db.gob", entries[0].Name())
}
