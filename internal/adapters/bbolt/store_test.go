package bbolt

import (
	"path/filepath"
	"testing"

	"github.com/corey/rankbot/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"
)

// =============================================================================
// bbolt DatasetStore: save/load snapshots written by `rankbot import`
// Expectation: a snapshot loads back with the same feature order, units and
// records (including partial ones). Snapshots are name-scoped.
// =============================================================================

// newTestStore creates a temporary bbolt store for testing.
func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	store, err := NewStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

// makeTestDataset creates a realistic dataset with a partial record.
func makeTestDataset() *ports.Dataset {
	return &ports.Dataset{Features: []ports.Feature{
		{Name: "population", Entries: map[string]ports.Record{
			"china":         {Rank: "1", Value: "1,397,897,720"},
			"india":         {Rank: "2", Value: "1,339,330,514"},
			"united states": {Rank: "3", Value: "334,998,398"},
		}},
		{Name: "area", Unit: "sq km", Entries: map[string]ports.Record{
			"russia": {Rank: "1", Value: "17,098,242"},
			"chad":   {Rank: "21", Partial: true},
		}},
		{Name: "median age", Entries: map[string]ports.Record{}},
	}}
}

func TestStore_SaveLoadDataset_Roundtrip(t *testing.T) {
	store, _ := newTestStore(t)
	original := makeTestDataset()

	require.NoError(t, store.SaveDataset("default", original))

	loaded, err := store.LoadDataset("default")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, original, loaded)
}

func TestStore_LoadMissing(t *testing.T) {
	store, _ := newTestStore(t)
	loaded, err := store.LoadDataset("nope")
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStore_SaveReplacesSnapshot(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SaveDataset("default", makeTestDataset()))

	smaller := &ports.Dataset{Features: []ports.Feature{
		{Name: "gdp", Entries: map[string]ports.Record{"china": {Rank: "1", Value: "$24T"}}},
	}}
	require.NoError(t, store.SaveDataset("default", smaller))

	loaded, err := store.LoadDataset("default")
	require.NoError(t, err)
	assert.Equal(t, smaller, loaded, "old features must not linger")
}

func TestStore_SaveRejectsBadInput(t *testing.T) {
	store, _ := newTestStore(t)
	assert.Error(t, store.SaveDataset("", makeTestDataset()))
	assert.Error(t, store.SaveDataset("x", nil))
	assert.Error(t, store.SaveDataset("x", &ports.Dataset{Features: []ports.Feature{{Name: "a"}, {Name: "a"}}}))

	names, err := store.ListDatasets()
	require.NoError(t, err)
	assert.Empty(t, names, "failed saves write nothing")
}

func TestStore_ListAndDelete(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SaveDataset("zeta", makeTestDataset()))
	require.NoError(t, store.SaveDataset("alpha", makeTestDataset()))

	names, err := store.ListDatasets()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)

	require.NoError(t, store.DeleteDataset("zeta"))
	require.NoError(t, store.DeleteDataset("zeta"), "delete is idempotent")

	names, err = store.ListDatasets()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha"}, names)
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.SaveDataset("default", makeTestDataset()))
	require.NoError(t, store.Close())

	ro, err := OpenReadOnly(path)
	require.NoError(t, err)
	defer ro.Close()

	loaded, err := ro.LoadDataset("default")
	require.NoError(t, err)
	assert.Equal(t, makeTestDataset(), loaded)
}

func TestStore_OpenReadOnlyMissingFile(t *testing.T) {
	_, err := OpenReadOnly(filepath.Join(t.TempDir(), "missing.db"))
	assert.Error(t, err)
}

func TestStore_CorruptBlob(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SaveDataset("default", makeTestDataset()))

	require.NoError(t, store.db.Update(func(tx *bolt.Tx) error {
		fb := tx.Bucket([]byte("default")).Bucket(bucketFeatures)
		return fb.Put([]byte("area"), []byte{0xff, 0xff})
	}))

	_, err := store.LoadDataset("default")
	assert.ErrorContains(t, err, "area")
}

func TestStore_UnsupportedFormat(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.SaveDataset("default", makeTestDataset()))

	require.NoError(t, store.db.Update(func(tx *bolt.Tx) error {
		mb := tx.Bucket([]byte("default")).Bucket(bucketMeta)
		return mb.Put(keyFormat, []byte{99})
	}))

	_, err := store.LoadDataset("default")
	assert.ErrorContains(t, err, "unsupported format")
}
