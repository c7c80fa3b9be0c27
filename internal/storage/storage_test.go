package storage_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tayloree/voicecart/internal/shopping"
	"github.com/tayloree/voicecart/internal/storage"
)

func ptr(f float64) *float64 { return &f }

func sampleSnapshot() shopping.Snapshot {
	t0 := time.Date(2024, 11, 3, 14, 5, 6, 123456789, time.UTC)
	return shopping.Snapshot{
		Items: []shopping.Item{
			{ID: "a1", Name: "Whole Milk", Quantity: 2, Category: "grocery", AddedAt: t0, Price: ptr(5.99)},
			{ID: "b2", Name: "Bagels", Quantity: 1, Category: "Bakery", AddedAt: t0.Add(time.Minute), Completed: true},
		},
		History: []shopping.PurchaseRecord{
			{ItemName: "Whole Milk", Frequency: 4, LastPurchased: t0, Category: "grocery"},
			{ItemName: "Bagels", Frequency: 1, LastPurchased: t0.Add(time.Minute), Category: "Bakery"},
		},
		Searches: []shopping.SearchEntry{
			{Query: "bagels", Timestamp: t0.Add(time.Minute)},
			{Query: "milk", Timestamp: t0},
		},
	}
}

func backends(t *testing.T) map[string]storage.Backend {
	t.Helper()
	out := make(map[string]storage.Backend)
	for _, kind := range []string{storage.KindJSON, storage.KindSQLite} {
		b, err := storage.Open(kind, t.TempDir())
		require.NoError(t, err, kind)
		t.Cleanup(func() { b.Close() })
		out[kind] = b
	}
	return out
}

func save(t *testing.T, b storage.Backend, snap shopping.Snapshot) {
	t.Helper()
	require.NoError(t, b.SaveItems(snap.Items))
	require.NoError(t, b.SaveHistory(snap.History))
	require.NoError(t, b.SaveSearches(snap.Searches))
}

func TestRoundTrip(t *testing.T) {
	for kind, b := range backends(t) {
		want := sampleSnapshot()
		save(t, b, want)

		got, err := b.Load()
		require.NoError(t, err, kind)
		assert.Equal(t, want, got, kind)
		assert.True(t, got.Items[0].AddedAt.Equal(want.Items[0].AddedAt), kind)
	}
}

func TestLoad_Empty(t *testing.T) {
	for kind, b := range backends(t) {
		got, err := b.Load()
		require.NoError(t, err, kind)
		assert.Empty(t, got.Items, kind)
		assert.Empty(t, got.History, kind)
		assert.Empty(t, got.Searches, kind)
	}
}

func TestSave_ReplacesWholeCollection(t *testing.T) {
	for kind, b := range backends(t) {
		snap := sampleSnapshot()
		save(t, b, snap)
		require.NoError(t, b.SaveItems(snap.Items[1:]), kind)
		require.NoError(t, b.SaveItems(nil), kind)
		require.NoError(t, b.SaveItems(snap.Items[:1]), kind)

		got, err := b.Load()
		require.NoError(t, err, kind)
		require.Len(t, got.Items, 1, kind)
		assert.Equal(t, "Whole Milk", got.Items[0].Name, kind)
		assert.Len(t, got.History, 2, kind)
	}
}

func TestFileStore_FileNames(t *testing.T) {
	dir := t.TempDir()
	fs, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	save(t, fs, sampleSnapshot())

	for _, name := range []string{"shoppingItems.json", "shoppingHistory.json", "searchHistory.json"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFileStore_EmptyCollectionsWriteArrays(t *testing.T) {
	dir := t.TempDir()
	fs, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, fs.SaveItems(nil))

	data, err := os.ReadFile(filepath.Join(dir, "shoppingItems.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestFileStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shoppingItems.json"), []byte("{nope"), 0o644))
	fs, err := storage.NewFileStore(dir)
	require.NoError(t, err)

	_, err = fs.Load()
	assert.ErrorContains(t, err, "shoppingItems.json")
}

func TestFileStore_JSONShape(t *testing.T) {
	dir := t.TempDir()
	fs, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, fs.SaveSearches(sampleSnapshot().Searches[:1]))

	data, err := os.ReadFile(filepath.Join(dir, "searchHistory.json"))
	require.NoError(t, err)
	assert.JSONEq(t, `[{"query":"bagels","timestamp":"2024-11-03T14:06:06.123456789Z"}]`, string(data))
}

func TestSQLiteStore_Reopen(t *testing.T) {
	dir := t.TempDir()
	s, err := storage.NewSQLiteStore(dir)
	require.NoError(t, err)
	save(t, s, sampleSnapshot())
	require.NoError(t, s.Close())

	s, err = storage.NewSQLiteStore(dir)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, sampleSnapshot(), got)
	assert.Equal(t, filepath.Join(dir, "voicecart.db"), s.Path())
}

func TestOpen_UnknownKind(t *testing.T) {
	_, err := storage.Open("redis", t.TempDir())
	assert.ErrorContains(t, err, "unknown storage")
}
