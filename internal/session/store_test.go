package session

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storesUnderTest(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   NewFileStore(filepath.Join(t.TempDir(), "careercore", "session.json")),
	}
}

func TestStore_RoundTrip(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, "", store.Token())
			assert.False(t, IsAuthenticated(store))

			require.NoError(t, store.SetToken("abc"))
			assert.Equal(t, "abc", store.Token())
			assert.True(t, IsAuthenticated(store))

			require.NoError(t, store.ClearToken())
			assert.Equal(t, "", store.Token())
			assert.False(t, IsAuthenticated(store))
		})
	}
}

func TestStore_SetOverwrites(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.SetToken("first"))
			require.NoError(t, store.SetToken("second"))
			assert.Equal(t, "second", store.Token())
		})
	}
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	for name, store := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, store.ClearToken())
			require.NoError(t, store.ClearToken())
			assert.Equal(t, "", store.Token())
		})
	}
}

func TestMemoryStore_Isolated(t *testing.T) {
	a := NewMemoryStore()
	b := NewMemoryStore()

	require.NoError(t, a.SetToken("tok"))
	assert.Equal(t, "", b.Token())
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.SetToken("tok")
		}()
		go func() {
			defer wg.Done()
			_ = store.ClearToken()
		}()
	}
	wg.Wait()

	tok := store.Token()
	assert.True(t, tok == "" || tok == "tok")
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	require.NoError(t, NewFileStore(path).SetToken("persisted"))
	assert.Equal(t, "persisted", NewFileStore(path).Token())
}

func TestFileStore_FileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, NewFileStore(path).SetToken("secret"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileStore_CorruptFileReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	store := NewFileStore(path)
	assert.Equal(t, "", store.Token())

	require.NoError(t, store.ClearToken())
	require.NoError(t, store.SetToken("fresh"))
	assert.Equal(t, "fresh", store.Token())
}

func TestFileStore_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	store := NewFileStore(filepath.Join(blocker, "session.json"))
	err := store.SetToken("tok")
	require.Error(t, err)

	var storeErr *StoreError
	assert.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "", store.Token())
}
