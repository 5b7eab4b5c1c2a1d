package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".satya", "config.toml"), store.Path())
}

func TestNewConfigStore_WithNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	assert.DirExists(t, dir)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("youtube.api_key", "AIza-test"))
	require.NoError(t, store.Set("fetch.max_comments", 250))
	require.NoError(t, store.Set("fetch.requests_per_second", 2.5))
	require.NoError(t, store.Set("history.enabled", true))

	assert.Equal(t, "AIza-test", store.GetString("youtube.api_key"))
	assert.Equal(t, 250, store.GetInt("fetch.max_comments"))
	assert.Equal(t, 2.5, store.GetFloat("fetch.requests_per_second"))
	assert.Equal(t, 250.0, store.GetFloat("fetch.max_comments"))
	assert.True(t, store.GetBool("history.enabled"))

	// Wrong types and missing keys return zero values.
	assert.Equal(t, "", store.GetString("fetch.max_comments"))
	assert.Equal(t, 0, store.GetInt("youtube.api_key"))
	assert.Equal(t, 0.0, store.GetFloat("history.enabled"))
	assert.False(t, store.GetBool("missing"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()

	store1, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, store1.Set("youtube.api_key", "key"))
	require.NoError(t, store1.Set("fetch.page_size", 50))
	require.NoError(t, store1.Set("fetch.requests_per_second", 1.5))
	require.NoError(t, store1.Set("history.enabled", false))

	store2, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "key", store2.GetString("youtube.api_key"))
	// TOML integers come back as int64.
	assert.Equal(t, 50, store2.GetInt("fetch.page_size"))
	assert.Equal(t, 1.5, store2.GetFloat("fetch.requests_per_second"))
	_, ok := store2.Get("history.enabled")
	assert.True(t, ok)
	assert.False(t, store2.GetBool("history.enabled"))
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("youtube.api_key", "key"))
	require.NoError(t, store.Set("fetch.max_comments", 100))

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "[youtube]")
	assert.Contains(t, string(data), "[fetch]")
	assert.Contains(t, string(data), "max_comments = 100")
}

func TestConfigStore_ReadsHandWrittenFile(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[youtube]
api_key = "from-file"

[fetch]
timeout = "10s"
burst = 3
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "from-file", store.GetString("youtube.api_key"))
	assert.Equal(t, "10s", store.GetString("fetch.timeout"))
	assert.Equal(t, 3, store.GetInt("fetch.burst"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("youtube.api_key", "secret"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), nil, 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("[[invalid toml"), 0600))

	_, err := NewConfigStore(tmpDir)
	assert.Error(t, err)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Set("fetch.burst", i)
		}()
		go func() {
			defer wg.Done()
			_ = store.GetInt("fetch.burst")
		}()
	}
	wg.Wait()
}

func TestNestMap(t *testing.T) {
	nested := nestMap(map[string]any{
		"a.b":   1,
		"a.c.d": "x",
		"e":     true,
	})

	assert.Equal(t, map[string]any{
		"a": map[string]any{
			"b": 1,
			"c": map[string]any{"d": "x"},
		},
		"e": true,
	}, nested)

	assert.Equal(t, map[string]any{"a.b": 1, "a.c.d": "x", "e": true}, flattenMap(nested, ""))
}
