package figcon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tomlfmt "github.com/thirteen37/figcon/format/toml"
)

func tempConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.json")
}

func TestLoadOrDefaultMissingFile(t *testing.T) {
	path := tempConfigPath(t)

	store := LoadOrDefault(path)
	assert.Equal(t, 0, store.Len(), "missing file should load as an empty document")
	assert.Equal(t, path, store.Path())

	// A subsequent save creates the file
	require.NoError(t, store.Save())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))
}

func TestLoadOrDefaultMalformedFile(t *testing.T) {
	path := tempConfigPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	store := LoadOrDefault(path)
	assert.Equal(t, 0, store.Len(), "malformed file should degrade to empty")
}

func TestLoadOrDefaultNonMappingTopLevel(t *testing.T) {
	path := tempConfigPath(t)
	require.NoError(t, os.WriteFile(path, []byte(`[1, 2, 3]`), 0644))

	store := LoadOrDefault(path)
	assert.Equal(t, 0, store.Len(), "non-mapping top level should degrade to empty")
}

func TestSaveAndReloadRoundTrip(t *testing.T) {
	path := tempConfigPath(t)

	store := LoadOrDefault(path)
	store.SetString("A", "x")
	child, err := store.EnsureChild("B")
	require.NoError(t, err)
	child.Set("c", 1)
	require.NoError(t, store.Save())

	// Fresh load reproduces the document
	reloaded := LoadOrDefault(path)
	a, ok := reloaded.Get("A")
	require.True(t, ok)
	assert.Equal(t, "x", a)

	b, ok := reloaded.Child("B")
	require.True(t, ok, "subtree B should survive the round trip")
	c, ok := b.Get("c")
	require.True(t, ok)
	assert.Equal(t, float64(1), c, "JSON numbers decode as float64")

	assert.Equal(t, []string{"A", "B"}, reloaded.Keys())
}

func TestSaveErrorOnMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "config.json")

	store := LoadOrDefault(path)
	store.SetString("key", "value")

	err := store.Save()
	require.Error(t, err, "save into a missing directory must surface failure")
	assert.Contains(t, err.Error(), "failed to write config file")
}

func TestReloadDiscardsUnsavedChanges(t *testing.T) {
	path := tempConfigPath(t)

	store := LoadOrDefault(path)
	store.SetString("saved", "yes")
	require.NoError(t, store.Save())

	store.SetString("unsaved", "yes")
	store.Reload()

	assert.True(t, store.Has("saved"))
	assert.False(t, store.Has("unsaved"), "reload should drop unsaved mutations")
}

func TestSetPathRebindsWithoutWriting(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")

	store := LoadOrDefault(first)
	store.SetString("key", "value")
	store.SetPath(second)

	_, err := os.Stat(second)
	assert.True(t, os.IsNotExist(err), "SetPath alone must not write")

	require.NoError(t, store.Save())
	_, err = os.Stat(second)
	assert.NoError(t, err)
	_, err = os.Stat(first)
	assert.True(t, os.IsNotExist(err), "original path must stay untouched")
}

func TestStorePersistsMutationsOnlyOnSave(t *testing.T) {
	path := tempConfigPath(t)

	store := LoadOrDefault(path)
	store.SetString("key", "value")

	other := LoadOrDefault(path)
	assert.False(t, other.Has("key"), "nothing reaches disk before Save")
}

func TestStoreString(t *testing.T) {
	store := LoadOrDefault(tempConfigPath(t))
	store.SetString("name", "figcon")

	s := store.String()
	assert.True(t, strings.HasPrefix(s, "{"), "String() should render the document")
	assert.Contains(t, s, `"name": "figcon"`)
}

func TestStoreRootSharesStorage(t *testing.T) {
	store := LoadOrDefault(tempConfigPath(t))
	store.Root().SetString("via-root", "1")
	store.SetString("via-store", "2")

	assert.True(t, store.Has("via-root"))
	v, ok := store.Root().Get("via-store")
	require.True(t, ok)
	assert.Equal(t, "2", v)
}

func TestStoreWithStripComments(t *testing.T) {
	path := tempConfigPath(t)
	jsonc := "// generated\n{\n  \"key\": \"value\" // inline\n}\n"
	require.NoError(t, os.WriteFile(path, []byte(jsonc), 0644))

	store := LoadOrDefault(path, WithStripComments())
	v, ok := store.Get("key")
	require.True(t, ok)
	assert.Equal(t, "value", v)
}

func TestStoreWithIndent(t *testing.T) {
	path := tempConfigPath(t)

	store := LoadOrDefault(path, WithIndent("\t"))
	store.SetString("key", "value")
	require.NoError(t, store.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"key\": \"value\"\n}\n", string(data))
}

func TestStoreWithTOMLHandler(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	store := LoadOrDefault(path, WithHandler(tomlfmt.New()))
	store.SetString("title", "figcon")
	server, err := store.EnsureChild("server")
	require.NoError(t, err)
	server.Set("port", 8080)
	require.NoError(t, store.Save())

	reloaded := LoadOrDefault(path, WithHandler(tomlfmt.New()))
	title, ok := reloaded.Get("title")
	require.True(t, ok)
	assert.Equal(t, "figcon", title)

	section, ok := reloaded.Child("server")
	require.True(t, ok)
	port, ok := section.Get("port")
	require.True(t, ok)
	assert.Equal(t, int64(8080), port, "BurntSushi decodes integers as int64")
}

func TestDanglingViewAfterRemove(t *testing.T) {
	// Documented hazard: a child view whose entry is removed keeps writing
	// into detached storage; the document itself no longer sees it.
	store := LoadOrDefault(tempConfigPath(t))
	child, err := store.EnsureChild("sub")
	require.NoError(t, err)

	store.Remove("sub")
	child.SetString("orphan", "write")

	assert.False(t, store.Has("sub"))
	require.NoError(t, store.Save())

	reloaded := LoadOrDefault(store.Path())
	assert.False(t, reloaded.Has("sub"), "writes through a detached view are lost on save")
}
