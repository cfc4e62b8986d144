package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"
)

func TestSetUpFromGoldenDirNamed(t *testing.T) {
	dirname := SetUpFromGoldenDirNamed(t, "Library")

	assert.Equal(t, "Library", filepath.Base(dirname))
	require.FileExists(t, filepath.Join(dirname, "Notes.ulysses", "Content.xml"))

	// The copy can be modified without altering the golden dir
	require.NoError(t, os.WriteFile(filepath.Join(dirname, "Notes.ulysses", "Content.xml"), []byte("<sheet/>"), 0644))
	assert.NotEqual(t, "<sheet/>", string(GoldenFileNamed(t, "Library/Notes.ulysses/Content.xml")))
}

func TestGoldenFile(t *testing.T) {
	content := GoldenFile(t)
	assert.Equal(t, "# TestGoldenFile\n\nHi!\n", string(content))
}

func TestWriteSheet(t *testing.T) {
	bundle := WriteSheet(t, t.TempDir(), "a1b2", "<sheet/>")
	assert.Equal(t, "a1b2.ulysses", filepath.Base(bundle))
	assert.Equal(t, "<sheet/>", FileContent(t, filepath.Join(bundle, "Content.xml")))
}

func TestWriteGroup(t *testing.T) {
	root := t.TempDir()

	bare := WriteGroup(t, root, "Bare", nil)
	assert.NoFileExists(t, filepath.Join(bare, "Info.ulgroup"))

	named := WriteGroup(t, root, "Named-ulgroup", map[string]any{"displayName": "Projects"})
	data, err := os.ReadFile(filepath.Join(named, "Info.ulgroup"))
	require.NoError(t, err)
	var properties map[string]any
	_, err = plist.Unmarshal(data, &properties)
	require.NoError(t, err)
	assert.Equal(t, "Projects", properties["displayName"])
}

func TestWriteFilter(t *testing.T) {
	filter := WriteFilter(t, t.TempDir(), "Today-ulfilter")
	entries, err := os.ReadDir(filter)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Info.ulfilter", entries[0].Name())
}
