package export_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julien-sobczak/ulysses-export/internal/export"
	"github.com/julien-sobczak/ulysses-export/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"howett.net/plist"
)

func TestGroupName(t *testing.T) {
	root := t.TempDir()

	var tests = []struct {
		name       string
		dir        string
		properties map[string]any
		expected   string
	}{
		{"NoDescriptor", "Archive", nil, "Archive"},
		{"DisplayName", "A1-ulgroup", map[string]any{"DisplayName": "Projects"}, "Projects"},
		{"LowerDisplayName", "A2-ulgroup", map[string]any{"displayName": "Ideas"}, "Ideas"},
		{"BothDisplayNames", "A3-ulgroup", map[string]any{"DisplayName": "Upper", "displayName": "lower"}, "Upper"},
		{"NoDisplayName", "A4-ulgroup", map[string]any{"sortOrder": 1}, "Inbox"},
		{"NotAString", "A5-ulgroup", map[string]any{"DisplayName": 42}, "Inbox"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := testutil.WriteGroup(t, root, tt.dir, tt.properties)
			name, err := export.GroupName(dir)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestGroupNameBinaryDescriptor(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "B1-ulgroup")
	require.NoError(t, os.Mkdir(dir, 0755))
	data, err := plist.Marshal(map[string]any{"displayName": "Journal"}, plist.BinaryFormat)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, export.GroupDescriptor), data, 0644))

	name, err := export.GroupName(dir)
	require.NoError(t, err)
	assert.Equal(t, "Journal", name)
}

func TestGroupNameInvalidDescriptor(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "C1-ulgroup")
	require.NoError(t, os.Mkdir(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, export.GroupDescriptor), []byte("<plist><dict><key>"), 0644))

	name, err := export.GroupName(dir)
	assert.Error(t, err)
	assert.Equal(t, "C1-ulgroup", name)
}
