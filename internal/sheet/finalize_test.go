package sheet_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julien-sobczak/ulysses-export/internal/sheet"
	"github.com/julien-sobczak/ulysses-export/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeTitle(t *testing.T) {
	var tests = []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain", "Daily Note", "Daily Note"},
		{"Separators", `A/B\C:D`, "A-BC - D"},
		{"Time", "Meeting 10:30", "Meeting 10 - 30"},
		{"Date", "2023/01/01", "2023-01-01"},
		{"Decomposed", "Cafe\u0301", "Caf\u00e9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sheet.SanitizeTitle(tt.input))
		})
	}
}

func TestFooter(t *testing.T) {
	footer := sheet.Footer{
		ExportedAt:  time.Date(2023, 01, 01, 14, 00, 00, 00, time.UTC),
		Keywords:    "work,review",
		Attachments: "",
		Created:     time.Date(2022, 03, 04, 9, 15, 00, 00, time.UTC),
		Modified:    time.Date(2022, 12, 24, 18, 30, 05, 00, time.UTC),
	}

	var out bytes.Buffer
	require.NoError(t, sheet.WriteFooter(&out, footer))

	expected := "\n\n\n" +
		"--- Exported from Ulysses on 2023-01-01 14:00:00 +0000 ---\n" +
		"KEYWORDS: work,review\n" +
		"ATTACHMENTS: \n" +
		"CREATED DATE: March 4, 2022 at 9:15:00 AM UTC\n" +
		"MODIFIED DATE: December 24, 2022 at 6:30:05 PM UTC"
	assert.Equal(t, expected, out.String())
}

func TestRelocate(t *testing.T) {

	t.Run("Renamed", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "a1b2.markdown", "Body\n")

		newPath, err := sheet.Relocate(path, "Roadmap: 2024/Q1")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "Roadmap - 2024-Q1.markdown"), newPath)
		assert.NoFileExists(t, path)
		content, err := os.ReadFile(newPath)
		require.NoError(t, err)
		assert.Equal(t, "Body\n", string(content))
	})

	t.Run("SameName", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "Daily Note.markdown", "Body\n")

		newPath, err := sheet.Relocate(path, "Daily Note")
		require.NoError(t, err)
		assert.Equal(t, path, newPath)
		assert.FileExists(t, path)
	})

	t.Run("Existing", func(t *testing.T) {
		dir := t.TempDir()
		existing := writeFile(t, dir, "Groceries.markdown", "First\n")
		path := writeFile(t, dir, "c3d4.markdown", "Second\n")

		newPath, err := sheet.Relocate(path, "Groceries")
		assert.ErrorIs(t, err, sheet.ErrDestinationExists)
		// Nothing moved
		assert.Equal(t, path, newPath)
		assert.FileExists(t, path)
		content, err := os.ReadFile(existing)
		require.NoError(t, err)
		assert.Equal(t, "First\n", string(content))
	})
}

func TestFinalize(t *testing.T) {
	times := filesystem.Times{
		Created:  time.Date(2022, 03, 04, 9, 15, 00, 00, time.UTC),
		Modified: time.Date(2022, 12, 24, 18, 30, 05, 00, time.UTC),
	}

	t.Run("WithTitle", func(t *testing.T) {
		dir := t.TempDir()
		temp := writeFile(t, dir, ".sheet-1.markdown", "# Daily Note\n")

		finalization, err := sheet.Finalize(temp, filepath.Join(dir, "a1b2.markdown"), &sheet.Result{Title: "Daily Note", HasTitle: true}, times)
		require.NoError(t, err)
		require.NoError(t, finalization.RelocateErr)
		require.NoError(t, finalization.TimesErr)
		assert.Equal(t, filepath.Join(dir, "Daily Note.markdown"), finalization.Path)
		assert.NoFileExists(t, temp)
		assert.NoFileExists(t, filepath.Join(dir, "a1b2.markdown"))

		stat, err := os.Stat(finalization.Path)
		require.NoError(t, err)
		assert.True(t, times.Modified.Equal(stat.ModTime()))
	})

	t.Run("WithoutTitle", func(t *testing.T) {
		dir := t.TempDir()
		temp := writeFile(t, dir, ".sheet-1.markdown", "Body\n")
		fallback := filepath.Join(dir, "a1b2.markdown")

		finalization, err := sheet.Finalize(temp, fallback, &sheet.Result{}, times)
		require.NoError(t, err)
		assert.Equal(t, fallback, finalization.Path)
		assert.NoError(t, finalization.RelocateErr)
		assert.NoFileExists(t, temp)
	})

	t.Run("BlankTitle", func(t *testing.T) {
		dir := t.TempDir()
		temp := writeFile(t, dir, ".sheet-1.markdown", "# \n")
		fallback := filepath.Join(dir, "a1b2.markdown")

		finalization, err := sheet.Finalize(temp, fallback, &sheet.Result{Title: " ", HasTitle: true}, times)
		require.NoError(t, err)
		assert.Equal(t, fallback, finalization.Path)
	})

	t.Run("TitleTaken", func(t *testing.T) {
		dir := t.TempDir()
		existing := writeFile(t, dir, "Daily Note.markdown", "Other\n")
		temp := writeFile(t, dir, ".sheet-1.markdown", "# Daily Note\n")
		fallback := filepath.Join(dir, "a1b2.markdown")

		finalization, err := sheet.Finalize(temp, fallback, &sheet.Result{Title: "Daily Note", HasTitle: true}, times)
		require.NoError(t, err)
		assert.ErrorIs(t, finalization.RelocateErr, sheet.ErrDestinationExists)
		assert.Equal(t, fallback, finalization.Path)
		assert.Equal(t, "Other\n", readFile(t, existing))
		// Times are restored on the fallback file
		require.NoError(t, finalization.TimesErr)
		stat, err := os.Stat(fallback)
		require.NoError(t, err)
		assert.True(t, times.Modified.Equal(stat.ModTime()))
	})

	t.Run("FallbackTaken", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "Note.markdown", "First\n")
		writeFile(t, dir, "Note 2.markdown", "Second\n")
		temp := writeFile(t, dir, ".sheet-1.markdown", "Third\n")

		finalization, err := sheet.Finalize(temp, filepath.Join(dir, "Note.markdown"), &sheet.Result{}, times)
		require.NoError(t, err)
		assert.ErrorIs(t, finalization.RelocateErr, sheet.ErrDestinationExists)
		assert.Equal(t, filepath.Join(dir, "Note 3.markdown"), finalization.Path)
		assert.Equal(t, "First\n", readFile(t, filepath.Join(dir, "Note.markdown")))
		assert.Equal(t, "Second\n", readFile(t, filepath.Join(dir, "Note 2.markdown")))
		assert.Equal(t, "Third\n", readFile(t, finalization.Path))
	})

	t.Run("MissingFile", func(t *testing.T) {
		dir := t.TempDir()
		_, err := sheet.Finalize(filepath.Join(dir, ".sheet-1.markdown"), filepath.Join(dir, "a1b2.markdown"), &sheet.Result{}, times)
		assert.Error(t, err)
		assert.NoFileExists(t, filepath.Join(dir, "a1b2.markdown"))
	})
}

/* Test Helpers */

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readFile(t *testing.T, path string) string {
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}
