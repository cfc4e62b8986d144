package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/otiai10/copy"
	"howett.net/plist"
)

// SetUpFromGoldenDir populates a temp directory based on the given test name.
func SetUpFromGoldenDir(t *testing.T) string {
	return SetUpFromGoldenDirNamed(t, t.Name())
}

// SetUpFromGoldenDirNamed copies the given golden dir into a temp directory.
// A copy is required as tests change file times.
func SetUpFromGoldenDirNamed(t *testing.T, testname string) string {
	dir := t.TempDir()

	dirIn := filepath.Join("testdata", testname)
	dirOut := filepath.Join(dir, filepath.Base(testname))

	if err := copy.Copy(dirIn, dirOut); err != nil {
		t.Fatalf("failed copying golden dir %s: %v", dirIn, err)
	}

	return dirOut
}

// GoldenFile reads the content of the golden file of the current test.
func GoldenFile(t *testing.T) []byte {
	return GoldenFileNamed(t, t.Name()+".markdown")
}

// GoldenFileNamed reads the content of the given golden file.
func GoldenFileNamed(t *testing.T, filename string) []byte {
	path := filepath.Join("testdata", filename)
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed reading golden file %s: %v", path, err)
	}
	return b
}

// WriteSheet creates a sheet bundle <dir>/<name>.ulysses containing the given Content.xml.
func WriteSheet(t *testing.T, dir string, name string, content string) string {
	bundle := filepath.Join(dir, name+".ulysses")
	if err := os.MkdirAll(bundle, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bundle, "Content.xml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return bundle
}

// WriteGroup creates a group directory. The Info.ulgroup descriptor is written only when properties are given.
func WriteGroup(t *testing.T, dir string, name string, properties map[string]any) string {
	group := filepath.Join(dir, name)
	if err := os.MkdirAll(group, 0755); err != nil {
		t.Fatal(err)
	}
	if properties == nil {
		return group
	}
	data, err := plist.Marshal(properties, plist.XMLFormat)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(group, "Info.ulgroup"), data, 0644); err != nil {
		t.Fatal(err)
	}
	return group
}

// WriteFilter creates a filter bundle containing only its descriptor.
func WriteFilter(t *testing.T, dir string, name string) string {
	filter := filepath.Join(dir, name)
	if err := os.MkdirAll(filter, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(filter, "Info.ulfilter"), []byte("<plist/>"), 0644); err != nil {
		t.Fatal(err)
	}
	return filter
}

// FileContent reads a file and fails the test if missing.
func FileContent(t *testing.T, path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed reading %s: %v", path, err)
	}
	return string(b)
}
