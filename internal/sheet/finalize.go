package sheet

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/julien-sobczak/ulysses-export/pkg/filesystem"
	"github.com/julien-sobczak/ulysses-export/pkg/text"
	"golang.org/x/text/unicode/norm"
)

// Extension of exported files.
const Extension = ".markdown"

// TempPattern names the files sheets are converted into before Finalize.
const TempPattern = ".sheet-*" + Extension

// MaxCopies bounds the numbered names tried when sheets share a name.
const MaxCopies = 1000

const (
	// Layout of the export date in the footer (ex: 2023-01-01 14:00:00 +0000)
	ExportedAtLayout = "2006-01-02 15:04:05 -0700"
	// Layout of the sheet dates in the footer (ex: January 1, 2023 at 2:00:00 PM UTC)
	DateLayout = "January 2, 2006 at 3:04:05 PM MST"
)

// Footer is the metadata block appended after the converted body.
type Footer struct {
	ExportedAt  time.Time
	Keywords    string
	Attachments string
	Created     time.Time
	Modified    time.Time
}

// String returns the footer exactly as appended to files.
func (f Footer) String() string {
	var sb strings.Builder
	sb.WriteString("\n\n\n")
	sb.WriteString(fmt.Sprintf("--- Exported from Ulysses on %s ---\n", f.ExportedAt.Format(ExportedAtLayout)))
	sb.WriteString(fmt.Sprintf("KEYWORDS: %s\n", f.Keywords))
	sb.WriteString(fmt.Sprintf("ATTACHMENTS: %s\n", f.Attachments))
	sb.WriteString(fmt.Sprintf("CREATED DATE: %s\n", f.Created.Format(DateLayout)))
	sb.WriteString(fmt.Sprintf("MODIFIED DATE: %s", f.Modified.Format(DateLayout)))
	return sb.String()
}

// WriteFooter appends the footer to w.
func WriteFooter(w io.Writer, f Footer) error {
	_, err := io.WriteString(w, f.String())
	return err
}

// SanitizeTitle turns a title into a file name.
// Ex: "A/B\C:D" => "A-BC - D"
func SanitizeTitle(title string) string {
	clean := strings.ReplaceAll(title, "/", "-")
	clean = strings.ReplaceAll(clean, `\`, "")
	clean = strings.ReplaceAll(clean, ":", " - ")
	// Titles typed on macOS may use decomposed characters
	return norm.NFC.String(clean)
}

// Destination returns the path of the file named after the title, next to path.
func Destination(path string, title string) string {
	return filepath.Join(filepath.Dir(path), SanitizeTitle(title)+Extension)
}

// Relocate moves the file at path to a sibling named after the title, without overwriting any file.
func Relocate(path string, title string) (string, error) {
	destination := Destination(path, title)
	if destination == path {
		return path, nil
	}
	if err := move(path, destination); err != nil {
		return path, err
	}
	return destination, nil
}

// move renames src to dst unless dst already exists.
func move(src, dst string) error {
	err := os.Link(src, dst)
	if err == nil {
		return os.Remove(src)
	}

	if errors.Is(err, fs.ErrExist) {
		if same(src, dst) {
			// Case-insensitive file systems: only the case differs
			return os.Rename(src, dst)
		}
		return fmt.Errorf("unable to move %q to %q: %w", src, dst, ErrDestinationExists)
	}

	// Hard links are not supported everywhere
	if _, statErr := os.Lstat(dst); statErr == nil {
		return fmt.Errorf("unable to move %q to %q: %w", src, dst, ErrDestinationExists)
	}
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("unable to move %q to %q: %w", src, dst, err)
	}
	return nil
}

func same(a, b string) bool {
	statA, err := os.Stat(a)
	if err != nil {
		return false
	}
	statB, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(statA, statB)
}

// Finalization reports the outcome of Finalize.
// Both errors are recoverable: the sheet is exported in any case.
type Finalization struct {
	Path string
	// RelocateErr is the first name found taken
	RelocateErr error
	TimesErr    error
}

// Finalize moves the converted file at tempPath to its final name, then restores the sheet times.
//
// Names are tried in order: the title, fallbackPath, then numbered variants
// of fallbackPath (ex: "Note 2.markdown"). An existing file is never replaced.
// On error, the file at tempPath is removed.
func Finalize(tempPath, fallbackPath string, result *Result, times filesystem.Times) (Finalization, error) {
	var finalization Finalization

	var names []string
	if result != nil && result.HasTitle && !text.IsBlank(result.Title) {
		if destination := Destination(fallbackPath, result.Title); destination != fallbackPath {
			names = append(names, destination)
		}
	}
	names = append(names, fallbackPath)
	nameAt := func(i int) string {
		if i < len(names) {
			return names[i]
		}
		return fmt.Sprintf("%s %d%s", text.TrimExtension(fallbackPath), i-len(names)+2, Extension)
	}

	for i := 0; i < len(names)+MaxCopies-1; i++ {
		name := nameAt(i)
		err := move(tempPath, name)
		if err == nil {
			finalization.Path = name
			break
		}
		if !errors.Is(err, ErrDestinationExists) {
			os.Remove(tempPath)
			return finalization, err
		}
		if finalization.RelocateErr == nil {
			finalization.RelocateErr = err
		}
	}
	if finalization.Path == "" {
		os.Remove(tempPath)
		return finalization, fmt.Errorf("no free name for %q: %w", fallbackPath, ErrDestinationExists)
	}

	finalization.TimesErr = filesystem.SetTimes(finalization.Path, times)
	return finalization, nil
}
