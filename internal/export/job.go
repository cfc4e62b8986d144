package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julien-sobczak/ulysses-export/internal/sheet"
	"github.com/julien-sobczak/ulysses-export/pkg/clock"
	"github.com/julien-sobczak/ulysses-export/pkg/filesystem"
	"github.com/julien-sobczak/ulysses-export/pkg/oid"
)

// SheetJob converts one sheet bundle into a Markdown file.
type SheetJob struct {
	ID              oid.OID
	SourcePath      string // Content.xml
	DestinationPath string // Fallback name in the output directory, numbered when taken
	CreatedAt       time.Time
	ModifiedAt      time.Time
	AppendFooter    bool
}

func (j *SheetJob) String() string {
	return fmt.Sprintf("sheet %s (%s)", j.ID.Short(), j.SourcePath)
}

// Times returns the sheet timestamps to restore on the exported file.
func (j *SheetJob) Times() filesystem.Times {
	return filesystem.Times{
		Created:  j.CreatedAt,
		Modified: j.ModifiedAt,
	}
}

// Footer returns the metadata block for the converted sheet.
func (j *SheetJob) Footer(result *sheet.Result) sheet.Footer {
	return sheet.Footer{
		ExportedAt:  clock.Now(),
		Keywords:    result.Keywords,
		Attachments: result.Attachments,
		Created:     j.CreatedAt,
		Modified:    j.ModifiedAt,
	}
}

// Run converts the sheet into a temporary file next to the destination, then finalizes it.
// Jobs sharing a destination never write to the same file.
// Errors concern the conversion or the final move. No file is left behind in this case.
// Recoverable finalization failures are reported in the returned Finalization.
func (j *SheetJob) Run(options ...sheet.Option) (*sheet.Finalization, error) {
	src, err := os.Open(j.SourcePath)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst, err := os.CreateTemp(filepath.Dir(j.DestinationPath), sheet.TempPattern)
	if err != nil {
		return nil, err
	}
	tempPath := dst.Name()

	// CreateTemp restricts the file to its owner
	err = dst.Chmod(0644)
	var result *sheet.Result
	if err == nil {
		result, err = sheet.Convert(bufio.NewReader(src), dst, options...)
	}
	if err == nil && j.AppendFooter {
		err = sheet.WriteFooter(dst, j.Footer(result))
	}
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(tempPath)
		return nil, err
	}

	finalization, err := sheet.Finalize(tempPath, j.DestinationPath, result, j.Times())
	if err != nil {
		return nil, err
	}
	return &finalization, nil
}
