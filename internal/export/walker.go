package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julien-sobczak/ulysses-export/internal/core"
	"github.com/julien-sobczak/ulysses-export/internal/sheet"
	"github.com/julien-sobczak/ulysses-export/pkg/clock"
	"github.com/julien-sobczak/ulysses-export/pkg/filesystem"
	"github.com/julien-sobczak/ulysses-export/pkg/oid"
	"github.com/julien-sobczak/ulysses-export/pkg/text"
)

// ErrMissingContent is reported for sheet bundles without Content.xml.
var ErrMissingContent = errors.New("missing " + ContentFile)

// DirectoryKind is the role of a directory inside a Ulysses library.
type DirectoryKind int

const (
	GroupDirectory DirectoryKind = iota
	SheetDirectory
	FilterDirectory
)

func (k DirectoryKind) String() string {
	switch k {
	case SheetDirectory:
		return "sheet"
	case FilterDirectory:
		return "filter"
	}
	return "group"
}

// Classify determines the kind of a directory from its name and entries.
func Classify(path string, entries []os.DirEntry) DirectoryKind {
	if text.HasExtension(path, SheetExtension) {
		return SheetDirectory
	}
	var visible []os.DirEntry
	for _, entry := range entries {
		// Finder litters directories with .DS_Store
		if !strings.HasPrefix(entry.Name(), ".") {
			visible = append(visible, entry)
		}
	}
	if len(visible) == 1 && visible[0].Name() == FilterDescriptor {
		return FilterDirectory
	}
	return GroupDirectory
}

// Walker crawls a Ulysses library depth-first.
//
// Group directories are created before their children are visited so that
// sheets can be converted as soon as they are found.
type Walker struct {
	KeepGroups   bool
	AppendFooter bool

	// OnSheet is called for every sheet bundle found.
	OnSheet func(job *SheetJob)
	// OnDirectory is called for every output directory created for a group when groups are kept.
	OnDirectory func(path string)
	// OnSkip is called for directories that cannot be exported.
	OnSkip func(path string, err error)

	Logger *core.Logger
}

// Walk visits the library in inputDir and schedules jobs writing into outputDir.
func (w *Walker) Walk(ctx context.Context, inputDir, outputDir string) error {
	if w.Logger == nil {
		w.Logger = core.CurrentLogger()
	}
	return w.crawl(ctx, inputDir, outputDir)
}

func (w *Walker) crawl(ctx context.Context, path, output string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.Logger.Infof("Scanning %s...", path)

	stat, err := filesystem.Stat(path)
	if err != nil || !stat.IsDir() {
		// Only directories matter
		return nil
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		w.skip(path, err)
		return nil
	}

	switch Classify(path, entries) {
	case SheetDirectory:
		w.schedule(path, output)
		return nil
	case FilterDirectory:
		// Saved searches contain no text
		w.Logger.Debugf("Skipping filter %s", path)
		return nil
	}

	name, err := GroupName(path)
	if err != nil {
		w.Logger.Infof("Unable to read group name of %s: %v", path, err)
	}

	newOutput := output
	if w.KeepGroups {
		newOutput = filepath.Join(output, name)
	}
	if err := os.MkdirAll(newOutput, 0755); err != nil {
		w.skip(path, fmt.Errorf("unable to create output directory: %w", err))
		return nil
	}
	if w.KeepGroups && w.OnDirectory != nil {
		w.OnDirectory(newOutput)
	}

	for _, entry := range entries {
		if err := w.crawl(ctx, filepath.Join(path, entry.Name()), newOutput); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) schedule(bundle, output string) {
	source := filepath.Join(bundle, ContentFile)
	if _, err := os.Stat(source); err != nil {
		w.skip(bundle, ErrMissingContent)
		return
	}

	times, err := filesystem.ReadTimes(bundle)
	if err != nil {
		now := clock.Now()
		times = filesystem.Times{Created: now, Modified: now}
	}

	job := &SheetJob{
		ID:              oid.New(),
		SourcePath:      source,
		DestinationPath: filepath.Join(output, text.TrimExtension(filepath.Base(bundle))+sheet.Extension),
		CreatedAt:       times.Created,
		ModifiedAt:      times.Modified,
		AppendFooter:    w.AppendFooter,
	}
	if w.OnSheet != nil {
		w.OnSheet(job)
	}
}

func (w *Walker) skip(path string, err error) {
	w.Logger.Infof("Skipping %s: %v", path, err)
	if w.OnSkip != nil {
		w.OnSkip(path, err)
	}
}
