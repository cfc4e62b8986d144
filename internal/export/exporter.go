package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofrs/flock"
	"github.com/julien-sobczak/ulysses-export/internal/core"
	"github.com/julien-sobczak/ulysses-export/internal/sheet"
	"github.com/julien-sobczak/ulysses-export/pkg/clock"
	"github.com/julien-sobczak/ulysses-export/pkg/console"
	"golang.org/x/sync/errgroup"
)

// LockFileName guards an output directory against concurrent exports.
const LockFileName = ".ulysses-export.lock"

// ErrLocked is returned when another export writes into the same output directory.
var ErrLocked = errors.New("another export is running into this output directory")

// Failure is a sheet that could not be exported.
type Failure struct {
	Job *SheetJob
	Err error
}

// Skip is a directory ignored during the walk.
type Skip struct {
	Path string
	Err  error
}

// Report summarizes an export.
type Report struct {
	Exported    int
	Failures    []Failure
	Skipped     []Skip
	Directories []string
	Duration    time.Duration
}

// Failed returns if at least one sheet was not exported.
func (r *Report) Failed() bool {
	return len(r.Failures) > 0
}

// Exporter converts a whole Ulysses library.
type Exporter struct {
	config   *core.Config
	logger   *core.Logger
	progress *console.ProgressLog
}

func NewExporter(config *core.Config, options ...func(*Exporter)) *Exporter {
	e := &Exporter{
		config: config,
		logger: core.CurrentLogger(),
	}
	for _, option := range options {
		option(e)
	}
	if e.progress == nil {
		e.progress = console.NewProgressLog(console.Every(config.ProgressEvery))
	}
	return e
}

// WithLogger overrides the default logger.
func WithLogger(logger *core.Logger) func(*Exporter) {
	return func(e *Exporter) {
		e.logger = logger
	}
}

// WithProgress overrides the default progress printer.
func WithProgress(progress *console.ProgressLog) func(*Exporter) {
	return func(e *Exporter) {
		e.progress = progress
	}
}

// Run exports every sheet found in the input directory.
// Errors are returned only when the export cannot start or is interrupted.
// Sheets failing to convert are listed in the report.
func (e *Exporter) Run(ctx context.Context) (*Report, error) {
	start := clock.Now()

	if err := e.config.Check(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(e.config.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("unable to create output directory: %w", err)
	}

	lockPath := filepath.Join(e.config.OutputDir, LockFileName)
	lock := flock.New(lockPath)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("unable to lock output directory: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}
	defer func() {
		lock.Unlock()
		os.Remove(lockPath)
	}()

	e.logger.Print("Starting export...")

	var (
		mu       sync.Mutex
		report   Report
		exported atomic.Int64
		manifest Manifest
		registry = NewRegistry()
	)

	var g errgroup.Group
	g.SetLimit(e.config.Workers())

	walker := &Walker{
		KeepGroups:   e.config.KeepGroups,
		AppendFooter: e.config.AppendMeta(),
		Logger:       e.logger,
		OnDirectory:  manifest.Add,
		OnSkip: func(path string, err error) {
			mu.Lock()
			defer mu.Unlock()
			report.Skipped = append(report.Skipped, Skip{Path: path, Err: err})
		},
		OnSheet: func(job *SheetJob) {
			registry.Register(job)
			g.Go(func() error {
				defer registry.Deregister(job.ID)
				if ctx.Err() != nil {
					return nil
				}
				if err := e.runJob(job); err != nil {
					e.logger.Warnf("Error exporting %s: %v", job.SourcePath, err)
					mu.Lock()
					report.Failures = append(report.Failures, Failure{Job: job, Err: err})
					mu.Unlock()
					return nil
				}
				n := int(exported.Add(1))
				e.progress.Log(n, fmt.Sprintf("Exported %d sheets.", n))
				return nil
			})
		},
	}

	walkErr := walker.Walk(ctx, e.config.InputDir, e.config.OutputDir)
	g.Wait()

	report.Exported = int(exported.Load())
	report.Directories = manifest.Directories()

	// Terminate the progress line whatever happens next
	e.progress.Clear(fmt.Sprintf("Exported %d sheets.", report.Exported))
	report.Duration = clock.Since(start)

	if e.config.KeepGroups {
		if err := manifest.WriteFile(filepath.Join(e.config.OutputDir, ManifestFileName)); err != nil {
			return &report, err
		}
	}

	if walkErr != nil {
		return &report, fmt.Errorf("export interrupted: %w", walkErr)
	}
	return &report, nil
}

func (e *Exporter) runJob(job *SheetJob) error {
	var options []sheet.Option
	if e.config.IgnoreUnknownTags {
		options = append(options, sheet.IgnoreUnknownTags(func(err *sheet.UnknownTagError) {
			e.logger.Debugf("Ignoring text in %s: %v", job.SourcePath, err)
		}))
	}

	finalization, err := job.Run(options...)
	if err != nil {
		return err
	}
	if finalization.RelocateErr != nil {
		e.logger.Infof("Exporting %s under another name: %v", job.SourcePath, finalization.RelocateErr)
	}
	e.logger.Infof("Exported %s", finalization.Path)
	if finalization.TimesErr != nil {
		e.logger.Infof("Unable to restore dates on %s: %v", finalization.Path, finalization.TimesErr)
	}
	return nil
}
