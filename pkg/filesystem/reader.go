package filesystem

import (
	"os"
	"sync"
	"time"

	"github.com/julien-sobczak/ulysses-export/pkg/clock"
)

// Reader gives access to the file metadata an export depends on:
// directory detection while crawling and sheet dates.
type Reader interface {
	Stat(name string) (os.FileInfo, error)
	Times(name string) (Times, error)
}

var (
	readerMu sync.RWMutex
	reader   Reader = SystemReader{}
)

// SystemReader reads metadata from the file system.
type SystemReader struct{}

func (SystemReader) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Times uses the birth time when the platform records one, the modification time otherwise.
func (SystemReader) Times(name string) (Times, error) {
	stat, err := os.Stat(name)
	if err != nil {
		return Times{}, err
	}
	times := Times{
		Created:  stat.ModTime(),
		Modified: stat.ModTime(),
	}
	if created, ok := birthTime(name, stat); ok {
		times.Created = created
	}
	return times, nil
}

// ClockReader reports the clock time as the dates of every file, for reproducible tests.
// Errors still come from the file system.
type ClockReader struct{}

func (ClockReader) Stat(name string) (os.FileInfo, error) {
	stat, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	return clockFileInfo{stat}, nil
}

func (ClockReader) Times(name string) (Times, error) {
	if _, err := os.Stat(name); err != nil {
		return Times{}, err
	}
	now := clock.Now()
	return Times{Created: now, Modified: now}, nil
}

type clockFileInfo struct {
	os.FileInfo
}

func (fi clockFileInfo) ModTime() time.Time {
	return clock.Now()
}

// CurrentReader returns the reader used by Stat and ReadTimes.
func CurrentReader() Reader {
	readerMu.RLock()
	defer readerMu.RUnlock()
	return reader
}

// UseReader replaces the current reader until RestoreReader is called.
func UseReader(r Reader) {
	readerMu.Lock()
	defer readerMu.Unlock()
	reader = r
}

func RestoreReader() {
	UseReader(SystemReader{})
}

// Stat is os.Stat through the current reader.
func Stat(name string) (os.FileInfo, error) {
	return CurrentReader().Stat(name)
}

// ReadTimes returns the creation and modification times of a file or directory.
func ReadTimes(name string) (Times, error) {
	return CurrentReader().Times(name)
}
