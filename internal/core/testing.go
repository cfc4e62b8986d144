package core

import (
	"testing"
	"time"

	"github.com/julien-sobczak/ulysses-export/pkg/clock"
	"github.com/julien-sobczak/ulysses-export/pkg/filesystem"
)

// Reset forces singletons to be recreated. Useful between unit tests.
func Reset() {
	loggerOnce.Reset()
}

/* Reproducible Tests */

// FreezeAt wraps the clock API to register the cleanup function at the end of the test.
func FreezeAt(t *testing.T, point time.Time) time.Time {
	now := clock.FreezeAt(point).Now()
	t.Cleanup(clock.Unfreeze)
	return now
}

// FreezeFileTimes makes files report the clock time as their creation and modification dates.
func FreezeFileTimes(t *testing.T) {
	filesystem.UseReader(filesystem.ClockReader{})
	t.Cleanup(filesystem.RestoreReader)
}
