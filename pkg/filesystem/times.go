package filesystem

import (
	"fmt"
	"os"
	"time"
)

// Times are the timestamps restored on exported files.
type Times struct {
	Created  time.Time
	Modified time.Time
}

// SetTimes applies the given times to a file.
// The modification (and access) time is always set. The creation time is set only where the platform allows it.
func SetTimes(path string, times Times) error {
	if err := os.Chtimes(path, times.Modified, times.Modified); err != nil {
		return err
	}
	if err := setBirthTime(path, times.Created); err != nil {
		return fmt.Errorf("unable to set creation date on %q: %w", path, err)
	}
	return nil
}
