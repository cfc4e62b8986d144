//go:build !linux && !darwin

package filesystem

import (
	"os"
	"time"
)

func birthTime(string, os.FileInfo) (time.Time, bool) {
	return time.Time{}, false
}

func setBirthTime(string, time.Time) error {
	return nil
}
