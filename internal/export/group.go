package export

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"howett.net/plist"
)

const (
	// SheetExtension is the extension of sheet bundles.
	SheetExtension = "ulysses"
	// ContentFile is the markup file inside a sheet bundle.
	ContentFile = "Content.xml"
	// GroupDescriptor is the optional property list describing a group.
	GroupDescriptor = "Info.ulgroup"
	// FilterDescriptor is the only file inside a filter bundle.
	FilterDescriptor = "Info.ulfilter"
	// InboxName is used for groups whose descriptor has no display name.
	InboxName = "Inbox"
)

// GroupName returns the name of the output directory for a group.
//
// The descriptor display name wins. A descriptor without display name is the
// library inbox. Without descriptor, the directory name is kept.
// On errors, the directory name is returned with the error.
func GroupName(dir string) (string, error) {
	name := filepath.Base(dir)

	data, err := os.ReadFile(filepath.Join(dir, GroupDescriptor))
	if errors.Is(err, fs.ErrNotExist) {
		return name, nil
	}
	if err != nil {
		return name, err
	}

	var properties map[string]any
	if _, err := plist.Unmarshal(data, &properties); err != nil {
		return name, fmt.Errorf("invalid group descriptor %q: %w", filepath.Join(dir, GroupDescriptor), err)
	}

	for _, key := range []string{"DisplayName", "displayName"} {
		if displayName, ok := properties[key].(string); ok {
			return displayName, nil
		}
	}
	return InboxName, nil
}
