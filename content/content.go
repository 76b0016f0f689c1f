// Package content implements a virtual filesystem stitched together
// from an ordered list of search roots, mirroring how a combination of
// mod/DLC/base-game directories is presented as one content tree.
package content

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by [Loader.ReadFile] when logicalPath isn't
// present under any search root.
var ErrNotFound = errors.New("content: file not found in any search root")

// Loader resolves a logical path against an ordered list of search
// roots, returning the first root that has a matching file. Later
// roots act as fallbacks for earlier ones, the same precedence a mod
// load order gives higher-priority content.
type Loader struct {
	roots []string
}

// NewLoader creates a Loader searching roots in the given order.
func NewLoader(roots ...string) *Loader {
	return &Loader{roots: roots}
}

// find returns the first resolved path under any root that names an
// existing regular file.
func (l *Loader) find(logicalPath string) (string, bool) {
	for _, root := range l.roots {
		candidate := filepath.Join(root, logicalPath)

		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}

		return candidate, true
	}

	return "", false
}

// ReadFile reads logicalPath from the first search root that has it,
// returning [ErrNotFound] wrapped with the logical path if no root
// does.
func (l *Loader) ReadFile(logicalPath string) (string, error) {
	path, ok := l.find(logicalPath)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, logicalPath)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is joined from caller-supplied search roots, not network input.
	if err != nil {
		return "", fmt.Errorf("content: reading %s: %w", path, err)
	}

	return string(data), nil
}

// ReadBytes is like [Loader.ReadFile] but returns the raw file bytes,
// for binary content such as terrain images.
func (l *Loader) ReadBytes(logicalPath string) ([]byte, error) {
	path, ok := l.find(logicalPath)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, logicalPath)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is joined from caller-supplied search roots, not network input.
	if err != nil {
		return nil, fmt.Errorf("content: reading %s: %w", path, err)
	}

	return data, nil
}
