package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Dir implements Store over a local directory, e.g. an unpacked profile
// archive or a shared network mount.
type Dir struct {
	root string
}

// NewDir creates a Dir store rooted at path. The directory must exist.
func NewDir(path string) (*Dir, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets: %s is not a directory", abs)
	}
	return &Dir{root: abs}, nil
}

// resolve turns an asset name into an absolute filesystem path.
func (d *Dir) resolve(name string) string {
	return filepath.Join(d.root, filepath.FromSlash(name))
}

// Open opens the named asset for reading.
func (d *Dir) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f, err := os.Open(d.resolve(name))
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Exists reports whether the named asset exists.
func (d *Dir) Exists(_ context.Context, name string) (bool, error) {
	_, err := os.Stat(d.resolve(name))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Compile-time interface check.
var _ Store = (*Dir)(nil)
