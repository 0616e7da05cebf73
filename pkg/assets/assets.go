// Package assets fetches profile assets (acoustic models, base dictionaries,
// wake-word files) from a remote or local store into a profile directory.
//
// Profiles reference large model artifacts that ship separately from the
// voxjson binary. A Store abstracts where they live (a directory on disk,
// an S3 bucket, an in-memory fake in tests) and Sync copies whichever
// assets the profile directory is still missing. Stores are read-only:
// fetching assets never writes back.
package assets

import (
	"context"
	"io"
)

// Store is a read-only source of profile assets.
//
// Asset names are forward-slash separated and relative to the store root.
// Implementations must be safe for concurrent use.
type Store interface {
	// Open opens the named asset for reading. The caller must close the
	// returned ReadCloser. If the asset does not exist, an error wrapping
	// os.ErrNotExist is returned.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Exists reports whether the named asset exists.
	Exists(ctx context.Context, name string) (bool, error)
}
