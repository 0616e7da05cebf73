package assets

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// SyncResult summarizes one Sync run.
type SyncResult struct {
	// Fetched lists the asset names copied into the destination.
	Fetched []string

	// Skipped lists the asset names already present.
	Skipped []string

	// Bytes is the total payload size of fetched assets.
	Bytes int64
}

// Sync copies each named asset from src into the destination directory,
// skipping assets that already exist there. Each asset is written to a
// uniquely-named temp file and renamed into place, so a failed or cancelled
// sync never leaves a partial asset behind.
func Sync(ctx context.Context, dst string, src Store, names []string) (SyncResult, error) {
	var res SyncResult
	for _, name := range names {
		target := filepath.Join(dst, filepath.FromSlash(name))
		if _, err := os.Stat(target); err == nil {
			slog.Debug("asset already present", "name", name)
			res.Skipped = append(res.Skipped, name)
			continue
		}

		n, err := fetch(ctx, target, src, name)
		if err != nil {
			return res, fmt.Errorf("assets: fetch %s: %w", name, err)
		}
		slog.Debug("fetched asset", "name", name, "bytes", n)
		res.Fetched = append(res.Fetched, name)
		res.Bytes += n
	}
	return res, nil
}

// fetch copies one asset to target via a temp file in the same directory.
func fetch(ctx context.Context, target string, src Store, name string) (int64, error) {
	r, err := src.Open(ctx, name)
	if err != nil {
		return 0, err
	}
	defer r.Close()

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return 0, err
	}

	tmp := target + "." + uuid.NewString() + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(f, r)
	if err != nil {
		f.Close()
		os.Remove(tmp)
		return 0, err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return 0, err
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp)
		return 0, err
	}
	return n, nil
}
