package fsutil

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileMode is used when the caller has no existing mode to preserve.
const DefaultFileMode os.FileMode = 0o644

// WriteAtomic replaces path with content by writing a temp file in the same
// directory and renaming it over the target. The target is untouched on error.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if mode == 0 {
		mode = DefaultFileMode
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}

	committed = true
	return nil
}

// ReplaceFile writes content over the file described by snap, keeping its
// mode. It returns ErrModified if the file changed since snap was taken and
// reports false without writing when content equals what is on disk.
func ReplaceFile(ctx context.Context, snap *Snapshot, content string) (bool, error) {
	changed, err := snap.Changed()
	if err != nil {
		return false, err
	}
	if changed {
		return false, fmt.Errorf("%w: %s", ErrModified, snap.Path)
	}

	if int64(len(content)) == snap.Size && sha256.Sum256([]byte(content)) == snap.Hash {
		return false, nil
	}

	if err := WriteAtomic(ctx, snap.Path, []byte(content), snap.Mode); err != nil {
		return false, err
	}
	return true, nil
}
