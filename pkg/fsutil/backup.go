package fsutil

import (
	"context"
	"errors"
	"fmt"
	"os"
)

// BackupSuffix is appended to a list's path to name its sidecar backup.
const BackupSuffix = ".mdcurate.bak"

// BackupPath returns the sidecar backup path for path.
func BackupPath(path string) string {
	return path + BackupSuffix
}

// CreateBackup copies the file described by snap to its sidecar path. An
// existing backup is left alone so repeated runs keep the oldest copy.
// It reports whether a backup was written.
func CreateBackup(ctx context.Context, snap *Snapshot, content string) (bool, error) {
	backupPath := BackupPath(snap.Path)

	_, err := os.Stat(backupPath)
	switch {
	case err == nil:
		return false, nil
	case !errors.Is(err, os.ErrNotExist):
		return false, fmt.Errorf("stat backup: %w", err)
	}

	if err := WriteAtomic(ctx, backupPath, []byte(content), snap.Mode); err != nil {
		return false, fmt.Errorf("write backup: %w", err)
	}
	return true, nil
}
