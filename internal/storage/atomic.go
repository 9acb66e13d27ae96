package storage

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
)

// openDir opens the parent directory for the post-rename fsync.
var openDir = os.Open

// writeFileAtomic replaces path with data via a synced temp file and rename,
// so readers never observe a partially written document.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	syncDir(dir)
	return nil
}

// syncDir flushes the rename to disk where the platform allows it. The
// new content is already in place, so failures here are ignored.
func syncDir(dir string) {
	f, err := openDir(dir)
	if err != nil {
		return
	}
	_ = f.Sync()
	_ = f.Close()
}
