// Package utils provides general-purpose helpers shared by the store and
// the client: atomic file replacement and time-ordered identifiers.
package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// Directory and file modes for everything easy-otp writes. Only the owner
// may read secrets, even plaintext exports.
const (
	DirPerm  os.FileMode = 0o700
	FilePerm os.FileMode = 0o600
)

// WriteFileAtomic replaces path with data so that a crash leaves either the
// old or the new content on disk, never a mix.
//
// Steps:
//  1. write data to a temp file in the same directory;
//  2. fsync and close it;
//  3. rename it over path.
//
// The parent directory must exist: a missing one fails with an error
// matching fs.ErrNotExist. The temp file is removed on any failure.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	committed = true

	syncDir(dir)
	return nil
}

// EnsureDir creates dir and its parents with DirPerm.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return nil
}

// syncDir persists the rename. Not every platform can fsync a directory,
// so errors are ignored.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}
