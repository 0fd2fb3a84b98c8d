// Package fileutil provides small filesystem helpers shared by the mover.
package fileutil

import (
	"io"
	"os"
	"path/filepath"
)

// CopyFile streams src to dst, creating dst's parent directory as needed.
// Used as the fallback when a rename would cross filesystems.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// MoveFile relocates src to dst with a copy-then-remove. Callers should
// prefer os.Rename and fall back here only on cross-device errors.
func MoveFile(src, dst string) error {
	if err := CopyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}
