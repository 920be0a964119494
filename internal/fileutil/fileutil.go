// Package fileutil provides the file and path helpers used when writing a
// problem directory.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Permissions for created directories and files.
const (
	DirPerm  = 0o755
	FilePerm = 0o644
)

// ErrNotDirectory indicates a path exists but is not a directory.
var ErrNotDirectory = errors.New("path exists and is not a directory")

// EnsureDir creates dir and any missing parents. An existing directory is
// reused as is.
func EnsureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.MkdirAll(dir, DirPerm)
}

// WriteFileAtomic writes content to path through a temporary file in the same
// directory, then renames it over the target. An existing file is replaced.
func WriteFileAtomic(path string, content []byte) (err error) {
	dir := filepath.Dir(path)

	tmpFile, err := os.CreateTemp(dir, ".probprep-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(content); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err = tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Chmod(tmpPath, FilePerm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// DirWritable reports whether files can be created in dir.
func DirWritable(dir string) error {
	tmpFile, err := os.CreateTemp(dir, ".probprep-check-*")
	if err != nil {
		return err
	}
	name := tmpFile.Name()
	_ = tmpFile.Close()
	return os.Remove(name)
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "leetcode" -> false (config name)
//   - "./probprep.yaml" -> true (relative path)
//   - "/etc/probprep.yaml" -> true (absolute)
//   - "C:\cfg\probprep.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string looks like an http(s) URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
