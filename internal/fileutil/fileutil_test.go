package fileutil_test

// Notes:
// - The write and close error branches in WriteFileAtomic are not tested:
//   triggering disk write failures is platform-specific.
// - DirWritable on a read-only directory is skipped when running as root,
//   which ignores permission bits.

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/alnah/go-probprep/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestEnsureDir - Create-if-absent directories
// ---------------------------------------------------------------------------

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	t.Run("creates nested directory", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "a", "Two Sum")
		if err := fileutil.EnsureDir(dir); err != nil {
			t.Fatalf("EnsureDir() error = %v", err)
		}
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("directory not created: %v", err)
		}
	})

	t.Run("existing directory reused", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		marker := filepath.Join(dir, "keep.txt")
		if err := os.WriteFile(marker, []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to write marker: %v", err)
		}

		if err := fileutil.EnsureDir(dir); err != nil {
			t.Fatalf("EnsureDir() error = %v", err)
		}
		if !fileutil.FileExists(marker) {
			t.Error("existing content should be preserved")
		}
	})

	t.Run("file in the way", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "file")
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}

		err := fileutil.EnsureDir(path)
		if !errors.Is(err, fileutil.ErrNotDirectory) {
			t.Errorf("EnsureDir() error = %v, want ErrNotDirectory", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestWriteFileAtomic - Atomic file replacement
// ---------------------------------------------------------------------------

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "README.md")
		if err := fileutil.WriteFileAtomic(path, []byte("# Two Sum\n")); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile() error = %v", err)
		}
		if string(got) != "# Two Sum\n" {
			t.Errorf("content = %q, want %q", got, "# Two Sum\n")
		}
	})

	t.Run("overwrites existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "Two Sum.cpp")
		if err := os.WriteFile(path, []byte("old content that is longer"), 0o644); err != nil {
			t.Fatalf("failed to seed file: %v", err)
		}

		if err := fileutil.WriteFileAtomic(path, []byte("new")); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		got, _ := os.ReadFile(path)
		if string(got) != "new" {
			t.Errorf("content = %q, want %q", got, "new")
		}
	})

	t.Run("leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		if err := fileutil.WriteFileAtomic(filepath.Join(dir, "out"), []byte("x")); err != nil {
			t.Fatalf("WriteFileAtomic() error = %v", err)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("ReadDir() error = %v", err)
		}
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), ".probprep-") {
				t.Errorf("temp file left behind: %s", e.Name())
			}
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "out")
		if err := fileutil.WriteFileAtomic(path, []byte("x")); err == nil {
			t.Error("WriteFileAtomic() expected error for missing directory")
		}
	})
}

// ---------------------------------------------------------------------------
// TestDirWritable - Output directory check
// ---------------------------------------------------------------------------

func TestDirWritable(t *testing.T) {
	t.Parallel()

	t.Run("writable temp dir", func(t *testing.T) {
		t.Parallel()

		if err := fileutil.DirWritable(t.TempDir()); err != nil {
			t.Errorf("DirWritable() error = %v", err)
		}
	})

	t.Run("missing dir", func(t *testing.T) {
		t.Parallel()

		if err := fileutil.DirWritable(filepath.Join(t.TempDir(), "nope")); err == nil {
			t.Error("DirWritable() expected error for missing directory")
		}
	})

	t.Run("read-only dir", func(t *testing.T) {
		t.Parallel()

		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("permission bits not enforced")
		}

		dir := t.TempDir()
		if err := os.Chmod(dir, 0o555); err != nil {
			t.Fatalf("Chmod() error = %v", err)
		}
		t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

		if err := fileutil.DirWritable(dir); err == nil {
			t.Error("DirWritable() expected error for read-only directory")
		}
	})
}

// ---------------------------------------------------------------------------
// TestFileExists - File existence check
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()

	testFile := filepath.Join(tempDir, "test.txt")
	if err := os.WriteFile(testFile, []byte("content"), 0o644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{name: "existing file returns true", path: testFile, want: true},
		{name: "directory returns false", path: tempDir, want: false},
		{name: "nonexistent path returns false", path: filepath.Join(tempDir, "nonexistent"), want: false},
		{name: "empty path returns false", path: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := fileutil.FileExists(tt.path); got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath / TestIsURL - String classification
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{input: "leetcode", want: false},
		{input: "my-config", want: false},
		{input: "./probprep.yaml", want: true},
		{input: "../shared/probprep.yaml", want: true},
		{input: "/etc/probprep.yaml", want: true},
		{input: `C:\cfg\probprep.yaml`, want: true},
		{input: "", want: false},
	}

	for _, tt := range tests {
		if got := fileutil.IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{input: "https://leetcode.com/problems/two-sum/", want: true},
		{input: "http://localhost:8080/p", want: true},
		{input: "ftp://example.com", want: false},
		{input: "leetcode.com/problems/two-sum", want: false},
		{input: "HTTPS://LEETCODE.COM", want: false},
		{input: "", want: false},
	}

	for _, tt := range tests {
		if got := fileutil.IsURL(tt.input); got != tt.want {
			t.Errorf("IsURL(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
