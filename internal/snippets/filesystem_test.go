package snippets

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeSnippet(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestNewFilesystemLoader(t *testing.T) {
	t.Parallel()

	t.Run("valid directory", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}
		if loader.Dir() == "" {
			t.Error("Dir() should not be empty")
		}
	})

	t.Run("empty path returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader(\"\") error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("nonexistent directory returns error", func(t *testing.T) {
		t.Parallel()

		_, err := NewFilesystemLoader("/nonexistent/path/abc123xyz")
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})

	t.Run("file instead of directory returns error", func(t *testing.T) {
		t.Parallel()

		tmpDir := t.TempDir()
		writeSnippet(t, tmpDir, "file.txt", "test")

		_, err := NewFilesystemLoader(filepath.Join(tmpDir, "file.txt"))
		if !errors.Is(err, ErrInvalidBasePath) {
			t.Errorf("NewFilesystemLoader() error = %v, want ErrInvalidBasePath", err)
		}
	})
}

func TestFilesystemLoader_LoadSet(t *testing.T) {
	t.Parallel()

	t.Run("complete set", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeSnippet(t, dir, "header.cpp", "// custom header\n")
		writeSnippet(t, dir, "footer.cpp", "// custom footer\n")

		loader, err := NewFilesystemLoader(dir)
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}

		set, err := loader.LoadSet("cpp")
		if err != nil {
			t.Fatalf("LoadSet() error = %v", err)
		}
		if set.Header != "// custom header\n" || set.Footer != "// custom footer\n" {
			t.Errorf("LoadSet() = %+v, want custom header and footer", set)
		}
	})

	t.Run("missing set", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}

		_, err = loader.LoadSet("cpp")
		if !errors.Is(err, ErrSetNotFound) {
			t.Errorf("LoadSet() error = %v, want ErrSetNotFound", err)
		}
	})

	t.Run("missing footer", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeSnippet(t, dir, "header.cpp", "h")

		loader, err := NewFilesystemLoader(dir)
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}

		_, err = loader.LoadSet("cpp")
		if !errors.Is(err, ErrIncompleteSet) {
			t.Errorf("LoadSet() error = %v, want ErrIncompleteSet", err)
		}
	})

	t.Run("missing header", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeSnippet(t, dir, "footer.cpp", "f")

		loader, err := NewFilesystemLoader(dir)
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}

		_, err = loader.LoadSet("cpp")
		if !errors.Is(err, ErrIncompleteSet) {
			t.Errorf("LoadSet() error = %v, want ErrIncompleteSet", err)
		}
	})

	t.Run("invalid language", func(t *testing.T) {
		t.Parallel()

		loader, err := NewFilesystemLoader(t.TempDir())
		if err != nil {
			t.Fatalf("NewFilesystemLoader() error = %v", err)
		}

		_, err = loader.LoadSet("../etc")
		if !errors.Is(err, ErrInvalidLanguage) {
			t.Errorf("LoadSet() error = %v, want ErrInvalidLanguage", err)
		}
	})
}

func TestFilesystemLoader_SymlinkEscape(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlinks require privileges on Windows")
	}

	outside := t.TempDir()
	writeSnippet(t, outside, "secret", "outside")

	dir := t.TempDir()
	writeSnippet(t, dir, "footer.cpp", "f")
	if err := os.Symlink(filepath.Join(outside, "secret"), filepath.Join(dir, "header.cpp")); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}

	loader, err := NewFilesystemLoader(dir)
	if err != nil {
		t.Fatalf("NewFilesystemLoader() error = %v", err)
	}

	_, err = loader.LoadSet("cpp")
	if !errors.Is(err, ErrPathTraversal) {
		t.Errorf("LoadSet() error = %v, want ErrPathTraversal", err)
	}
}
