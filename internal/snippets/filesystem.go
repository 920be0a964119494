package snippets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader loads snippets from a directory on disk.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader for dir.
// Returns ErrInvalidBasePath if dir is not a readable directory.
func NewFilesystemLoader(dir string) (*FilesystemLoader, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}

	// Resolve symlinks so containment checks compare real paths.
	if realPath, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = realPath
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: directory does not exist: %s", ErrInvalidBasePath, absPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, absPath)
	}
	if _, err := os.ReadDir(absPath); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}

	return &FilesystemLoader{basePath: absPath}, nil
}

// Dir returns the resolved snippet directory.
func (f *FilesystemLoader) Dir() string {
	return f.basePath
}

// LoadSet reads {dir}/header.<language> and {dir}/footer.<language>.
func (f *FilesystemLoader) LoadSet(language string) (*Set, error) {
	if err := ValidateLanguage(language); err != nil {
		return nil, err
	}

	header, headerErr := f.readSnippet(headerStem + "." + language)
	footer, footerErr := f.readSnippet(footerStem + "." + language)

	if isTraversal(headerErr) {
		return nil, headerErr
	}
	if isTraversal(footerErr) {
		return nil, footerErr
	}

	return buildSet(language, header, headerErr, footer, footerErr)
}

func (f *FilesystemLoader) readSnippet(name string) ([]byte, error) {
	filePath := filepath.Join(f.basePath, name)
	if err := f.verifyPathContainment(filePath); err != nil {
		return nil, err
	}
	return os.ReadFile(filePath) // #nosec G304 -- path validated above
}

// verifyPathContainment ensures the resolved file path stays within basePath,
// including when the file is a symlink pointing elsewhere.
func (f *FilesystemLoader) verifyPathContainment(filePath string) error {
	absFilePath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("%w: cannot resolve path", ErrPathTraversal)
	}

	// A missing file keeps its unresolved path; reading it fails later.
	if realPath, err := filepath.EvalSymlinks(absFilePath); err == nil {
		absFilePath = realPath
	}

	if !strings.HasPrefix(absFilePath, f.basePath+string(filepath.Separator)) {
		return fmt.Errorf("%w: path escapes snippet directory", ErrPathTraversal)
	}
	return nil
}

func isTraversal(err error) bool {
	return err != nil && errors.Is(err, ErrPathTraversal)
}

// Compile-time interface check.
var _ Loader = (*FilesystemLoader)(nil)
