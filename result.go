package probprep

import (
	"fmt"
	"path/filepath"

	"github.com/alnah/go-probprep/internal/fileutil"
)

// Output file names inside a problem directory.
const (
	ReadmeFileName = "README.md"
	HTMLFileName   = "README.html"
)

// Result holds the documents built for one problem.
type Result struct {
	Problem  Problem
	Language string
	Readme   []byte
	Source   []byte
	HTML     []byte // nil unless the HTML preview is enabled
}

// SourceFileName returns "<title>.<language>".
func (r *Result) SourceFileName() string {
	return r.Problem.Title + "." + r.Language
}

// SavedFiles lists the paths written by Save. HTML is empty when no preview
// was rendered.
type SavedFiles struct {
	Dir    string
	Readme string
	Source string
	HTML   string
}

// Save writes the result under outDir/<title>. The directory is created when
// absent and reused when present; existing files are overwritten.
// The title is used as is, so titles the filesystem rejects fail here.
func (r *Result) Save(outDir string) (*SavedFiles, error) {
	dir := filepath.Join(outDir, r.Problem.Title)
	if err := fileutil.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateDir, err)
	}

	saved := &SavedFiles{
		Dir:    dir,
		Readme: filepath.Join(dir, ReadmeFileName),
		Source: filepath.Join(dir, r.SourceFileName()),
	}

	if err := fileutil.WriteFileAtomic(saved.Readme, r.Readme); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if err := fileutil.WriteFileAtomic(saved.Source, r.Source); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	if r.HTML != nil {
		saved.HTML = filepath.Join(dir, HTMLFileName)
		if err := fileutil.WriteFileAtomic(saved.HTML, r.HTML); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}

	return saved, nil
}
