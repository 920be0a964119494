package probprep

import (
	"errors"

	"github.com/alnah/go-probprep/internal/snippets"
)

// DefaultLanguage is the source language used when none is configured.
const DefaultLanguage = snippets.DefaultLanguage

// SnippetLoader loads the header and footer wrapped around starter code.
// Implementations may read from disk, embedded files, or anywhere else.
//
// The library provides NewSnippetLoader() for directory-based loading with
// fallback to the built-in snippets.
type SnippetLoader interface {
	// LoadSnippets returns the snippet set for a language (a file extension
	// such as "cpp"). Returns ErrSnippetsNotFound if the language is unknown.
	LoadSnippets(language string) (*SnippetSet, error)
}

// SnippetSet is the header and footer for one language.
type SnippetSet struct {
	Language string
	Header   string
	Footer   string
}

// NewSnippetLoader creates a SnippetLoader for dir.
// If dir is empty, only the built-in snippets are used. Otherwise dir must
// hold header.<lang> and footer.<lang> files; languages absent from dir fall
// back to the built-in snippets.
//
// Returns ErrInvalidSnippetDir if dir is set but not a readable directory.
func NewSnippetLoader(dir string) (SnippetLoader, error) {
	resolver, err := snippets.NewResolver(dir)
	if err != nil {
		return nil, convertSnippetError(err)
	}
	return &snippetLoaderAdapter{loader: resolver}, nil
}

// SnippetDir returns the resolved custom snippet directory behind loader.
// It returns "" when loader uses only the built-in snippets or was not
// created by NewSnippetLoader.
func SnippetDir(loader SnippetLoader) string {
	a, ok := loader.(*snippetLoaderAdapter)
	if !ok {
		return ""
	}
	return a.loader.Dir()
}

// BuiltinLanguages lists the languages with built-in snippets.
func BuiltinLanguages() []string {
	return snippets.NewEmbeddedLoader().Languages()
}

// snippetLoaderAdapter exposes an internal loader through public types.
type snippetLoaderAdapter struct {
	loader *snippets.Resolver
}

func (a *snippetLoaderAdapter) LoadSnippets(language string) (*SnippetSet, error) {
	set, err := a.loader.LoadSet(language)
	if err != nil {
		return nil, convertSnippetError(err)
	}
	return &SnippetSet{Language: set.Language, Header: set.Header, Footer: set.Footer}, nil
}

// convertSnippetError maps internal snippet errors to public errors.
func convertSnippetError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, snippets.ErrSetNotFound):
		return wrapError(ErrSnippetsNotFound, err)
	case errors.Is(err, snippets.ErrIncompleteSet):
		return wrapError(ErrIncompleteSnippet, err)
	case errors.Is(err, snippets.ErrInvalidLanguage):
		return wrapError(ErrInvalidLanguage, err)
	case errors.Is(err, snippets.ErrInvalidBasePath),
		errors.Is(err, snippets.ErrPathTraversal):
		return wrapError(ErrInvalidSnippetDir, err)
	default:
		return err
	}
}

// wrapError creates an error that reads like original but matches sentinel
// with errors.Is. Internal sentinels stay hidden behind internal/.
func wrapError(sentinel, original error) error {
	return &wrappedError{sentinel: sentinel, original: original}
}

type wrappedError struct {
	sentinel error
	original error
}

func (e *wrappedError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is matching.
func (e *wrappedError) Unwrap() error {
	return e.sentinel
}
