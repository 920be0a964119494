package snippets

import "errors"

// Sentinel errors for snippet operations.
var (
	// ErrSetNotFound indicates neither snippet exists for the language.
	ErrSetNotFound = errors.New("snippet set not found")

	// ErrIncompleteSet indicates only one of header and footer exists.
	ErrIncompleteSet = errors.New("snippet set missing required file")

	// ErrInvalidLanguage indicates the language name is empty or contains
	// path separators or dots.
	ErrInvalidLanguage = errors.New("invalid language")

	// ErrInvalidBasePath indicates the snippet directory is not a readable directory.
	ErrInvalidBasePath = errors.New("invalid snippet directory")

	// ErrSnippetRead indicates an I/O error while reading a snippet file.
	ErrSnippetRead = errors.New("failed to read snippet")

	// ErrPathTraversal indicates an attempt to read outside the snippet directory.
	ErrPathTraversal = errors.New("path traversal detected")
)
