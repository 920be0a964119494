package main

import (
	"errors"
	"os"

	probprep "github.com/alnah/go-probprep"
	"github.com/alnah/go-probprep/internal/config"
	"github.com/alnah/go-probprep/internal/snippets"
)

// Exit codes for probprep CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Problem directory written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, URL, or language
	ExitIO      = 3 // Directory or file could not be written, input unreadable
	ExitBrowser = 4 // Browser/Chrome or page extraction errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, probprep.ErrBrowserConnect) ||
		errors.Is(err, probprep.ErrPageCreate) ||
		errors.Is(err, probprep.ErrPageLoad) ||
		errors.Is(err, probprep.ErrElementTimeout) ||
		errors.Is(err, probprep.ErrCodeExtraction) {
		return ExitBrowser
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidTimeout) ||
		errors.Is(err, config.ErrEmptySelector) ||
		errors.Is(err, snippets.ErrInvalidLanguage) ||
		errors.Is(err, probprep.ErrInvalidURL) ||
		errors.Is(err, probprep.ErrSnippetsNotFound) ||
		errors.Is(err, probprep.ErrIncompleteSnippet) ||
		errors.Is(err, probprep.ErrInvalidLanguage) ||
		errors.Is(err, probprep.ErrInvalidSnippetDir) ||
		errors.Is(err, ErrNoURL) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, probprep.ErrCreateDir) ||
		errors.Is(err, probprep.ErrWriteOutput) ||
		errors.Is(err, ErrReadInput) {
		return ExitIO
	}

	return ExitGeneral
}
