package probprep

import "errors"

// Sentinel errors for library operations.
var (
	// Input errors.
	ErrInvalidURL = errors.New("invalid problem URL")
	ErrEmptyTitle = errors.New("problem title is empty")

	// Browser errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrElementTimeout = errors.New("timed out waiting for element")
	ErrCodeExtraction = errors.New("failed to read starter code")

	// Conversion errors.
	ErrDescriptionConversion = errors.New("description conversion failed")
	ErrHTMLPreview           = errors.New("README preview rendering failed")

	// Snippet errors.
	ErrSnippetsNotFound  = errors.New("snippets not found for language")
	ErrIncompleteSnippet = errors.New("snippet set missing header or footer")
	ErrInvalidLanguage   = errors.New("invalid language")
	ErrInvalidSnippetDir = errors.New("invalid snippet directory")

	// Output errors.
	ErrCreateDir   = errors.New("failed to create problem directory")
	ErrWriteOutput = errors.New("failed to write output file")
)
