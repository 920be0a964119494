package main

import (
	"errors"

	probprep "github.com/alnah/go-probprep"
	"github.com/alnah/go-probprep/internal/hints"
)

// hintFor returns the hint suffix matching err, or "".
func hintFor(err error) string {
	switch {
	case errors.Is(err, probprep.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, probprep.ErrElementTimeout):
		return hints.ForElementTimeout() + hints.ForTimeout()
	case errors.Is(err, probprep.ErrInvalidURL), errors.Is(err, ErrNoURL):
		return hints.ForInvalidURL()
	case errors.Is(err, probprep.ErrSnippetsNotFound), errors.Is(err, probprep.ErrInvalidLanguage):
		return hints.ForLanguage(probprep.BuiltinLanguages())
	case errors.Is(err, probprep.ErrCreateDir), errors.Is(err, probprep.ErrWriteOutput):
		return hints.ForOutputDirectory()
	default:
		return ""
	}
}
