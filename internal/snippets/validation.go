package snippets

import (
	"fmt"
	"strings"
)

// ValidateLanguage checks that a language name is safe to use in a file name.
// Returns ErrInvalidLanguage if the name is empty or contains path separators,
// dots, or whitespace.
func ValidateLanguage(language string) error {
	if language == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidLanguage)
	}
	if strings.ContainsAny(language, "/\\. \t\n") {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, language)
	}
	return nil
}
