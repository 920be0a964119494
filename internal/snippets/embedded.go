package snippets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
)

//go:embed templates/*
var templates embed.FS

// EmbeddedLoader loads the built-in snippets.
type EmbeddedLoader struct{}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadSet loads templates/header.<language> and templates/footer.<language>.
func (e *EmbeddedLoader) LoadSet(language string) (*Set, error) {
	if err := ValidateLanguage(language); err != nil {
		return nil, err
	}

	header, headerErr := templates.ReadFile("templates/" + headerStem + "." + language)
	footer, footerErr := templates.ReadFile("templates/" + footerStem + "." + language)

	return buildSet(language, header, headerErr, footer, footerErr)
}

// Languages lists the languages with a complete built-in set.
func (e *EmbeddedLoader) Languages() []string {
	entries, err := fs.Glob(templates, "templates/"+headerStem+".*")
	if err != nil {
		return nil
	}

	var langs []string
	for _, entry := range entries {
		lang := entry[len("templates/"+headerStem+"."):]
		if _, err := e.LoadSet(lang); err == nil {
			langs = append(langs, lang)
		}
	}
	return langs
}

// buildSet classifies the outcome of reading a header/footer pair.
func buildSet(language string, header []byte, headerErr error, footer []byte, footerErr error) (*Set, error) {
	headerMissing := errors.Is(headerErr, fs.ErrNotExist)
	footerMissing := errors.Is(footerErr, fs.ErrNotExist)

	if headerMissing && footerMissing {
		return nil, fmt.Errorf("%w: %q", ErrSetNotFound, language)
	}
	if headerErr != nil && !headerMissing {
		return nil, fmt.Errorf("%w: reading header.%s: %v", ErrSnippetRead, language, headerErr)
	}
	if footerErr != nil && !footerMissing {
		return nil, fmt.Errorf("%w: reading footer.%s: %v", ErrSnippetRead, language, footerErr)
	}
	if headerMissing {
		return nil, fmt.Errorf("%w: %q missing header.%s", ErrIncompleteSet, language, language)
	}
	if footerMissing {
		return nil, fmt.Errorf("%w: %q missing footer.%s", ErrIncompleteSet, language, language)
	}

	return &Set{
		Language: language,
		Header:   string(header),
		Footer:   string(footer),
	}, nil
}

// Compile-time interface check.
var _ Loader = (*EmbeddedLoader)(nil)
