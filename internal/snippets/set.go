package snippets

// Set is the header and footer for one language.
type Set struct {
	Language string
	Header   string
	Footer   string
}

// DefaultLanguage is the language used when none is configured.
const DefaultLanguage = "cpp"

// Snippet file name stems.
const (
	headerStem = "header"
	footerStem = "footer"
)

// Loader loads snippet sets by language.
// Implementations return ErrSetNotFound when the language is unknown.
type Loader interface {
	LoadSet(language string) (*Set, error)
}

// Assemble builds a source file from its parts: the header without its
// trailing newlines, one blank line, the starter code verbatim, one blank
// line, then the footer. An empty header contributes nothing.
func Assemble(header, starter, footer string) string {
	body := starter + "\n\n" + footer
	if header == "" {
		return body
	}
	return trimTrailingNewlines(header) + "\n\n" + body
}

func trimTrailingNewlines(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
