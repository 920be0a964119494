package probprep

import (
	"github.com/alnah/go-probprep/internal/pipeline"
	"github.com/alnah/go-probprep/internal/snippets"
)

// Problem is the content extracted from one problem page.
type Problem struct {
	URL         string
	Title       string
	Description string // Markdown
	Template    string // Starter code, verbatim
}

// Readme returns the README document for the problem.
func (p Problem) Readme() string {
	return BuildReadme(p.Title, p.Description)
}

// BuildReadme assembles a README: a level-1 title heading, then the
// description with example and constraints labels promoted to level-2
// headings and one trailing blank line removed from each code block.
func BuildReadme(title, description string) string {
	return pipeline.BuildReadme(title, description)
}

// AssembleSource wraps starter code with a header and footer, separating the
// parts with exactly one blank line.
func AssembleSource(header, starter, footer string) string {
	return snippets.Assemble(header, starter, footer)
}

// Selectors locate problem content on the page.
type Selectors struct {
	Title       string // CSS selector of the element holding the title text
	Description string // CSS selector of the description container
	CodeReady   string // CSS selector present once the editor has loaded
	CodeScript  string // JavaScript function returning the starter code
}

// DefaultSelectors returns the selectors for LeetCode problem pages.
func DefaultSelectors() Selectors {
	return Selectors{
		Title:       "a.no-underline.truncate.cursor-text",
		Description: ".elfjS",
		CodeReady:   ".view-lines",
		CodeScript:  "() => monaco.editor.getModels()[0].getValue()",
	}
}

// withDefaults fills empty fields from DefaultSelectors.
func (s Selectors) withDefaults() Selectors {
	d := DefaultSelectors()
	if s.Title == "" {
		s.Title = d.Title
	}
	if s.Description == "" {
		s.Description = d.Description
	}
	if s.CodeReady == "" {
		s.CodeReady = d.CodeReady
	}
	if s.CodeScript == "" {
		s.CodeScript = d.CodeScript
	}
	return s
}

// rawPage is what the extractor reads from the page.
type rawPage struct {
	Title           string
	DescriptionHTML string
	TemplateCode    string
}
