package pipeline

import (
	"regexp"
	"strings"
)

// Sup/sub placeholders use Unicode Private Use Area characters.
// They pass through html-to-markdown without being escaped and are
// converted to ^ and _ markers after conversion.
const (
	SupPlaceholder = "\uE002" // U+E002: Private Use Area
	SubPlaceholder = "\uE003" // U+E003: Private Use Area
)

// Marker symbols written around superscript and subscript text.
const (
	SupSymbol = "^"
	SubSymbol = "_"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Fence delimiter at line start (backticks or tildes)
	fenceDelimiter = regexp.MustCompile("^\\s{0,3}(```|~~~)")
)

// lineKind classifies a line for fence-aware processing.
type lineKind int

const (
	lineText lineKind = iota
	lineFence
	lineCode
)

// markdownLine is one token of a document: its text and where it sits
// relative to fenced code blocks.
type markdownLine struct {
	text string
	kind lineKind
}

// tokenizeLines splits content into lines and marks fence delimiters and the
// lines between them. An unclosed fence runs to the end of the document.
func tokenizeLines(content string) []markdownLine {
	raw := strings.Split(content, "\n")
	tokens := make([]markdownLine, 0, len(raw))

	inCode := false
	for _, line := range raw {
		switch {
		case fenceDelimiter.MatchString(line):
			tokens = append(tokens, markdownLine{text: line, kind: lineFence})
			inCode = !inCode
		case inCode:
			tokens = append(tokens, markdownLine{text: line, kind: lineCode})
		default:
			tokens = append(tokens, markdownLine{text: line, kind: lineText})
		}
	}
	return tokens
}

// Tidy normalizes a README for committing: line endings become \n, trailing
// whitespace is stripped and runs of blank lines collapse to one outside
// code blocks, and the document ends with exactly one newline. A hard break
// (two trailing spaces before more paragraph text) is rewritten as a
// trailing backslash. Lines inside fenced code blocks are never changed.
func Tidy(content string) string {
	content = normalizeLineEndings(content)
	tokens := tokenizeLines(content)

	out := make([]string, 0, len(tokens))
	previousBlank := false
	for i, tok := range tokens {
		if tok.kind == lineCode {
			out = append(out, tok.text)
			previousBlank = false
			continue
		}

		blank := isBlankLine(tok.text)
		if blank && (previousBlank || len(out) == 0) {
			continue
		}

		line := strings.TrimRight(tok.text, " \t")
		switch {
		case blank:
			line = ""
		case tok.kind == lineText && hasHardBreak(tok.text) && continuesParagraph(tokens, i):
			line += "\\"
		}
		out = append(out, line)
		previousBlank = blank
	}

	return strings.TrimRight(strings.Join(out, "\n"), "\n") + "\n"
}

// isBlankLine reports whether line holds only spaces, tabs or no-break
// spaces. Pages use &nbsp; paragraphs as spacers.
func isBlankLine(line string) bool {
	return strings.Trim(line, " \t\u00a0") == ""
}

// hasHardBreak reports whether a text line ends in a Markdown hard break.
// ATX headings ignore trailing spaces, so they never carry one.
func hasHardBreak(line string) bool {
	return strings.HasSuffix(line, "  ") && !strings.HasPrefix(strings.TrimLeft(line, " "), "#")
}

// continuesParagraph reports whether the token after i is non-blank text.
func continuesParagraph(tokens []markdownLine, i int) bool {
	if i+1 >= len(tokens) {
		return false
	}
	next := tokens[i+1]
	return next.kind == lineText && !isBlankLine(next.text)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// convertScriptPlaceholders converts sup/sub placeholders to their markers.
// Called after html-to-markdown conversion so the markers are not escaped.
func convertScriptPlaceholders(content string) string {
	return strings.NewReplacer(
		SupPlaceholder, SupSymbol,
		SubPlaceholder, SubSymbol,
	).Replace(content)
}
