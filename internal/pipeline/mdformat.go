package pipeline

import (
	"regexp"
	"strings"
)

// Heading markers.
const (
	boldMarker    = "**"
	headingPrefix = "## "
)

// headingKeywords are the substrings that qualify a bold line for promotion.
var headingKeywords = []string{"Example", "Constraints"}

// fencedSpan matches a triple-backtick span, non-greedy across newlines.
// A span ends at the next triple backtick; spans do not nest.
var fencedSpan = regexp.MustCompile("(?s)```.*?```")

// blankBeforeFence is a blank line directly above a closing fence.
const (
	blankBeforeFence = "\n\n```"
	fenceAfterLine   = "\n```"
)

// IsHeading reports whether line is a bold line naming an example or the
// constraints section. The match is exact: no whitespace is trimmed, and the
// keyword may appear anywhere in the line including inside the markers.
func IsHeading(line string) bool {
	if !strings.HasPrefix(line, boldMarker) || !strings.HasSuffix(line, boldMarker) {
		return false
	}
	for _, kw := range headingKeywords {
		if strings.Contains(line, kw) {
			return true
		}
	}
	return false
}

// FormatHeading promotes every line accepted by IsHeading to a level-2
// heading, dropping its surrounding bold markers. All other lines pass
// through unchanged. Applying it twice yields the same result as once.
func FormatHeading(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if IsHeading(line) {
			lines[i] = headingPrefix + line[len(boldMarker):len(line)-len(boldMarker)]
		}
	}
	return strings.Join(lines, "\n")
}

// RemoveTrailingBlankLineInCodeBlocks drops exactly one blank line directly
// above the closing fence of each fenced span. Additional blank lines and all
// text outside the spans are left untouched.
func RemoveTrailingBlankLineInCodeBlocks(content string) string {
	return fencedSpan.ReplaceAllStringFunc(content, func(span string) string {
		if !strings.HasSuffix(span, blankBeforeFence) {
			return span
		}
		return strings.TrimSuffix(span, blankBeforeFence) + fenceAfterLine
	})
}

// BuildReadme assembles the README document: a level-1 title followed by the
// cleaned description. The title is used verbatim.
func BuildReadme(title, description string) string {
	return "# " + title + "\n\n" + FormatHeading(RemoveTrailingBlankLineInCodeBlocks(description))
}
