// Package pipeline implements the README pipeline for a scraped problem.
//
// This package handles the text stages between page extraction and file output:
//   - HTML description to Markdown conversion (with sup/sub preprocessing)
//   - Heading promotion for bold "Example" and "Constraints" lines
//   - Blank-line cleanup before closing code fences
//   - README assembly and the optional tidy pass
//   - HTML preview via Goldmark and terminal preview via Glamour
//
// Browser automation is handled separately by the root probprep package using
// headless Chrome (go-rod). Everything here is pure text processing, so the
// formatting functions are safe for concurrent use on independent inputs.
package pipeline
