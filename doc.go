// Package probprep prepares a local workspace for a programming problem.
//
// # Quick Start
//
// Create a preparer, prepare a problem page, save it, and close when done:
//
//	p, err := probprep.NewPreparer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	res, err := p.Prepare(ctx, "https://leetcode.com/problems/two-sum/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	files, err := res.Save("./problems")
//
// Save writes a directory named after the problem title holding README.md
// and "<title>.<lang>", the starter code wrapped in a header and footer.
//
// # Pipeline
//
//  1. Page extraction via headless Chrome (go-rod): title, description HTML,
//     starter code from the editor
//  2. Description HTML to Markdown (html-to-markdown), with <sup>/<sub>
//     written as ^x^ and _x_
//  3. README assembly: title heading, example/constraints headings promoted,
//     trailing blank lines in code blocks dropped, optional tidy pass
//  4. Source assembly: header snippet, starter code, footer snippet
//  5. Optional README.html preview (goldmark)
//
// # Configuration
//
//	p, err := probprep.NewPreparer(
//	    probprep.WithTimeout(30 * time.Second),
//	    probprep.WithLanguage("py"),
//	    probprep.WithTemplateDir("/path/to/snippets"),
//	    probprep.WithHTMLPreview(true),
//	)
//
// Snippet directories hold header.<lang> and footer.<lang>; languages missing
// from the directory fall back to the built-in snippets (cpp, py).
//
// # Browser Requirements
//
// Extraction requires Chrome/Chromium. go-rod downloads a managed Chromium on
// first run if none is found. Set ROD_BROWSER_BIN to use a specific binary,
// and ROD_NO_SANDBOX=1 in containers and CI.
package probprep
