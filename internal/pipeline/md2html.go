package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	stdhtml "html"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrHTMLConversion indicates HTML conversion failed.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// DefaultHighlightStyle is the chroma style used for code blocks in previews.
const DefaultHighlightStyle = "github"

// htmlTemplate wraps Goldmark's fragment output in a complete HTML5 document.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>`

// previewCSS is the base stylesheet for README previews.
const previewCSS = `body { max-width: 860px; margin: 2rem auto; padding: 0 1rem; font-family: -apple-system, "Segoe UI", Helvetica, Arial, sans-serif; line-height: 1.6; color: #1f2328; }
pre { padding: 1rem; overflow: auto; border-radius: 6px; background: #f6f8fa; }
code { font-family: ui-monospace, SFMono-Regular, Menlo, Consolas, monospace; font-size: 0.9em; }
h1 { border-bottom: 1px solid #d1d9e0; padding-bottom: 0.3em; }
`

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, title, content string) (string, error)
}

// GoldmarkConverter converts Markdown to a standalone HTML preview using goldmark.
type GoldmarkConverter struct {
	md          goldmark.Markdown
	css         string
	cssInjector CSSInjector
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and
// class-based syntax highlighting. The matching chroma stylesheet is embedded
// in every document so the preview renders without external files.
func NewGoldmarkConverter() *GoldmarkConverter {
	formatter := chromahtml.New(chromahtml.WithClasses(true))

	var css strings.Builder
	css.WriteString(previewCSS)
	// Error ignored: WriteCSS only fails if the writer fails, and strings.Builder never does.
	_ = formatter.WriteCSS(&css, styles.Get(DefaultHighlightStyle))

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // Tables, strikethrough, autolinks, task lists
			highlighting.NewHighlighting(
				highlighting.WithStyle(DefaultHighlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
			// Note: WithUnsafe() intentionally NOT used; raw HTML from the page is dropped.
		),
	)
	return &GoldmarkConverter{md: md, css: css.String(), cssInjector: &CSSInjection{}}
}

// ToHTML converts Markdown content to a standalone HTML5 document titled title.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, title, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: fmt.Sprintf(htmlTemplate, stdhtml.EscapeString(title), buf.String())}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		if r.err != nil {
			return "", r.err
		}
		return c.cssInjector.InjectCSS(ctx, r.html, c.css), nil
	}
}

// Compile-time interface check.
var _ HTMLConverter = (*GoldmarkConverter)(nil)
