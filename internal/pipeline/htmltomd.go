package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ErrMarkdownConversion indicates the description HTML could not be converted.
var ErrMarkdownConversion = errors.New("markdown conversion failed")

// MarkdownConverter abstracts HTML to Markdown conversion.
type MarkdownConverter interface {
	ToMarkdown(ctx context.Context, htmlContent string) (string, error)
}

// HTMLToMarkdown converts description HTML to Markdown using html-to-markdown.
type HTMLToMarkdown struct {
	// ScriptMarkers rewrites <sup>x</sup> as ^x^ and <sub>x</sub> as _x_
	// before conversion, so exponents and indices survive as plain text.
	ScriptMarkers bool
}

// NewHTMLToMarkdown creates an HTMLToMarkdown converter.
func NewHTMLToMarkdown(scriptMarkers bool) *HTMLToMarkdown {
	return &HTMLToMarkdown{ScriptMarkers: scriptMarkers}
}

// ToMarkdown converts an HTML fragment to Markdown.
func (c *HTMLToMarkdown) ToMarkdown(ctx context.Context, htmlContent string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if c.ScriptMarkers {
		var err error
		htmlContent, err = markScripts(htmlContent)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMarkdownConversion, err)
		}
	}

	markdown, err := htmltomarkdown.ConvertString(htmlContent)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMarkdownConversion, err)
	}

	return convertScriptPlaceholders(markdown), nil
}

// markScripts replaces <sup> and <sub> elements with their text wrapped in
// placeholders. Nodes are visited innermost first so nested scripts keep
// their markers inside the outer element's text.
func markScripts(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	scripts := doc.Find("sup, sub")
	for i := scripts.Length() - 1; i >= 0; i-- {
		s := scripts.Eq(i)
		placeholder := SupPlaceholder
		if goquery.NodeName(s) == "sub" {
			placeholder = SubPlaceholder
		}
		s.ReplaceWithNodes(&html.Node{
			Type: html.TextNode,
			Data: placeholder + s.Text() + placeholder,
		})
	}

	return doc.Find("body").Html()
}

// Compile-time interface check.
var _ MarkdownConverter = (*HTMLToMarkdown)(nil)
