package probprep

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/alnah/go-probprep/internal/pipeline"
)

// Preparer fetches problem pages and turns them into README and source
// documents. It owns a browser, launched on the first Prepare and released
// by Close. A Preparer is not safe for concurrent use.
type Preparer struct {
	cfg           preparerConfig
	snippetLoader SnippetLoader
	snippets      *SnippetSet
	extractor     pageExtractor
	mdConverter   pipeline.MarkdownConverter
	htmlConverter pipeline.HTMLConverter
}

// NewPreparer creates a Preparer. Snippets for the configured language are
// loaded immediately so a bad language or template directory fails before
// any browser work. The browser itself is not started here.
func NewPreparer(opts ...Option) (*Preparer, error) {
	p := &Preparer{cfg: defaultPreparerConfig()}

	for _, opt := range opts {
		opt(p)
	}

	// WithSnippetLoader wins over WithTemplateDir
	if p.snippetLoader == nil {
		loader, err := NewSnippetLoader(p.cfg.templateDir)
		if err != nil {
			return nil, err
		}
		p.snippetLoader = loader
	}

	set, err := p.snippetLoader.LoadSnippets(p.cfg.language)
	if err != nil {
		return nil, fmt.Errorf("loading %q snippets: %w", p.cfg.language, err)
	}
	p.snippets = set

	if p.mdConverter == nil {
		p.mdConverter = pipeline.NewHTMLToMarkdown(p.cfg.supSub)
	}
	if p.htmlConverter == nil && p.cfg.htmlPreview {
		p.htmlConverter = pipeline.NewGoldmarkConverter()
	}
	if p.extractor == nil {
		p.extractor = newRodExtractor(extractorOptions{
			selectors:  p.cfg.selectors,
			timeout:    p.cfg.timeout,
			browserBin: p.cfg.browserBin,
			headless:   p.cfg.headless,
			noSandbox:  p.cfg.noSandbox,
		})
	}

	return p, nil
}

// Language returns the language of the loaded snippets.
func (p *Preparer) Language() string {
	return p.cfg.language
}

// Prepare fetches the problem at rawURL and builds its README and source.
// Nothing is written to disk; see Result.Save.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (p *Preparer) Prepare(ctx context.Context, rawURL string) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	page, err := p.extractor.Extract(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(page.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	description, err := p.mdConverter.ToMarkdown(ctx, page.DescriptionHTML)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDescriptionConversion, err)
	}

	problem := Problem{
		URL:         rawURL,
		Title:       title,
		Description: description,
		Template:    page.TemplateCode,
	}

	readme := problem.Readme()
	if p.cfg.tidy {
		readme = pipeline.Tidy(readme)
	}

	res := &Result{
		Problem:  problem,
		Language: p.cfg.language,
		Readme:   []byte(readme),
		Source:   []byte(AssembleSource(p.snippets.Header, problem.Template, p.snippets.Footer)),
	}

	if p.cfg.htmlPreview {
		htmlContent, err := p.htmlConverter.ToHTML(ctx, title, readme)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrHTMLPreview, err)
		}
		res.HTML = []byte(htmlContent)
	}

	return res, nil
}

// Close releases the browser. Safe to call more than once.
func (p *Preparer) Close() error {
	if p.extractor == nil {
		return nil
	}
	return p.extractor.Close()
}

// validateURL accepts absolute http and https URLs with a host.
func validateURL(rawURL string) error {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return fmt.Errorf("%w: empty", ErrInvalidURL)
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme must be http or https, got %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return nil
}
