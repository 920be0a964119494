package probprep

import (
	"time"

	"github.com/alnah/go-probprep/internal/pipeline"
)

// defaultTimeout bounds each element wait when no timeout is specified.
const defaultTimeout = 10 * time.Second

// Option configures a Preparer.
type Option func(*Preparer)

// preparerConfig holds internal configuration for Preparer.
type preparerConfig struct {
	timeout     time.Duration
	selectors   Selectors
	browserBin  string
	headless    bool
	noSandbox   bool
	language    string
	templateDir string
	tidy        bool
	supSub      bool
	htmlPreview bool
}

func defaultPreparerConfig() preparerConfig {
	return preparerConfig{
		timeout:   defaultTimeout,
		selectors: DefaultSelectors(),
		headless:  true,
		language:  DefaultLanguage,
		tidy:      true,
		supSub:    true,
	}
}

// WithTimeout sets how long to wait for each element on the page.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("probprep: WithTimeout duration must be positive")
	}
	return func(p *Preparer) {
		p.cfg.timeout = d
	}
}

// WithSelectors overrides the page selectors. Empty fields keep their defaults.
func WithSelectors(s Selectors) Option {
	return func(p *Preparer) {
		p.cfg.selectors = s.withDefaults()
	}
}

// WithBrowserBin sets the Chrome/Chromium binary. Empty means auto-detect,
// honouring ROD_BROWSER_BIN.
func WithBrowserBin(path string) Option {
	return func(p *Preparer) {
		p.cfg.browserBin = path
	}
}

// WithHeadless controls whether the browser runs without a window.
func WithHeadless(headless bool) Option {
	return func(p *Preparer) {
		p.cfg.headless = headless
	}
}

// WithNoSandbox disables the Chrome sandbox, as required in most containers.
func WithNoSandbox(noSandbox bool) Option {
	return func(p *Preparer) {
		p.cfg.noSandbox = noSandbox
	}
}

// WithLanguage selects the snippet set and source file extension.
func WithLanguage(language string) Option {
	return func(p *Preparer) {
		p.cfg.language = language
	}
}

// WithTemplateDir loads snippets from dir, falling back to the built-in ones.
func WithTemplateDir(dir string) Option {
	return func(p *Preparer) {
		p.cfg.templateDir = dir
	}
}

// WithSnippetLoader sets a custom snippet loader. Takes precedence over
// WithTemplateDir.
func WithSnippetLoader(loader SnippetLoader) Option {
	return func(p *Preparer) {
		p.snippetLoader = loader
	}
}

// WithTidy enables or disables README whitespace normalization.
func WithTidy(tidy bool) Option {
	return func(p *Preparer) {
		p.cfg.tidy = tidy
	}
}

// WithSupSub enables or disables writing <sup> and <sub> as ^x^ and _x_.
func WithSupSub(enabled bool) Option {
	return func(p *Preparer) {
		p.cfg.supSub = enabled
	}
}

// WithHTMLPreview enables rendering README.html alongside README.md.
func WithHTMLPreview(enabled bool) Option {
	return func(p *Preparer) {
		p.cfg.htmlPreview = enabled
	}
}

// withExtractor injects a page extractor (tests).
func withExtractor(e pageExtractor) Option {
	return func(p *Preparer) {
		p.extractor = e
	}
}

// withMarkdownConverter injects a description converter (tests).
func withMarkdownConverter(c pipeline.MarkdownConverter) Option {
	return func(p *Preparer) {
		p.mdConverter = c
	}
}

// withHTMLConverter injects a README preview converter (tests).
func withHTMLConverter(c pipeline.HTMLConverter) Option {
	return func(p *Preparer) {
		p.htmlConverter = c
	}
}
