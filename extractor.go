package probprep

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-probprep/internal/process"
)

// pageExtractor abstracts reading a problem page to allow testing without a browser.
type pageExtractor interface {
	Extract(ctx context.Context, url string) (*rawPage, error)
	Close() error
}

// Compile-time interface check.
var _ pageExtractor = (*rodExtractor)(nil)

// extractorOptions configures how the browser is launched and how long to wait.
type extractorOptions struct {
	selectors  Selectors
	timeout    time.Duration
	browserBin string
	headless   bool
	noSandbox  bool
}

// rodExtractor implements pageExtractor using go-rod.
// The browser is launched on the first Extract and kept until Close.
type rodExtractor struct {
	opts     extractorOptions
	launcher *launcher.Launcher
	browser  *rod.Browser
}

// newRodExtractor creates a rodExtractor. No browser is started yet.
func newRodExtractor(opts extractorOptions) *rodExtractor {
	return &rodExtractor{opts: opts}
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodExtractor) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New().Headless(r.opts.headless)

	bin := r.opts.browserBin
	if bin == "" {
		bin = os.Getenv("ROD_BROWSER_BIN")
	}
	if bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if r.opts.noSandbox || os.Getenv("ROD_NO_SANDBOX") == "1" || os.Getenv("CI") == "true" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		l.Kill()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		process.KillProcessGroup(l.PID())
		l.Kill()
		l.Cleanup()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.launcher = l
	r.browser = browser
	return nil
}

// Extract opens url and reads the title text, the description's outer HTML
// and the starter code. Each wait is bounded by the configured timeout or
// the context deadline, whichever comes first.
func (r *rodExtractor) Extract(ctx context.Context, url string) (*rawPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer func() { _ = page.Close() }()
	page = page.Context(ctx)

	timeout, err := waitTimeout(ctx, r.opts.timeout)
	if err != nil {
		return nil, err
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, classifyWaitError(ctx, ErrPageLoad, "", timeout, err)
	}

	sel := r.opts.selectors

	titleEl, err := r.waitElement(ctx, page, sel.Title)
	if err != nil {
		return nil, err
	}
	title, err := titleEl.Text()
	if err != nil {
		return nil, fmt.Errorf("%w: reading title: %v", ErrPageLoad, err)
	}

	descEl, err := r.waitElement(ctx, page, sel.Description)
	if err != nil {
		return nil, err
	}
	descHTML, err := descEl.HTML()
	if err != nil {
		return nil, fmt.Errorf("%w: reading description: %v", ErrPageLoad, err)
	}

	if _, err := r.waitElement(ctx, page, sel.CodeReady); err != nil {
		return nil, err
	}
	obj, err := page.Eval(sel.CodeScript)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodeExtraction, err)
	}
	if obj == nil || obj.Value.Nil() {
		return nil, fmt.Errorf("%w: script returned no value", ErrCodeExtraction)
	}

	return &rawPage{
		Title:           title,
		DescriptionHTML: descHTML,
		TemplateCode:    obj.Value.Str(),
	}, nil
}

// waitElement waits for selector to appear, then detaches the element from
// the wait deadline so later reads are not cut short.
func (r *rodExtractor) waitElement(ctx context.Context, page *rod.Page, selector string) (*rod.Element, error) {
	timeout, err := waitTimeout(ctx, r.opts.timeout)
	if err != nil {
		return nil, err
	}

	el, err := page.Timeout(timeout).Element(selector)
	if err != nil {
		return nil, classifyWaitError(ctx, ErrPageLoad, selector, timeout, err)
	}
	return el.CancelTimeout(), nil
}

// Close releases the browser and its process tree. Safe to call more than once.
func (r *rodExtractor) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	if r.launcher != nil {
		process.KillProcessGroup(r.launcher.PID())
		r.launcher.Kill()
		r.launcher.Cleanup()
		r.launcher = nil
	}
	return err
}

// waitTimeout returns the wait budget: the configured timeout, shortened to
// the context deadline when that comes first.
func waitTimeout(ctx context.Context, configured time.Duration) (time.Duration, error) {
	timeout := configured
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if deadline, ok := ctx.Deadline(); ok {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return 0, context.DeadlineExceeded
		}
		if remaining < timeout {
			timeout = remaining
		}
	}
	return timeout, nil
}

// classifyWaitError maps a failed wait to a sentinel error. Cancellation of
// the caller's context is returned as is; an expired wait becomes
// ErrElementTimeout naming the selector.
func classifyWaitError(ctx context.Context, fallback error, selector string, timeout time.Duration, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		if selector == "" {
			return fmt.Errorf("%w: page load after %s", ErrElementTimeout, timeout)
		}
		return fmt.Errorf("%w: %q after %s", ErrElementTimeout, selector, timeout)
	}
	return fmt.Errorf("%w: %v", fallback, err)
}
