package fetch

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// MinContentLength is the shortest extracted text accepted from a plain HTTP
// fetch before a browser render is attempted.
const MinContentLength = 500

// ShouldUseBrowser reports whether extracted text is too short to be a real
// posting, which usually means the page renders client-side.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinContentLength
}

// Renderer returns the HTML of a page after its scripts have run.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
}

// ChromeRenderer renders pages in headless Chrome. Chrome or Chromium must be installed.
type ChromeRenderer struct {
	Timeout time.Duration
	// Settle is how long to wait after the body is ready for scripts to populate it.
	Settle  time.Duration
	Logger  *slog.Logger
}

// NewChromeRenderer returns a renderer with the given timeout.
func NewChromeRenderer(timeout time.Duration, logger *slog.Logger) *ChromeRenderer {
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ChromeRenderer{Timeout: timeout, Settle: 3 * time.Second, Logger: logger}
}

func (r *ChromeRenderer) Render(ctx context.Context, url string) (string, error) {
	r.Logger.Debug("starting headless browser", "url", url)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(DefaultUserAgent),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, r.Timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(r.Settle),
		// Cookie banners can cover the posting; a missing button is fine.
		chromedp.ActionFunc(func(ctx context.Context) error {
			clickCtx, cancel := context.WithTimeout(ctx, time.Second)
			defer cancel()
			_ = chromedp.Click(`button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible).Do(clickCtx)
			return nil
		}),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", &Error{URL: url, Message: "browser rendering failed", Cause: err}
	}

	r.Logger.Debug("rendered page", "url", url, "bytes", len(html))
	return html, nil
}

// RenderFunc adapts a function to the Renderer interface.
type RenderFunc func(ctx context.Context, url string) (string, error)

func (f RenderFunc) Render(ctx context.Context, url string) (string, error) {
	return f(ctx, url)
}

var _ Renderer = (*ChromeRenderer)(nil)
