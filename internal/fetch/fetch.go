// Package fetch retrieves job postings from the web and reduces them to the
// plain text a resume analysis needs.
package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; CareerCore/1.0)"

// maxPageBytes caps how much of a page is read.
const maxPageBytes = 8 << 20

// Page holds the raw HTML of a fetched URL.
type Page struct {
	URL         string
	HTML        string
	ContentType string
	StatusCode  int
}

// Error represents an error during URL fetching.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures a Fetcher.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	Headers    map[string]string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Fetcher downloads HTML pages.
type Fetcher struct {
	client    *http.Client
	userAgent string
	headers   map[string]string
	logger    *slog.Logger
}

// New creates a Fetcher. A nil opts uses defaults.
func New(opts *Options) *Fetcher {
	if opts == nil {
		opts = &Options{}
	}
	f := &Fetcher{
		client:    opts.HTTPClient,
		userAgent: opts.UserAgent,
		headers:   opts.Headers,
		logger:    opts.Logger,
	}
	if f.client == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		f.client = &http.Client{Timeout: timeout}
	}
	if f.userAgent == "" {
		f.userAgent = DefaultUserAgent
	}
	if f.logger == nil {
		f.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return f
}

// ValidateURL rejects anything other than an absolute http(s) URL.
func ValidateURL(urlStr string) error {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}
	return nil
}

// Get retrieves the page at urlStr. On a non-200 status the page is still
// returned alongside the error.
func (f *Fetcher) Get(ctx context.Context, urlStr string) (*Page, error) {
	if err := ValidateURL(urlStr); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	for key, value := range f.headers {
		req.Header.Set(key, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	page := &Page{
		URL:         urlStr,
		HTML:        string(body),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}
	f.logger.Debug("fetched page", "url", urlStr, "status", resp.StatusCode, "bytes", len(body))

	if resp.StatusCode != http.StatusOK {
		return page, &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	return page, nil
}

// Extracted is the readable content of a page.
type Extracted struct {
	Title   string
	Company string
	Text    string
}

const baseNoise = "nav, footer, header, script, style, noscript, svg, iframe, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup"

// Extract parses HTML, drops noise elements and returns the text of the first
// element matching contentSelectors, falling back to the body.
func Extract(html string, contentSelectors []string, noiseSelectors ...string) (*Extracted, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	out := &Extracted{
		Title:   pageTitle(doc),
		Company: strings.TrimSpace(doc.Find(`meta[property="og:site_name"]`).AttrOr("content", "")),
	}

	doc.Find(baseNoise).Remove()
	if len(noiseSelectors) > 0 {
		doc.Find(strings.Join(noiseSelectors, ", ")).Remove()
	}

	var main *goquery.Selection
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			main = sel.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	// Block elements would otherwise run together once tags are stripped.
	main.Find("p, li, h1, h2, h3, h4, h5, h6, div, br, tr").Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) == "li" {
			s.PrependHtml("- ")
		}
		s.AppendHtml("\n")
	})

	out.Text = CleanText(main.Text())
	return out, nil
}

// pageTitle prefers og:title, then the first h1, then <title>.
func pageTitle(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find(`meta[property="og:title"]`).AttrOr("content", "")); t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find("h1").First().Text()); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

var (
	innerSpace  = regexp.MustCompile(`[ \t\f\v]+`)
	blankLines  = regexp.MustCompile(`\n{3,}`)
	bulletStart = regexp.MustCompile(`^[•·*]\s+`)
)

// CleanText normalizes line endings and spacing, turns bullet glyphs into
// "- " and keeps at most one blank line between blocks.
func CleanText(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\u00a0", " ")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(innerSpace.ReplaceAllString(line, " "))
		lines[i] = bulletStart.ReplaceAllString(line, "- ")
	}

	return strings.TrimSpace(blankLines.ReplaceAllString(strings.Join(lines, "\n"), "\n\n"))
}
