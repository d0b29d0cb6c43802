package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"time"
)

// Posting is a job description read from a job board page.
type Posting struct {
	URL       string
	Platform  Platform
	Title     string
	Company   string
	Text      string
	Hash      string
	FetchedAt time.Time
	Rendered  bool
}

// Ingester turns job posting URLs into plain text.
type Ingester struct {
	fetcher  *Fetcher
	renderer Renderer
	logger   *slog.Logger
}

// NewIngester creates an Ingester. A nil renderer disables the browser fallback.
func NewIngester(fetcher *Fetcher, renderer Renderer, logger *slog.Logger) *Ingester {
	if fetcher == nil {
		fetcher = New(nil)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Ingester{fetcher: fetcher, renderer: renderer, logger: logger}
}

// Ingest fetches urlStr and extracts the posting text using selectors tuned
// for the detected job board. Pages whose text is too short are rendered in a
// browser when a renderer is configured; if that fails the fetched text is kept.
func (in *Ingester) Ingest(ctx context.Context, urlStr string) (*Posting, error) {
	platform := DetectPlatform(urlStr)
	in.logger.Debug("ingesting job posting", "url", urlStr, "platform", platform)

	page, err := in.fetcher.Get(ctx, urlStr)
	if err != nil {
		return nil, err
	}

	content := PlatformContentSelectors(platform)
	noise := PlatformNoiseSelectors(platform)

	extracted, err := Extract(page.HTML, content, noise...)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "content extraction failed", Cause: err}
	}
	in.logger.Debug("extracted text", "chars", len(extracted.Text))

	rendered := false
	if in.renderer != nil && ShouldUseBrowser(extracted.Text) {
		in.logger.Debug("content too short, rendering in browser",
			"chars", len(extracted.Text), "min", MinContentLength)

		html, renderErr := in.renderer.Render(ctx, urlStr)
		if renderErr != nil {
			in.logger.Warn("browser rendering failed, using fetched content", "error", renderErr)
		} else if fromBrowser, extractErr := Extract(html, content, noise...); extractErr != nil {
			in.logger.Warn("browser content extraction failed", "error", extractErr)
		} else if len(fromBrowser.Text) > len(extracted.Text) {
			extracted = fromBrowser
			rendered = true
		}
	}

	if extracted.Text == "" {
		return nil, &Error{URL: urlStr, Message: "no job description text found"}
	}

	sum := sha256.Sum256([]byte(extracted.Text))
	return &Posting{
		URL:       urlStr,
		Platform:  platform,
		Title:     extracted.Title,
		Company:   extracted.Company,
		Text:      extracted.Text,
		Hash:      hex.EncodeToString(sum[:]),
		FetchedAt: time.Now().UTC(),
		Rendered:  rendered,
	}, nil
}
