package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"

	"github.com/jonathan/careercore/internal/schemas"
	"github.com/jonathan/careercore/internal/types"
)

const defaultResumeFilename = "resume.pdf"

// AnalyzeResume uploads a resume with a job description and returns the match report.
// The body is multipart rather than JSON; the bearer token is attached when present.
// A 401 is reported like any other failure and does not end the session.
func (c *Client) AnalyzeResume(ctx context.Context, req types.AnalyzeRequest) (*types.AnalyzeResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body, contentType, err := analyzeForm(req)
	if err != nil {
		return nil, err
	}

	var resp types.AnalyzeResponse
	err = c.send(ctx, http.MethodPost, "/resume/analyze", body, &resp,
		WithHeader("Content-Type", contentType),
		WithSchema(schemas.AnalyzeResponse),
		withoutSessionExpiry(),
		withFallback(func(status int) string {
			return fmt.Sprintf("Analysis failed (%d)", status)
		}))
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// AnalysisHistory returns the current user's most recent analyses, newest first.
func (c *Client) AnalysisHistory(ctx context.Context) ([]types.AnalysisRecord, error) {
	var records []types.AnalysisRecord
	if err := c.Do(ctx, http.MethodGet, "/resume/history", nil, &records,
		WithSchema(schemas.AnalysisHistory)); err != nil {
		return nil, err
	}
	return records, nil
}

// analyzeForm encodes the multipart body: the resume file followed by the text fields.
func analyzeForm(req types.AnalyzeRequest) (io.Reader, string, error) {
	filename := req.Filename
	if filename == "" {
		filename = defaultResumeFilename
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	partType := mime.TypeByExtension(filepath.Ext(filename))
	if partType == "" {
		partType = "application/octet-stream"
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="resume"; filename=%q`, filepath.Base(filename)))
	header.Set("Content-Type", partType)

	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create resume part: %w", err)
	}
	if _, err := io.Copy(part, req.Resume); err != nil {
		return nil, "", fmt.Errorf("failed to read resume: %w", err)
	}

	fields := []struct{ name, value string }{
		{"job_description", req.JobDescription},
		{"job_title", req.JobTitle},
		{"company", req.Company},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", fmt.Errorf("failed to write %s: %w", f.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finish form: %w", err)
	}
	return &buf, w.FormDataContentType(), nil
}
