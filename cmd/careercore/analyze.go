package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/careercore/internal/fetch"
	"github.com/jonathan/careercore/internal/types"
	"github.com/jonathan/careercore/internal/voice"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume against a job description",
	Long: "Upload a resume and a job description for analysis. The job description can be given " +
		"inline, read from a text file, or fetched from a job board URL.",
	RunE: runAnalyze,
}

var (
	analyzeResume   string
	analyzeJD       string
	analyzeJDFile   string
	analyzeJDURL    string
	analyzeJobTitle string
	analyzeCompany  string
	analyzeBrowser  bool
	analyzeSummary  bool
	analyzeSpeak    bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to the resume file, PDF or DOCX (required)")
	analyzeCmd.Flags().StringVar(&analyzeJD, "jd", "", "Job description text")
	analyzeCmd.Flags().StringVar(&analyzeJDFile, "jd-file", "", "Path to a text file containing the job description")
	analyzeCmd.Flags().StringVar(&analyzeJDURL, "jd-url", "", "URL of a job posting to fetch the description from")
	analyzeCmd.Flags().StringVar(&analyzeJobTitle, "job-title", "", "Job title")
	analyzeCmd.Flags().StringVar(&analyzeCompany, "company", "", "Company name")
	analyzeCmd.Flags().BoolVar(&analyzeBrowser, "browser", false, "Render client-side job boards in headless Chrome when fetching --jd-url")
	analyzeCmd.Flags().BoolVar(&analyzeSummary, "summary", false, "Also print the spoken summary text")
	analyzeCmd.Flags().BoolVar(&analyzeSpeak, "speak", false, "Read the summary aloud")

	analyzeCmd.MarkFlagRequired("resume")
	analyzeCmd.MarkFlagsMutuallyExclusive("jd", "jd-file", "jd-url")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if analyzeJD == "" && analyzeJDFile == "" && analyzeJDURL == "" {
		return errors.New("one of --jd, --jd-file or --jd-url must be provided")
	}

	req := types.AnalyzeRequest{
		Filename:       filepath.Base(analyzeResume),
		JobDescription: analyzeJD,
		JobTitle:       analyzeJobTitle,
		Company:        analyzeCompany,
	}

	switch {
	case analyzeJDFile != "":
		data, err := os.ReadFile(analyzeJDFile)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		req.JobDescription = string(data)
	case analyzeJDURL != "":
		posting, err := ingestPosting(cmd, analyzeJDURL)
		if err != nil {
			return err
		}
		req.JobDescription = posting.Text
		if req.JobTitle == "" {
			req.JobTitle = posting.Title
		}
		if req.Company == "" {
			req.Company = posting.Company
		}
	}

	f, err := os.Open(analyzeResume)
	if err != nil {
		return fmt.Errorf("failed to open resume: %w", err)
	}
	defer f.Close()
	req.Resume = f

	report, err := app.client.AnalyzeResume(cmd.Context(), req)
	if err != nil {
		return err
	}
	app.printer.PrintAnalysis(report)

	if !analyzeSummary && !analyzeSpeak {
		return nil
	}
	summary := voice.BuildAnalysisSummary(report)
	if analyzeSummary {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", summary)
	}
	if analyzeSpeak {
		return speakText(cmd, summary)
	}
	return nil
}

// ingestPosting fetches a job posting and reports where its text came from.
func ingestPosting(cmd *cobra.Command, urlStr string) (*fetch.Posting, error) {
	fetcher := fetch.New(&fetch.Options{Timeout: app.cfg.FetchTimeout, Logger: app.logger})

	var renderer fetch.Renderer
	if analyzeBrowser || app.cfg.UseBrowser {
		renderer = fetch.NewChromeRenderer(app.cfg.FetchTimeout, app.logger)
	}

	posting, err := fetch.NewIngester(fetcher, renderer, app.logger).Ingest(cmd.Context(), urlStr)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job description: %w", err)
	}

	source := string(posting.Platform)
	if posting.Rendered {
		source += ", rendered"
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Fetched job description from %s (%s, %d characters)\n", urlStr, source, len(posting.Text))
	return posting, nil
}
