package main

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/jonathan/careercore/internal/client"
	"github.com/jonathan/careercore/internal/types"
	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Search internship listings",
	Long: "Search internship listings by keyword, demand level and minimum match score. " +
		"With --interactive, each line read from standard input starts a new search; " +
		"results of searches overtaken by a newer one are discarded.",
	RunE: runJobs,
}

var jobCmd = &cobra.Command{
	Use:   "job <id>",
	Short: "Show one internship listing",
	Args:  cobra.ExactArgs(1),
	RunE:  runJob,
}

var (
	jobsQuery       string
	jobsDemand      string
	jobsMinScore    float64
	jobsInteractive bool
)

func init() {
	jobsCmd.Flags().StringVar(&jobsQuery, "q", "", "Keyword to search for")
	jobsCmd.Flags().StringVar(&jobsDemand, "demand", "", "Demand level (High, Medium, Low)")
	jobsCmd.Flags().Float64Var(&jobsMinScore, "min-score", 0, "Minimum match score (0-100)")
	jobsCmd.Flags().BoolVarP(&jobsInteractive, "interactive", "i", false, "Read search keywords from standard input")

	rootCmd.AddCommand(jobsCmd)
	rootCmd.AddCommand(jobCmd)
}

func jobFilter(cmd *cobra.Command) types.JobFilter {
	filter := types.JobFilter{
		Q:      jobsQuery,
		Demand: types.DemandLevel(jobsDemand),
	}
	if cmd.Flags().Changed("min-score") {
		score := jobsMinScore
		filter.MinScore = &score
	}
	return filter
}

func runJobs(cmd *cobra.Command, args []string) error {
	filter := jobFilter(cmd)
	if jobsInteractive {
		return searchInteractively(cmd, filter)
	}

	jobs, err := app.client.Jobs(cmd.Context(), filter)
	if err != nil {
		return err
	}
	app.printer.PrintJobs(jobs)
	return nil
}

// searchInteractively runs one search per input line without waiting for the
// previous one, printing only results that are still current when they arrive.
func searchInteractively(cmd *cobra.Command, base types.JobFilter) error {
	if err := base.Validate(); err != nil {
		return err
	}

	search := app.client.NewJobSearch()
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		filter := base
		filter.Q = strings.TrimSpace(scanner.Text())

		run := search.Begin(filter)
		wg.Add(1)
		go func() {
			defer wg.Done()
			jobs, err := run(cmd.Context())
			if errors.Is(err, client.ErrStale) {
				app.logger.Debug("discarding stale job search", "q", filter.Q)
				return
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				return
			}
			app.printer.PrintJobs(jobs)
		}()
	}
	wg.Wait()

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func runJob(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return fmt.Errorf("invalid job id %q", args[0])
	}

	job, err := app.client.Job(cmd.Context(), id)
	if err != nil {
		return err
	}
	app.printer.PrintJob(job)
	return nil
}
