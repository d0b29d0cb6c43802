package main

import (
	"github.com/jonathan/careercore/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show aggregate statistics across your analyses",
	RunE:  runDashboard,
}

var dashboardWithJobs bool

func init() {
	dashboardCmd.Flags().BoolVar(&dashboardWithJobs, "with-jobs", false, "Also list internship listings")

	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	var (
		stats *types.DashboardStats
		jobs  []types.Job
	)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		stats, err = app.client.DashboardStats(ctx)
		return err
	})
	if dashboardWithJobs {
		g.Go(func() error {
			var err error
			jobs, err = app.client.Jobs(ctx, types.JobFilter{})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	app.printer.PrintDashboard(stats)
	if dashboardWithJobs {
		app.printer.PrintJobs(jobs)
	}
	return nil
}
