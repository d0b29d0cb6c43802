package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jonathan/careercore/internal/heatmap"
	"github.com/spf13/cobra"
)

var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Show skill demand by role",
	RunE:  runHeatmap,
}

var heatmapRole string

func init() {
	heatmapCmd.Flags().StringVar(&heatmapRole, "role", heatmap.AllRoles, "Role to show, or \"All Roles\"")

	rootCmd.AddCommand(heatmapCmd)
}

func runHeatmap(cmd *cobra.Command, args []string) error {
	h, err := app.client.Heatmap(cmd.Context())
	if err != nil {
		return err
	}
	if heatmapRole != heatmap.AllRoles && !slices.Contains(h.Roles, heatmapRole) {
		return fmt.Errorf("unknown role %q; available: %s", heatmapRole, strings.Join(h.Roles, ", "))
	}
	app.printer.PrintHeatmap(h, heatmap.SelectRoles(h, heatmapRole))
	return nil
}
