package client

import (
	"context"
	"net/http"

	"github.com/jonathan/careercore/internal/schemas"
	"github.com/jonathan/careercore/internal/types"
)

// DashboardStats fetches the aggregate dashboard view. Interpreting
// TotalAnalyses == 0 as "no data yet" is left to the caller.
func (c *Client) DashboardStats(ctx context.Context) (*types.DashboardStats, error) {
	var stats types.DashboardStats
	if err := c.Do(ctx, http.MethodGet, "/dashboard/stats", nil, &stats,
		WithSchema(schemas.DashboardStats)); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Heatmap fetches the skill demand matrix across role categories.
func (c *Client) Heatmap(ctx context.Context) (*types.Heatmap, error) {
	var h types.Heatmap
	if err := c.Do(ctx, http.MethodGet, "/heatmap", nil, &h, WithSchema(schemas.Heatmap)); err != nil {
		return nil, err
	}
	return &h, nil
}
