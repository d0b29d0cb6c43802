package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jonathan/careercore/internal/schemas"
	"github.com/jonathan/careercore/internal/types"
)

// Jobs lists internship listings. Only the filter fields that are set are sent.
func (c *Client) Jobs(ctx context.Context, filter types.JobFilter) ([]types.Job, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	jobs := []types.Job{}
	if err := c.Do(ctx, http.MethodGet, "/jobs", nil, &jobs,
		WithQuery(filter.Query()), WithSchema(schemas.JobList)); err != nil {
		return nil, err
	}
	return jobs, nil
}

// Job fetches a single listing by id.
func (c *Client) Job(ctx context.Context, id int) (*types.Job, error) {
	var job types.Job
	if err := c.Do(ctx, http.MethodGet, fmt.Sprintf("/jobs/%d", id), nil, &job,
		WithSchema(schemas.Job)); err != nil {
		return nil, err
	}
	return &job, nil
}

// JobSearch runs job queries where only the most recently issued one matters,
// as when a search box fires a request per keystroke.
type JobSearch struct {
	client *Client
	seq    Sequencer
}

// NewJobSearch returns a JobSearch bound to c.
func (c *Client) NewJobSearch() *JobSearch {
	return &JobSearch{client: c}
}

// Search issues a query. A response that arrives after a newer query was
// issued is discarded and ErrStale is returned instead.
func (s *JobSearch) Search(ctx context.Context, filter types.JobFilter) ([]types.Job, error) {
	return s.Begin(filter)(ctx)
}

// Begin reserves the query's place in issue order immediately and returns the
// function that performs it, so callers can run queries concurrently without
// losing their order.
func (s *JobSearch) Begin(filter types.JobFilter) func(ctx context.Context) ([]types.Job, error) {
	ticket := s.seq.Next("jobs")
	return func(ctx context.Context) ([]types.Job, error) {
		jobs, err := s.client.Jobs(ctx, filter)
		if !ticket.Latest() {
			return nil, ErrStale
		}
		return jobs, err
	}
}
