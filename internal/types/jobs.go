package types

import (
	"net/url"
	"strconv"
)

// DemandLevel is the market demand bucket of a listing.
type DemandLevel string

const (
	DemandHigh   DemandLevel = "High"
	DemandMedium DemandLevel = "Medium"
	DemandLow    DemandLevel = "Low"
)

// Valid reports whether d is one of the known demand levels.
func (d DemandLevel) Valid() bool {
	switch d {
	case DemandHigh, DemandMedium, DemandLow:
		return true
	}
	return false
}

// Job is one internship listing.
type Job struct {
	ID              int         `json:"id"`
	Company         string      `json:"company"`
	Role            string      `json:"role"`
	MatchScore      float64     `json:"match_score"`
	DemandLevel     DemandLevel `json:"demand_level"`
	ApplyPriority   string      `json:"apply_priority"`
	RequiredSkills  []string    `json:"required_skills"`
	MarketFrequency float64     `json:"market_frequency"`
	SalaryEstimate  string      `json:"salary_estimate"`
}

// JobFilter narrows GET /jobs. Zero-valued fields are not sent.
type JobFilter struct {
	Q        string
	Demand   DemandLevel
	MinScore *float64
}

// Validate checks the filter values before they are sent.
func (f JobFilter) Validate() error {
	if f.Demand != "" && !f.Demand.Valid() {
		return &ValidationError{Field: "demand", Message: "must be one of: High Medium Low"}
	}
	if f.MinScore != nil && (*f.MinScore < 0 || *f.MinScore > 100) {
		return &ValidationError{Field: "min_score", Message: "must be between 0 and 100"}
	}
	return nil
}

// Query encodes only the parameters that are present.
func (f JobFilter) Query() url.Values {
	qs := url.Values{}
	if f.Q != "" {
		qs.Set("q", f.Q)
	}
	if f.Demand != "" {
		qs.Set("demand", string(f.Demand))
	}
	if f.MinScore != nil {
		qs.Set("min_score", strconv.FormatFloat(*f.MinScore, 'f', -1, 64))
	}
	return qs
}
