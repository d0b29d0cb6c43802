package types

import (
	"io"
	"strings"
)

// SkillMatch records whether a required skill was found on the resume.
type SkillMatch struct {
	Skill   string `json:"skill"`
	Present bool   `json:"present"`
}

// OptimizationSuggestion is a proposed rewrite of one resume bullet.
type OptimizationSuggestion struct {
	Original  string `json:"original"`
	Suggested string `json:"suggested"`
	Reason    string `json:"reason,omitempty"`
}

// AnalyzeResponse is the match report produced by POST /resume/analyze.
type AnalyzeResponse struct {
	MatchScore        float64                  `json:"match_score"`
	RequiredCoverage  float64                  `json:"required_coverage"`
	PreferredCoverage float64                  `json:"preferred_coverage"`
	QuantifiedImpact  float64                  `json:"quantified_impact"`
	ExtractedSkills   []string                 `json:"extracted_skills"`
	RequiredSkills    []SkillMatch             `json:"required_skills"`
	MissingSkills     []string                 `json:"missing_skills"`
	Suggestions       []OptimizationSuggestion `json:"suggestions"`
}

// MissingRequired returns the required skills not present on the resume, in server order.
// RequiredSkills is authoritative; MissingSkills is not consulted.
func (r *AnalyzeResponse) MissingRequired() []string {
	var missing []string
	for _, s := range r.RequiredSkills {
		if !s.Present {
			missing = append(missing, s.Skill)
		}
	}
	return missing
}

// AnalysisRecord is one entry of GET /resume/history.
type AnalysisRecord struct {
	ID                int                      `json:"id"`
	ResumeFilename    string                   `json:"resume_filename"`
	JobTitle          string                   `json:"job_title"`
	Company           string                   `json:"company"`
	MatchScore        float64                  `json:"match_score"`
	RequiredCoverage  float64                  `json:"required_coverage"`
	PreferredCoverage float64                  `json:"preferred_coverage"`
	QuantifiedImpact  float64                  `json:"quantified_impact"`
	ExtractedSkills   []string                 `json:"extracted_skills"`
	MissingSkills     []string                 `json:"missing_skills"`
	Suggestions       []OptimizationSuggestion `json:"suggestions"`
	CreatedAt         Timestamp                `json:"created_at"`
}

// AnalyzeRequest carries the multipart inputs of a resume analysis.
type AnalyzeRequest struct {
	Resume         io.Reader
	Filename       string
	JobDescription string
	JobTitle       string
	Company        string
}

// Validate rejects requests without a resume or without job description text.
func (r *AnalyzeRequest) Validate() error {
	if r.Resume == nil {
		return &ValidationError{Field: "resume", Message: "a resume file is required"}
	}
	if strings.TrimSpace(r.JobDescription) == "" {
		return &ValidationError{Field: "job_description", Message: "a job description is required"}
	}
	return nil
}

// Report rebuilds a match report from a stored record. Records keep only the
// missing skills, so every required skill in the result is marked absent.
func (r *AnalysisRecord) Report() *AnalyzeResponse {
	required := make([]SkillMatch, 0, len(r.MissingSkills))
	for _, s := range r.MissingSkills {
		required = append(required, SkillMatch{Skill: s})
	}
	return &AnalyzeResponse{
		MatchScore:        r.MatchScore,
		RequiredCoverage:  r.RequiredCoverage,
		PreferredCoverage: r.PreferredCoverage,
		QuantifiedImpact:  r.QuantifiedImpact,
		ExtractedSkills:   r.ExtractedSkills,
		RequiredSkills:    required,
		MissingSkills:     r.MissingSkills,
		Suggestions:       r.Suggestions,
	}
}
