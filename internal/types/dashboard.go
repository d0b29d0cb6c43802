package types

// StatCard is one headline number on the dashboard.
type StatCard struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// SkillCoverage is the share of recent analyses in which a skill was detected.
type SkillCoverage struct {
	Skill    string  `json:"skill"`
	Coverage float64 `json:"coverage"`
}

// SkillGap is a job-relevant skill absent from recent resumes, with rationale.
type SkillGap struct {
	Skill string `json:"skill"`
	Why   string `json:"why"`
}

// DashboardStats is the aggregate view model of GET /dashboard/stats.
type DashboardStats struct {
	MatchScore    float64         `json:"match_score"`
	StatCards     []StatCard      `json:"stat_cards"`
	SkillCoverage []SkillCoverage `json:"skill_coverage"`
	SkillGaps     []SkillGap      `json:"skill_gaps"`
	TotalAnalyses int             `json:"total_analyses"`
	CallbackRate  float64         `json:"callback_rate"`
}

// HasData reports whether at least one analysis has been performed.
// A zero TotalAnalyses is the server's "nothing yet" sentinel.
func (s *DashboardStats) HasData() bool {
	return s.TotalAnalyses > 0
}
