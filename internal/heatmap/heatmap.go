// Package heatmap classifies skill demand values and summarizes them across roles.
package heatmap

import (
	"math"

	"github.com/jonathan/careercore/internal/types"
)

// AllRoles selects every role in the matrix.
const AllRoles = "All Roles"

// Intensity is the display bucket of a demand value.
type Intensity struct {
	Label string
	Min   int
	Shade string
}

// Intensities are ordered from strongest to weakest; the first whose Min is
// met applies.
var Intensities = []Intensity{
	{Label: "Critical", Min: 85, Shade: "█"},
	{Label: "High", Min: 70, Shade: "▓"},
	{Label: "Medium", Min: 55, Shade: "▒"},
	{Label: "Moderate", Min: 40, Shade: "░"},
	{Label: "Low", Min: 25, Shade: "·"},
	{Label: "Rare", Min: math.MinInt, Shade: " "},
}

// Bucket returns the intensity of a demand value.
func Bucket(value int) Intensity {
	for _, in := range Intensities {
		if value >= in.Min {
			return in
		}
	}
	return Intensities[len(Intensities)-1]
}

// SelectRoles returns the roles to display for a filter value. An empty filter
// or AllRoles selects every role.
func SelectRoles(h *types.Heatmap, selected string) []string {
	if selected == "" || selected == AllRoles {
		return h.Roles
	}
	return []string{selected}
}

// Average returns the rounded mean demand of skill over roles. Missing cells count as zero.
func Average(h *types.Heatmap, roles []string, skill string) int {
	if len(roles) == 0 {
		return 0
	}
	sum := 0
	for _, role := range roles {
		sum += h.Value(role, skill)
	}
	return int(math.Round(float64(sum) / float64(len(roles))))
}

// SkillSummary is the average demand of one skill over the selected roles.
type SkillSummary struct {
	Skill     string
	Average   int
	Intensity Intensity
}

// Summarize averages the first n skills, in matrix order, over roles.
func Summarize(h *types.Heatmap, roles []string, n int) []SkillSummary {
	skills := h.Skills
	if n >= 0 && n < len(skills) {
		skills = skills[:n]
	}

	out := make([]SkillSummary, 0, len(skills))
	for _, skill := range skills {
		avg := Average(h, roles, skill)
		out = append(out, SkillSummary{Skill: skill, Average: avg, Intensity: Bucket(avg)})
	}
	return out
}
