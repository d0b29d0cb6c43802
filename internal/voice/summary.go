// Package voice turns an analysis report into a spoken summary and plays it
// back through a text-to-speech service.
package voice

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathan/careercore/internal/types"
)

const (
	maxSpokenSkills      = 5
	maxSpokenSuggestions = 2

	defaultSuggestionReason = "Consider rewriting this bullet"
	closingSentence         = "Good luck with your application!"
)

// MatchLevel classifies a match score as "strong", "moderate" or "low".
func MatchLevel(score float64) string {
	switch {
	case score >= 72:
		return "strong"
	case score >= 50:
		return "moderate"
	default:
		return "low"
	}
}

// BuildAnalysisSummary renders a report as a short paragraph suitable for speech.
// It is deterministic and has no side effects.
func BuildAnalysisSummary(r *types.AnalyzeResponse) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Your resume has a %s match score of %s percent. ",
		MatchLevel(r.MatchScore), percent(r.MatchScore))
	fmt.Fprintf(&b, "You cover %s percent of the required skills and %s percent of preferred skills. ",
		percent(r.RequiredCoverage), percent(r.PreferredCoverage))

	if len(r.ExtractedSkills) > 0 {
		top := r.ExtractedSkills[:min(len(r.ExtractedSkills), maxSpokenSkills)]
		fmt.Fprintf(&b, "Key skills detected on your resume include: %s. ", strings.Join(top, ", "))
	}

	if missing := r.MissingRequired(); len(missing) > 0 {
		plural := ""
		if len(missing) > 1 {
			plural = "s"
		}
		fmt.Fprintf(&b, "You are missing %d required skill%s: %s. ", len(missing), plural, strings.Join(missing, ", "))
	} else {
		b.WriteString("Great news, you have all the required skills listed in the job description. ")
	}

	if len(r.Suggestions) > 0 {
		b.WriteString("Here are your top optimization suggestions. ")
		for i, s := range r.Suggestions[:min(len(r.Suggestions), maxSpokenSuggestions)] {
			reason := s.Reason
			if reason == "" {
				reason = defaultSuggestionReason
			}
			fmt.Fprintf(&b, "Suggestion %d: %s ", i+1, reason)
		}
	}

	b.WriteString(closingSentence)
	return b.String()
}

// percent rounds half away from zero; %.0f alone rounds half to even.
func percent(v float64) string {
	return fmt.Sprintf("%.0f", math.Round(v))
}
