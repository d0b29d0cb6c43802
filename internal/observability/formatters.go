// Package observability provides formatted terminal output and logging for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jonathan/careercore/internal/heatmap"
	"github.com/jonathan/careercore/internal/session"
	"github.com/jonathan/careercore/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// heatmapSummarySkills is how many skills get an average line under the grid
	heatmapSummarySkills = 10
)

// Printer handles formatted output for CLI results
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// printNotice prints a single-line box.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printNotice(text string) {
	fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(text, boxWidth-4))
	fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
}

// bar renders a 0-100 value as a fixed-width gauge.
func bar(value float64, width int) string {
	filled := int(value/100*float64(width) + 0.5)
	filled = max(0, min(filled, width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// PrintAnalysis outputs the match report of a resume analysis.
func (p *Printer) PrintAnalysis(r *types.AnalyzeResponse) {
	if r == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match score:        %5.1f%%  %s\n", r.MatchScore, bar(r.MatchScore, 20)))
	sb.WriteString(fmt.Sprintf("Required coverage:  %5.1f%%  %s\n", r.RequiredCoverage, bar(r.RequiredCoverage, 20)))
	sb.WriteString(fmt.Sprintf("Preferred coverage: %5.1f%%  %s\n", r.PreferredCoverage, bar(r.PreferredCoverage, 20)))
	sb.WriteString(fmt.Sprintf("Quantified impact:  %5.1f%%  %s\n", r.QuantifiedImpact, bar(r.QuantifiedImpact, 20)))
	sb.WriteString("\n")

	if len(r.ExtractedSkills) > 0 {
		sb.WriteString("Skills detected:\n")
		sb.WriteString(fmt.Sprintf("  %s\n\n", strings.Join(r.ExtractedSkills, ", ")))
	}

	if len(r.RequiredSkills) > 0 {
		sb.WriteString("Required skills:\n")
		for _, s := range r.RequiredSkills {
			mark := "✗"
			if s.Present {
				mark = "✓"
			}
			sb.WriteString(fmt.Sprintf("  %s %s\n", mark, s.Skill))
		}
		sb.WriteString("\n")
	}

	if len(r.Suggestions) > 0 {
		sb.WriteString("Suggestions:\n")
		count := min(len(r.Suggestions), maxItemsToShow)
		for i := 0; i < count; i++ {
			s := r.Suggestions[i]
			sb.WriteString(fmt.Sprintf("  - %s\n", s.Original))
			sb.WriteString(fmt.Sprintf("  + %s\n", s.Suggested))
			if s.Reason != "" {
				sb.WriteString(fmt.Sprintf("    (%s)\n", s.Reason))
			}
		}
		if len(r.Suggestions) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(r.Suggestions)-maxItemsToShow))
		}
	}

	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHistory outputs past analyses, newest first.
func (p *Printer) PrintHistory(records []types.AnalysisRecord) {
	if len(records) == 0 {
		p.printNotice("No analyses yet")
		return
	}

	var sb strings.Builder
	for i, rec := range records {
		target := rec.JobTitle
		if rec.Company != "" {
			target = fmt.Sprintf("%s @ %s", rec.JobTitle, rec.Company)
		}
		if target == "" {
			target = "(untitled)"
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", rec.ID, target))
		sb.WriteString(fmt.Sprintf("    %5.1f%%  %s  %s\n", rec.MatchScore, rec.CreatedAt.Format("2006-01-02"), rec.ResumeFilename))
		if len(rec.MissingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    missing: %s\n", strings.Join(rec.MissingSkills, ", ")))
		}
		if i < len(records)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("ANALYSIS HISTORY", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDashboard outputs aggregate statistics, or a hint when nothing has been analyzed.
func (p *Printer) PrintDashboard(s *types.DashboardStats) {
	if s == nil {
		return
	}
	if !s.HasData() {
		p.printNotice("No analyses yet: run `careercore analyze` to get started")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match score:    %5.1f%%\n", s.MatchScore))
	sb.WriteString(fmt.Sprintf("Analyses:       %d\n", s.TotalAnalyses))
	sb.WriteString(fmt.Sprintf("Callback rate:  %5.1f%%\n", s.CallbackRate))

	if len(s.StatCards) > 0 {
		sb.WriteString("\n")
		for _, card := range s.StatCards {
			sb.WriteString(fmt.Sprintf("%-16s %g\n", card.Label+":", card.Value))
		}
	}

	if len(s.SkillCoverage) > 0 {
		sb.WriteString("\nSkill coverage:\n")
		for _, c := range s.SkillCoverage {
			sb.WriteString(fmt.Sprintf("  %-14s %s %3.0f%%\n", truncate(c.Skill, 14), bar(c.Coverage, 20), c.Coverage))
		}
	}

	if len(s.SkillGaps) > 0 {
		sb.WriteString("\nSkill gaps:\n")
		for _, g := range s.SkillGaps {
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", g.Skill, g.Why))
		}
	}

	p.printBox("DASHBOARD", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobs outputs a compact listing table.
func (p *Printer) PrintJobs(jobs []types.Job) {
	if len(jobs) == 0 {
		p.printNotice("No matching internships")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-4s %-14s %-20s %5s %-6s\n", "ID", "COMPANY", "ROLE", "MATCH", "DEMAND"))
	for _, j := range jobs {
		sb.WriteString(fmt.Sprintf("%-4d %-14s %-20s %4.0f%% %-6s\n",
			j.ID, truncate(j.Company, 14), truncate(j.Role, 20), j.MatchScore, j.DemandLevel))
	}

	p.printBox(fmt.Sprintf("INTERNSHIPS (%d)", len(jobs)), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJob outputs the detail view of one listing.
func (p *Printer) PrintJob(j *types.Job) {
	if j == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:    %s\n", j.Company))
	sb.WriteString(fmt.Sprintf("Role:       %s\n", j.Role))
	sb.WriteString(fmt.Sprintf("Match:      %.0f%%\n", j.MatchScore))
	sb.WriteString(fmt.Sprintf("Demand:     %s\n", j.DemandLevel))
	sb.WriteString(fmt.Sprintf("Priority:   %s\n", j.ApplyPriority))
	sb.WriteString(fmt.Sprintf("Frequency:  %g%%\n", j.MarketFrequency))
	sb.WriteString(fmt.Sprintf("Salary:     %s\n", j.SalaryEstimate))
	if len(j.RequiredSkills) > 0 {
		sb.WriteString(fmt.Sprintf("\nRequired skills:\n  %s", strings.Join(j.RequiredSkills, ", ")))
	}

	p.printBox(fmt.Sprintf("JOB #%d", j.ID), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintHeatmap outputs the demand grid for roles followed by per-skill averages.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintHeatmap(h *types.Heatmap, roles []string) {
	if h == nil || len(h.Skills) == 0 || len(roles) == 0 {
		p.printNotice("No heatmap data")
		return
	}

	fmt.Fprintf(p.out, "%-18s", "")
	for _, skill := range h.Skills {
		fmt.Fprintf(p.out, " %-4s", truncate(skill, 4))
	}
	fmt.Fprintln(p.out)

	for _, role := range roles {
		fmt.Fprintf(p.out, "%-18s", truncate(role, 18))
		for _, skill := range h.Skills {
			v := h.Value(role, skill)
			shade := heatmap.Bucket(v).Shade
			fmt.Fprintf(p.out, " %s%3d", shade, v)
		}
		fmt.Fprintln(p.out)
	}

	var legend []string
	for _, in := range heatmap.Intensities {
		legend = append(legend, fmt.Sprintf("[%s] %s", in.Shade, in.Label))
	}
	fmt.Fprintf(p.out, "\n%s\n\n", strings.Join(legend, "  "))

	var sb strings.Builder
	for _, s := range heatmap.Summarize(h, roles, heatmapSummarySkills) {
		sb.WriteString(fmt.Sprintf("%-20s %3d%%  %s\n", truncate(s.Skill, 20), s.Average, s.Intensity.Label))
	}
	p.printBox("AVERAGE DEMAND", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQuestions outputs generated practice questions.
func (p *Printer) PrintQuestions(questions []types.Question) {
	if len(questions) == 0 {
		p.printNotice("No questions returned")
		return
	}

	var sb strings.Builder
	for i, q := range questions {
		sb.WriteString(fmt.Sprintf("Q%d. %s\n", i+1, q.Question))
		if q.Category != "" {
			sb.WriteString(fmt.Sprintf("    [%s]\n", q.Category))
		}
		if q.Hint != "" {
			sb.WriteString(fmt.Sprintf("    hint: %s\n", q.Hint))
		}
		if i < len(questions)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("PRACTICE QUESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAnswer outputs the evaluation of an answer.
func (p *Printer) PrintAnswer(r *types.AnswerResult) {
	if r == nil {
		return
	}

	verdict := "✗ Not quite"
	if r.Correct {
		verdict = "✓ Correct"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s  (score %.0f/100)\n\n", verdict, r.Score))
	sb.WriteString(fmt.Sprintf("%s\n", r.Feedback))
	if r.IdealAnswer != "" {
		sb.WriteString(fmt.Sprintf("\nIdeal answer:\n%s\n", r.IdealAnswer))
	}

	p.printBox("ANSWER FEEDBACK", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintUser outputs the account profile.
func (p *Printer) PrintUser(u *types.User) {
	if u == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ID:      %d\n", u.ID))
	sb.WriteString(fmt.Sprintf("Name:    %s\n", u.Name))
	sb.WriteString(fmt.Sprintf("Email:   %s\n", u.Email))
	sb.WriteString(fmt.Sprintf("School:  %s\n", u.School))
	sb.WriteString(fmt.Sprintf("Major:   %s\n", u.Major))
	if u.CreatedAt != nil && !u.CreatedAt.IsZero() {
		sb.WriteString(fmt.Sprintf("Joined:  %s\n", u.CreatedAt.Format("2006-01-02")))
	}

	p.printBox("ACCOUNT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintStatus outputs whether a session is stored and what its token claims say.
func (p *Printer) PrintStatus(token string, now time.Time) {
	if token == "" {
		p.printNotice("Not logged in")
		return
	}

	info, err := session.Inspect(token)
	if err != nil {
		p.printBox("SESSION", "Logged in (token is not a readable JWT)")
		return
	}

	var sb strings.Builder
	sb.WriteString("Logged in\n")
	if info.Subject != "" {
		sb.WriteString(fmt.Sprintf("Subject:  %s\n", info.Subject))
	}
	if info.IssuedAt != nil {
		sb.WriteString(fmt.Sprintf("Issued:   %s\n", info.IssuedAt.UTC().Format(time.RFC3339)))
	}
	if info.ExpiresAt != nil {
		state := "valid"
		if info.Expired(now) {
			state = "expired"
		}
		sb.WriteString(fmt.Sprintf("Expires:  %s (%s)\n", info.ExpiresAt.UTC().Format(time.RFC3339), state))
	}

	p.printBox("SESSION", strings.TrimSuffix(sb.String(), "\n"))
}
