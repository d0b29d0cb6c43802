package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonathan/careercore/internal/session"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// cliEnv runs commands in-process against a stub API server.
type cliEnv struct {
	t           *testing.T
	server      *httptest.Server
	sessionFile string
}

func newCLIEnv(t *testing.T, handler http.HandlerFunc) *cliEnv {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"CAREERCORE_API_URL", "CAREERCORE_SESSION_FILE", "CAREERCORE_ELEVENLABS_API_KEY",
		"CAREERCORE_PLAYER", "CAREERCORE_LOG_LEVEL", "CAREERCORE_VERBOSE",
		"NEXT_PUBLIC_API_URL", "NEXT_PUBLIC_ELEVENLABS_API_KEY",
	} {
		t.Setenv(key, "")
	}

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &cliEnv{t: t, server: server, sessionFile: filepath.Join(home, "session.json")}
}

// store opens the session file the commands use.
func (e *cliEnv) store() *session.FileStore {
	return session.NewFileStore(e.sessionFile)
}

// run executes the CLI with args and returns stdout and stderr.
func (e *cliEnv) run(stdin string, args ...string) (string, string, error) {
	e.t.Helper()
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args, "--api-url", e.server.URL, "--session-file", e.sessionFile))

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

// resetFlags restores every flag to its default so runs do not leak into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func userPayload() map[string]any {
	return map[string]any{"id": 1, "name": "Alex Kim", "email": "alex@example.com", "school": "State U", "major": "CS"}
}

func analyzePayload() map[string]any {
	return map[string]any{
		"match_score":        74.6,
		"required_coverage":  80,
		"preferred_coverage": 33.3,
		"quantified_impact":  50,
		"extracted_skills":   []string{"Python", "SQL"},
		"required_skills": []map[string]any{
			{"skill": "Python", "present": true},
			{"skill": "AWS", "present": false},
		},
		"missing_skills": []string{"AWS"},
		"suggestions": []map[string]any{
			{"original": "Worked on data", "suggested": "Built pipelines", "reason": "Use strong verbs"},
		},
	}
}

func jobPayload(id int, company string) map[string]any {
	return map[string]any{
		"id": id, "company": company, "role": "Data Intern", "match_score": 82.5,
		"demand_level": "High", "apply_priority": "Apply Now",
		"required_skills": []string{"SQL"}, "market_frequency": 0.4, "salary_estimate": "$30/hr",
	}
}
