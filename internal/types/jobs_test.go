//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobFilter_QueryOmitsAbsentParams(t *testing.T) {
	qs := JobFilter{Q: "Google"}.Query()

	assert.Equal(t, "q=Google", qs.Encode())
	assert.False(t, qs.Has("demand"))
	assert.False(t, qs.Has("min_score"))
}

func TestJobFilter_QueryAllParams(t *testing.T) {
	score := 70.5
	qs := JobFilter{Q: "data", Demand: DemandHigh, MinScore: &score}.Query()

	assert.Equal(t, "data", qs.Get("q"))
	assert.Equal(t, "High", qs.Get("demand"))
	assert.Equal(t, "70.5", qs.Get("min_score"))
}

func TestJobFilter_ZeroMinScoreIsSent(t *testing.T) {
	zero := 0.0
	qs := JobFilter{MinScore: &zero}.Query()

	assert.Equal(t, "min_score=0", qs.Encode())
}

func TestJobFilter_Validate(t *testing.T) {
	assert.NoError(t, JobFilter{}.Validate())

	err := JobFilter{Demand: "Extreme"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "demand")

	high := 120.0
	err = JobFilter{MinScore: &high}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_score")
}

func TestQuestionRequest_Validate(t *testing.T) {
	assert.NoError(t, (&QuestionRequest{Language: "Go", Difficulty: DifficultyGod, Count: 5}).Validate())

	err := (&QuestionRequest{Language: "Go", Difficulty: "impossible", Count: 5}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "difficulty")

	err = (&QuestionRequest{Difficulty: DifficultyEasy, Count: 5}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "language")
}

func TestHeatmap_Value(t *testing.T) {
	h := &Heatmap{Data: map[string]map[string]int{"Data Analyst": {"SQL": 95}}}

	assert.Equal(t, 95, h.Value("Data Analyst", "SQL"))
	assert.Equal(t, 0, h.Value("Data Analyst", "Rust"))
	assert.Equal(t, 0, h.Value("Unknown", "SQL"))
}
