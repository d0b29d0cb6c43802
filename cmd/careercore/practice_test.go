package main

import (
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPracticeQuestionsCommand_RecordsSessionWhenSignedIn(t *testing.T) {
	var (
		mu      sync.Mutex
		paths   []string
		session map[string]string
	)
	env := newCLIEnv(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()

		switch r.URL.Path {
		case "/interview/questions":
			assert.Empty(t, r.Header.Get("Authorization"))
			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, float64(5), body["count"])
			assert.Equal(t, "hard", body["difficulty"])
			writeJSON(w, http.StatusOK, []map[string]any{
				{"question": "What is a goroutine?", "hint": "Think lightweight", "category": "concurrency"},
			})
		case "/practice/sessions":
			assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			mu.Lock()
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&session))
			mu.Unlock()
			w.WriteHeader(http.StatusCreated)
		default:
			http.NotFound(w, r)
		}
	})
	require.NoError(t, env.store().SetToken("tok"))

	stdout, _, err := env.run("", "practice", "questions", "--language", "Go", "--difficulty", "hard")
	require.NoError(t, err)
	assert.Contains(t, stdout, "PRACTICE QUESTIONS")
	assert.Contains(t, stdout, "What is a goroutine?")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"/interview/questions", "/practice/sessions"}, paths)
	assert.Equal(t, map[string]string{"language": "Go", "difficulty": "hard"}, session)
}

func TestPracticeQuestionsCommand_SessionFailureIsIgnored(t *testing.T) {
	env := newCLIEnv(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/practice/sessions" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, []map[string]any{{"question": "Q1"}})
	})
	require.NoError(t, env.store().SetToken("tok"))

	_, _, err := env.run("", "practice", "questions", "--language", "Go")
	assert.NoError(t, err)
}

func TestPracticeQuestionsCommand_SignedOutSkipsSession(t *testing.T) {
	env := newCLIEnv(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/interview/questions", r.URL.Path)
		writeJSON(w, http.StatusOK, []map[string]any{{"question": "Q1"}})
	})

	_, _, err := env.run("", "practice", "questions", "--language", "Go")
	assert.NoError(t, err)
}

func TestPracticeQuestionsCommand_InvalidDifficulty(t *testing.T) {
	env := newCLIEnv(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	})

	_, _, err := env.run("", "practice", "questions", "--language", "Go", "--difficulty", "legendary")
	assert.EqualError(t, err, "difficulty: must be one of: easy medium hard god")
}

func TestPracticeQuestionsCommand_FailureFallback(t *testing.T) {
	env := newCLIEnv(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, _, err := env.run("", "practice", "questions", "--language", "Go")
	assert.EqualError(t, err, "Request failed (502)")
}

func TestPracticeCheckCommand(t *testing.T) {
	env := newCLIEnv(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/interview/check-answer", r.URL.Path)
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "A lightweight thread", body["answer"])
		writeJSON(w, http.StatusOK, map[string]any{
			"correct": true, "score": 85, "feedback": "Good answer", "ideal_answer": "A function running concurrently",
		})
	})

	stdout, _, err := env.run("", "practice", "check",
		"--question", "What is a goroutine?", "--answer", "A lightweight thread", "--language", "Go")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ANSWER FEEDBACK")
	assert.Contains(t, stdout, "Good answer")
}
