package main

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/jonathan/careercore/internal/voice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPlayer struct {
	audio []byte
}

func (p *recordingPlayer) Play(_ context.Context, path string) error {
	data, err := os.ReadFile(path)
	p.audio = data
	return err
}

// stubAudio replaces the speech endpoint and audio device for one test.
func stubAudio(t *testing.T, endpoint string) *recordingPlayer {
	t.Helper()
	player := &recordingPlayer{}
	prevEndpoint, prevSelect := speechEndpoint, selectPlayer
	speechEndpoint = endpoint
	selectPlayer = func(string) (voice.Player, error) { return player, nil }
	t.Cleanup(func() {
		speechEndpoint, selectPlayer = prevEndpoint, prevSelect
	})
	return player
}

func historyPayload() []map[string]any {
	return []map[string]any{
		{
			"id": 9, "match_score": 49.6, "required_coverage": 50, "preferred_coverage": 0,
			"extracted_skills": []string{"Go"}, "missing_skills": []string{"Docker", "AWS"},
			"created_at": "2026-03-02T10:00:00",
		},
		{"id": 8, "match_score": 90, "missing_skills": []string{}, "created_at": "2026-03-01T10:00:00"},
	}
}

func TestSpeakCommand_PrintLastSummary(t *testing.T) {
	env := newCLIEnv(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/resume/history", r.URL.Path)
		writeJSON(w, http.StatusOK, historyPayload())
	})
	require.NoError(t, env.store().SetToken("tok"))

	stdout, _, err := env.run("", "speak", "--last", "--print")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Your resume has a low match score of 50 percent.")
	assert.Contains(t, stdout, "You are missing 2 required skills: Docker, AWS.")
}

func TestSpeakCommand_NoHistory(t *testing.T) {
	env := newCLIEnv(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []any{})
	})
	require.NoError(t, env.store().SetToken("tok"))

	_, _, err := env.run("", "speak", "--last")
	assert.EqualError(t, err, "no analyses yet: run `careercore analyze` first")
}

func TestSpeakCommand_NothingToSpeak(t *testing.T) {
	env := newCLIEnv(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	})

	_, _, err := env.run("", "speak")
	assert.EqualError(t, err, "nothing to speak: pass text or --last")
}

func TestSpeakCommand_MissingAPIKey(t *testing.T) {
	env := newCLIEnv(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	})
	stubAudio(t, env.server.URL)

	_, _, err := env.run("", "speak", "hello", "there")
	assert.ErrorIs(t, err, voice.ErrNoAPIKey)
}

func TestSpeakCommand_PlaysSynthesizedAudio(t *testing.T) {
	env := newCLIEnv(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tts/"+voice.DefaultVoiceID, r.URL.Path)
		assert.Equal(t, "key-123", r.Header.Get("xi-api-key"))
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("ID3-audio"))
	})
	t.Setenv("CAREERCORE_ELEVENLABS_API_KEY", "key-123")
	player := stubAudio(t, env.server.URL+"/tts")

	_, _, err := env.run("", "speak", "hello", "there")
	require.NoError(t, err)
	assert.Equal(t, []byte("ID3-audio"), player.audio)
}

func TestResolvePlayer_ConfiguredCommand(t *testing.T) {
	player, err := resolvePlayer("ffplay -nodisp -autoexit")
	require.NoError(t, err)
	assert.Equal(t, &voice.CommandPlayer{Name: "ffplay", Args: []string{"-nodisp", "-autoexit"}}, player)
}
