package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"
)

const (
	// DefaultEndpoint is the ElevenLabs text-to-speech base URL; the voice id is appended.
	DefaultEndpoint = "https://api.elevenlabs.io/v1/text-to-speech"
	// DefaultVoiceID is the "Rachel" voice.
	DefaultVoiceID = "21m00Tcm4TlvDq8ikWAM"
	// DefaultModelID is the low-latency synthesis model.
	DefaultModelID = "eleven_turbo_v2"

	defaultStability       = 0.5
	defaultSimilarityBoost = 0.75

	genericSpeechFailure = "ElevenLabs TTS request failed"
	maxAudioBytes        = 32 << 20
)

// SpeakerConfig configures a Speaker. Only APIKey is required.
type SpeakerConfig struct {
	APIKey            string
	Endpoint          string
	VoiceID           string
	ModelID           string
	RequestsPerMinute int
	HTTPClient        *http.Client
	Logger            *slog.Logger
}

// Speaker synthesizes speech through the ElevenLabs API. It paces requests and
// stops calling the service for a while after repeated server failures.
type Speaker struct {
	apiKey  string
	url     string
	modelID string
	client  *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[[]byte]
	logger  *slog.Logger
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type synthesisRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

// NewSpeaker creates a Speaker from cfg, filling unset fields with defaults.
func NewSpeaker(cfg SpeakerConfig) *Speaker {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	voiceID := cfg.VoiceID
	if voiceID == "" {
		voiceID = DefaultVoiceID
	}
	modelID := cfg.ModelID
	if modelID == "" {
		modelID = DefaultModelID
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	limit := rate.Inf
	if cfg.RequestsPerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute))
	}

	s := &Speaker{
		apiKey:  cfg.APIKey,
		url:     strings.TrimRight(endpoint, "/") + "/" + voiceID,
		modelID: modelID,
		client:  client,
		limiter: rate.NewLimiter(limit, 1),
		logger:  logger,
	}

	s.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "elevenlabs-tts",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		// Client errors say nothing about the health of the service.
		IsSuccessful: func(err error) bool {
			var speechErr *SpeechError
			if errors.As(err, &speechErr) && speechErr.Status >= 400 && speechErr.Status < 500 {
				return true
			}
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
	return s
}

// Synthesize converts text to MPEG audio.
func (s *Speaker) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if s.apiKey == "" {
		return nil, ErrNoAPIKey
	}
	if strings.TrimSpace(text) == "" {
		return nil, &SpeechError{Message: "nothing to speak"}
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, &SpeechError{Message: "speech request not sent", Cause: err}
	}

	audio, err := s.breaker.Execute(func() ([]byte, error) {
		return s.synthesize(ctx, text)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, &SpeechError{Message: "speech service temporarily unavailable", Cause: err}
	}
	return audio, err
}

func (s *Speaker) synthesize(ctx context.Context, text string) ([]byte, error) {
	payload, err := json.Marshal(synthesisRequest{
		Text:    text,
		ModelID: s.modelID,
		VoiceSettings: voiceSettings{
			Stability:       defaultStability,
			SimilarityBoost: defaultSimilarityBoost,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode speech request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create speech request: %w", err)
	}
	req.Header.Set("xi-api-key", s.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &SpeechError{Message: genericSpeechFailure, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	s.logger.Debug("speech request completed", "status", resp.StatusCode, "chars", len(text), "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &SpeechError{Status: resp.StatusCode, Message: speechFailureMessage(resp.Body)}
	}

	audio, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioBytes))
	if err != nil {
		return nil, &SpeechError{Message: "failed to read audio", Cause: err}
	}
	if len(audio) == 0 {
		return nil, &SpeechError{Status: resp.StatusCode, Message: "speech service returned no audio"}
	}
	return audio, nil
}

// speechFailureMessage reads detail.message from an error body.
func speechFailureMessage(body io.Reader) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.NewDecoder(io.LimitReader(body, 1<<20)).Decode(&payload); err != nil || len(payload.Detail) == 0 {
		return genericSpeechFailure
	}

	var detail struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(payload.Detail, &detail); err != nil || detail.Message == "" {
		return genericSpeechFailure
	}
	return detail.Message
}

// Speak synthesizes text and plays it to completion through player.
func (s *Speaker) Speak(ctx context.Context, player Player, text string) error {
	audio, err := s.Synthesize(ctx, text)
	if err != nil {
		return err
	}

	playback, err := Play(ctx, player, audio)
	if err != nil {
		return err
	}
	return playback.Wait()
}
