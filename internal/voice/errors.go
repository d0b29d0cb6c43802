package voice

import (
	"errors"
	"fmt"
)

// ErrNoAPIKey is returned before any request when no speech API key is configured.
var ErrNoAPIKey = errors.New("ElevenLabs API key is not configured")

// ErrStopped is reported by a Playback that was stopped before it finished.
var ErrStopped = errors.New("playback stopped")

// SpeechError represents a failed text-to-speech request.
type SpeechError struct {
	Status  int
	Message string
	Cause   error
}

func (e *SpeechError) Error() string {
	if e.Cause != nil && e.Status == 0 {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SpeechError) Unwrap() error {
	return e.Cause
}

// PlayerError represents a failure of the local audio player.
type PlayerError struct {
	Player string
	Cause  error
}

func (e *PlayerError) Error() string {
	return fmt.Sprintf("audio player %s failed: %v", e.Player, e.Cause)
}

func (e *PlayerError) Unwrap() error {
	return e.Cause
}
