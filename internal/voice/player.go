package voice

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
)

// Player plays an audio file and blocks until playback ends or ctx is done.
type Player interface {
	Play(ctx context.Context, path string) error
}

// CommandPlayer plays audio by running an external program with the file path
// as its last argument.
type CommandPlayer struct {
	Name string
	Args []string
}

// knownPlayers are tried in order by DetectPlayer.
var knownPlayers = []CommandPlayer{
	{Name: "mpg123", Args: []string{"-q"}},
	{Name: "ffplay", Args: []string{"-nodisp", "-autoexit", "-loglevel", "quiet"}},
	{Name: "mpv", Args: []string{"--no-video", "--really-quiet"}},
	{Name: "afplay"},
}

// DetectPlayer returns the first known audio player found on PATH.
func DetectPlayer() (*CommandPlayer, error) {
	for _, p := range knownPlayers {
		if _, err := exec.LookPath(p.Name); err == nil {
			player := p
			return &player, nil
		}
	}
	return nil, errors.New("no audio player found: install mpg123, ffplay, mpv or afplay")
}

func (p *CommandPlayer) Play(ctx context.Context, path string) error {
	args := append(append([]string{}, p.Args...), path)
	if err := exec.CommandContext(ctx, p.Name, args...).Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &PlayerError{Player: p.Name, Cause: err}
	}
	return nil
}

// Playback is one in-flight playback of synthesized audio. The audio is held in
// a temporary file that is removed exactly once, when playback completes, when
// Stop is called, or when the context passed to Play is done, whichever happens
// first.
type Playback struct {
	path   string
	cancel context.CancelFunc
	remove func(string) error
	done   chan struct{}
	once   sync.Once
	err    error
}

// Play writes audio to a temporary file and starts playing it in the background.
func Play(ctx context.Context, player Player, audio []byte) (*Playback, error) {
	f, err := os.CreateTemp("", "careercore-speech-*.mp3")
	if err != nil {
		return nil, fmt.Errorf("failed to create audio file: %w", err)
	}
	if _, err := f.Write(audio); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write audio file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write audio file: %w", err)
	}
	return start(ctx, player, f.Name(), os.Remove), nil
}

func start(ctx context.Context, player Player, path string, remove func(string) error) *Playback {
	playCtx, cancel := context.WithCancel(ctx)
	p := &Playback{
		path:   path,
		cancel: cancel,
		remove: remove,
		done:   make(chan struct{}),
	}

	go func() {
		err := player.Play(playCtx, path)
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		p.release(err)
	}()

	// A player that ignores cancellation must not keep the file alive.
	go func() {
		select {
		case <-ctx.Done():
			p.release(ctx.Err())
		case <-p.done:
		}
	}()

	return p
}

func (p *Playback) release(err error) {
	p.once.Do(func() {
		p.err = err
		p.cancel()
		if rmErr := p.remove(p.path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && p.err == nil {
			p.err = fmt.Errorf("failed to remove audio file: %w", rmErr)
		}
		close(p.done)
	})
}

// Stop ends playback early and releases the audio. It is safe to call more than once.
func (p *Playback) Stop() {
	p.release(ErrStopped)
}

// Done is closed once the audio has been released.
func (p *Playback) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the audio is released and reports how playback ended.
// It returns nil after natural completion.
func (p *Playback) Wait() error {
	<-p.done
	return p.err
}
