package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/careercore/internal/voice"
	"github.com/spf13/cobra"
)

var speakCmd = &cobra.Command{
	Use:   "speak [text]",
	Short: "Read text or the latest analysis summary aloud",
	Long: "Synthesize speech with ElevenLabs and play it through a local audio player. " +
		"With --last the summary of the most recent analysis is spoken instead of the given text.",
	RunE: runSpeak,
}

var (
	speakLast  bool
	speakPrint bool
)

// speechEndpoint and selectPlayer are variables so tests can replace the
// remote service and the audio device.
var (
	speechEndpoint = voice.DefaultEndpoint
	selectPlayer   = resolvePlayer
)

func init() {
	speakCmd.Flags().BoolVar(&speakLast, "last", false, "Speak the summary of the most recent analysis")
	speakCmd.Flags().BoolVar(&speakPrint, "print", false, "Print the text instead of speaking it")

	rootCmd.AddCommand(speakCmd)
}

func runSpeak(cmd *cobra.Command, args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))

	if speakLast {
		if text != "" {
			return errors.New("--last cannot be combined with text arguments")
		}
		history, err := app.client.AnalysisHistory(cmd.Context())
		if err != nil {
			return err
		}
		if len(history) == 0 {
			return errors.New("no analyses yet: run `careercore analyze` first")
		}
		// History is returned newest first.
		text = voice.BuildAnalysisSummary(history[0].Report())
	}

	if text == "" {
		return errors.New("nothing to speak: pass text or --last")
	}

	if speakPrint {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}
	return speakText(cmd, text)
}

// speakText synthesizes text and blocks until playback finishes or the
// command context is cancelled.
func speakText(cmd *cobra.Command, text string) error {
	player, err := selectPlayer(app.cfg.Player)
	if err != nil {
		return err
	}

	speaker := voice.NewSpeaker(voice.SpeakerConfig{
		APIKey:            app.cfg.ElevenLabsAPIKey,
		Endpoint:          speechEndpoint,
		VoiceID:           app.cfg.VoiceID,
		RequestsPerMinute: app.cfg.SpeechRequestsPerMinute,
		Logger:            app.logger,
	})
	return speaker.Speak(cmd.Context(), player, text)
}

// resolvePlayer uses the configured player command when set, otherwise the
// first known player found on PATH.
func resolvePlayer(name string) (voice.Player, error) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		player, err := voice.DetectPlayer()
		if err != nil {
			return nil, err
		}
		return player, nil
	}
	return &voice.CommandPlayer{Name: fields[0], Args: fields[1:]}, nil
}
