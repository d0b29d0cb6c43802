// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// DefaultAPIURL is the backend address used when nothing else is configured.
	DefaultAPIURL = "http://localhost:8000"
	// EnvPrefix prefixes every environment variable read by Load.
	EnvPrefix = "CAREERCORE"

	legacyAPIURLEnv     = "NEXT_PUBLIC_API_URL"
	legacyElevenLabsEnv = "NEXT_PUBLIC_ELEVENLABS_API_KEY"
)

// Config represents the CLI configuration. Values come from, in increasing
// precedence: defaults, a careercore.yaml/json file, CAREERCORE_* environment
// variables and command-line flags.
type Config struct {
	APIURL            string        `mapstructure:"api_url"`
	SessionFile       string        `mapstructure:"session_file"`
	Timeout           time.Duration `mapstructure:"timeout"`
	ValidateResponses bool          `mapstructure:"validate_responses"`
	LogLevel          string        `mapstructure:"log_level"`
	Verbose           bool          `mapstructure:"verbose"`

	// Speech
	ElevenLabsAPIKey        string `mapstructure:"elevenlabs_api_key"`
	VoiceID                 string `mapstructure:"voice_id"`
	SpeechRequestsPerMinute int    `mapstructure:"speech_requests_per_minute"`
	Player                  string `mapstructure:"player"`

	// Job description ingestion
	UseBrowser   bool          `mapstructure:"use_browser"`
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"`
}

// Load reads configuration. When path is empty the file is optional and is
// searched for as careercore.{yaml,json} in the working directory and in
// $HOME/.careercore; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("careercore")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.careercore")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.applyFallbacks()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every key so AutomaticEnv can populate it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("api_url", "")
	v.SetDefault("session_file", "")
	v.SetDefault("timeout", 60*time.Second)
	v.SetDefault("validate_responses", true)
	v.SetDefault("log_level", "warn")
	v.SetDefault("verbose", false)

	v.SetDefault("elevenlabs_api_key", "")
	v.SetDefault("voice_id", "")
	v.SetDefault("speech_requests_per_minute", 20)
	v.SetDefault("player", "")

	v.SetDefault("use_browser", false)
	v.SetDefault("fetch_timeout", 30*time.Second)
}

// applyFallbacks honours the environment names used by the web front end.
func (c *Config) applyFallbacks() {
	if c.APIURL == "" {
		c.APIURL = os.Getenv(legacyAPIURLEnv)
	}
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.ElevenLabsAPIKey == "" {
		c.ElevenLabsAPIKey = os.Getenv(legacyElevenLabsEnv)
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.APIURL != "" {
		u, err := url.Parse(c.APIURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("config error: 'api_url' must be an http(s) URL, got %q", c.APIURL)
		}
	}

	if c.Timeout < 0 {
		return fmt.Errorf("config error: 'timeout' must be non-negative")
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("config error: 'fetch_timeout' must be non-negative")
	}
	if c.SpeechRequestsPerMinute < 0 {
		return fmt.Errorf("config error: 'speech_requests_per_minute' must be non-negative")
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: invalid 'log_level' %q", c.LogLevel)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.APIURL == "" {
		result.APIURL = defaults.APIURL
	}
	if result.SessionFile == "" {
		result.SessionFile = defaults.SessionFile
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.ElevenLabsAPIKey == "" {
		result.ElevenLabsAPIKey = defaults.ElevenLabsAPIKey
	}
	if result.VoiceID == "" {
		result.VoiceID = defaults.VoiceID
	}
	if result.Player == "" {
		result.Player = defaults.Player
	}

	// Numeric fields: use default if zero
	if result.Timeout == 0 {
		result.Timeout = defaults.Timeout
	}
	if result.FetchTimeout == 0 {
		result.FetchTimeout = defaults.FetchTimeout
	}
	if result.SpeechRequestsPerMinute == 0 {
		result.SpeechRequestsPerMinute = defaults.SpeechRequestsPerMinute
	}

	// Bool fields: flags can only turn these on
	result.Verbose = result.Verbose || defaults.Verbose
	result.UseBrowser = result.UseBrowser || defaults.UseBrowser

	return result
}
