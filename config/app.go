package config

import (
	"fmt"
	"os"

	"github.com/kbukum/ytdiarize/logger"
	"github.com/kbukum/ytdiarize/speaker"
	"github.com/kbukum/ytdiarize/transcript"
	"github.com/kbukum/ytdiarize/validation"
)

// App is the root configuration for the ytdiarize CLI.
type App struct {
	Name       string           `yaml:"name" mapstructure:"name"`
	Logging    logger.Config    `yaml:"logging" mapstructure:"logging"`
	Workspace  WorkspaceConfig  `yaml:"workspace" mapstructure:"workspace"`
	Transcript TranscriptConfig `yaml:"transcript" mapstructure:"transcript"`
	WhisperX   WhisperXConfig   `yaml:"whisperx" mapstructure:"whisperx"`
	Download   DownloadConfig   `yaml:"download" mapstructure:"download"`
}

// WorkspaceConfig controls where per-run working directories are created.
type WorkspaceConfig struct {
	// Root is the parent directory for per-run workspaces.
	Root string `yaml:"root" mapstructure:"root" validate:"required"`
	// Keep preserves the workspace after a run instead of removing it.
	Keep bool `yaml:"keep" mapstructure:"keep"`
}

// TranscriptConfig tunes transcript post-processing.
type TranscriptConfig struct {
	// PreviewLimit is the number of example lines shown per speaker
	// during interactive naming.
	PreviewLimit int `yaml:"preview_limit" mapstructure:"preview_limit" validate:"gt=0"`
	// MaxShortSegment is the duration in seconds at or below which an
	// interior segment is eligible for speaker label repair.
	MaxShortSegment float64 `yaml:"max_short_segment" mapstructure:"max_short_segment" validate:"gte=0"`
}

// WhisperXConfig carries settings for the WhisperX backend.
type WhisperXConfig struct {
	Binary      string `yaml:"binary" mapstructure:"binary"`
	Model       string `yaml:"model" mapstructure:"model"`
	Device      string `yaml:"device" mapstructure:"device"`
	ComputeType string `yaml:"compute_type" mapstructure:"compute_type"`
	BatchSize   int    `yaml:"batch_size" mapstructure:"batch_size" validate:"gte=0"`
	BeamSize    int    `yaml:"beam_size" mapstructure:"beam_size" validate:"gte=0"`
	Threads     int    `yaml:"threads" mapstructure:"threads" validate:"gte=0"`
	// HFToken authenticates against the pyannote diarization models. When
	// empty, the loader falls back to the HF_TOKEN environment variable and
	// then to HFTokenFile.
	HFToken     string `yaml:"hf_token" mapstructure:"hf_token"`
	HFTokenFile string `yaml:"hf_token_file" mapstructure:"hf_token_file"`
	// Language fixes the audio language instead of auto-detecting.
	Language string `yaml:"language" mapstructure:"language"`
	// MinSpeakers and MaxSpeakers hint the diarizer's speaker count.
	MinSpeakers int `yaml:"min_speakers" mapstructure:"min_speakers" validate:"gte=0"`
	MaxSpeakers int `yaml:"max_speakers" mapstructure:"max_speakers" validate:"gte=0"`
	// InitialPrompt seeds the decoder with domain vocabulary.
	InitialPrompt string `yaml:"initial_prompt" mapstructure:"initial_prompt"`
}

// DownloadConfig carries settings for the yt-dlp backend.
type DownloadConfig struct {
	Binary string `yaml:"binary" mapstructure:"binary"`
	// CookiesPath points to a Netscape-format cookies.txt for restricted media.
	CookiesPath string `yaml:"cookies_path" mapstructure:"cookies_path"`
}

// ApplyDefaults applies default values to the configuration.
func (c *App) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "ytdiarize"
	}
	c.Logging.ApplyDefaults()
	if c.Workspace.Root == "" {
		c.Workspace.Root = os.TempDir()
	}
	if c.Transcript.PreviewLimit == 0 {
		c.Transcript.PreviewLimit = speaker.DefaultPreviewLimit
	}
	if c.Transcript.MaxShortSegment == 0 {
		c.Transcript.MaxShortSegment = transcript.DefaultMaxShortSegment
	}
	if c.WhisperX.HFTokenFile == "" {
		c.WhisperX.HFTokenFile = "token.txt"
	}
}

// Validate validates the configuration.
func (c *App) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := validation.Validate(c); err != nil {
		return err
	}
	if c.WhisperX.MinSpeakers > 0 && c.WhisperX.MaxSpeakers > 0 &&
		c.WhisperX.MinSpeakers > c.WhisperX.MaxSpeakers {
		return fmt.Errorf("config.whisperx: min_speakers must not exceed max_speakers")
	}
	return nil
}
