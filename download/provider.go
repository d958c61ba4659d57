package download

import (
	"context"

	"github.com/kbukum/ytdiarize/provider"
)

// Provider is the interface that audio acquisition backends must implement.
type Provider interface {
	provider.Provider // embeds Name() and IsAvailable()

	// Download fetches the audio for a URL into the output directory and
	// returns the path of the resulting WAV file.
	Download(ctx context.Context, req Request) (*Result, error)
}

// Request holds parameters for an audio download.
type Request struct {
	// URL is the media URL to fetch.
	URL string `json:"url"`
	// OutputDir is the directory where the audio file is written.
	OutputDir string `json:"output_dir"`
}

// Result holds the outcome of an audio download.
type Result struct {
	// AudioPath is the path to the downloaded WAV file.
	AudioPath string `json:"audio_path"`
	// Duration is the wall-clock time the download took.
	Duration float64 `json:"duration,omitempty"`
}
