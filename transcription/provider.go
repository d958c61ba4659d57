package transcription

import (
	"context"

	"github.com/kbukum/ytdiarize/provider"
)

// Provider is the interface that diarized transcription backends must implement.
type Provider interface {
	provider.Provider // embeds Name() and IsAvailable()

	// Transcribe runs speech-to-text with speaker diarization on an audio
	// file and returns the location of the produced JSON transcript.
	Transcribe(ctx context.Context, req Request) (*Result, error)
}

// Request holds parameters for a transcription call.
type Request struct {
	// AudioPath is the path to the audio file to transcribe.
	AudioPath string `json:"audio_path"`
	// OutputDir is the directory where the backend writes its output files.
	OutputDir string `json:"output_dir"`
	// Language is the expected language of the audio (e.g. "en").
	// Empty means auto-detect.
	Language string `json:"language,omitempty"`
	// MinSpeakers hints the minimum number of distinct speakers. Zero means unset.
	MinSpeakers int `json:"min_speakers,omitempty"`
	// MaxSpeakers hints the maximum number of distinct speakers. Zero means unset.
	MaxSpeakers int `json:"max_speakers,omitempty"`
	// InitialPrompt seeds the decoder with domain vocabulary.
	InitialPrompt string `json:"initial_prompt,omitempty"`
}

// Result holds the outcome of a transcription call.
type Result struct {
	// JSONPath is the path to the diarized JSON transcript produced by the backend.
	JSONPath string `json:"json_path"`
	// Duration is the wall-clock time the backend took.
	Duration float64 `json:"duration,omitempty"`
}
