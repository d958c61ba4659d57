// Package whisperx implements transcription.Provider by shelling out to the
// WhisperX CLI with pyannote speaker diarization.
package whisperx

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"
	"strings"

	goerrors "github.com/kbukum/ytdiarize/errors"
	"github.com/kbukum/ytdiarize/process"
	"github.com/kbukum/ytdiarize/provider"
	"github.com/kbukum/ytdiarize/transcription"
)

const (
	// ProviderName is the registered name for the WhisperX provider.
	ProviderName = "whisperx"

	defaultBinary      = "whisperx"
	defaultModel       = "large-v3"
	defaultDevice      = "cpu"
	defaultComputeType = "float32"
	defaultBatchSize   = 8
	defaultBeamSize    = 5

	// failureSnippetLines bounds how much subprocess output a failure carries.
	failureSnippetLines = 50
)

// Config holds configuration for the WhisperX transcription provider.
type Config struct {
	// Binary is the whisperx executable name or path.
	Binary string `json:"binary" yaml:"binary"`
	// Model is the Whisper model size. Defaults to large-v3 for quality.
	Model string `json:"model" yaml:"model"`
	// Device is the compute device (cpu, cuda).
	Device string `json:"device,omitempty" yaml:"device"`
	// ComputeType is the inference precision (float32, float16, int8).
	ComputeType string `json:"compute_type,omitempty" yaml:"compute_type"`
	// BatchSize is the inference batch size.
	BatchSize int `json:"batch_size,omitempty" yaml:"batch_size"`
	// BeamSize is the decoder beam width.
	BeamSize int `json:"beam_size,omitempty" yaml:"beam_size"`
	// Threads caps CPU threads. Defaults to the machine's logical CPU count.
	Threads int `json:"threads,omitempty" yaml:"threads"`
	// HFToken is the Hugging Face token required by the pyannote diarization models.
	HFToken string `json:"hf_token" yaml:"hf_token"`
	// OnLine, if set, receives each subprocess output line for progress logging.
	OnLine func(line string) `json:"-" yaml:"-"`
}

// Provider implements transcription.Provider using the WhisperX CLI.
type Provider struct {
	cfg Config
}

// NewProvider creates a new WhisperX transcription provider.
func NewProvider(cfg Config) *Provider {
	if cfg.Binary == "" {
		cfg.Binary = defaultBinary
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Device == "" {
		cfg.Device = defaultDevice
	}
	if cfg.ComputeType == "" {
		cfg.ComputeType = defaultComputeType
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.BeamSize == 0 {
		cfg.BeamSize = defaultBeamSize
	}
	if cfg.Threads == 0 {
		cfg.Threads = runtime.NumCPU()
	}
	return &Provider{cfg: cfg}
}

// Factory returns a provider.Factory that creates WhisperX Provider
// instances from a generic config map.
func Factory() provider.Factory[transcription.Provider] {
	return func(cfg map[string]any) (transcription.Provider, error) {
		wc := Config{}
		if v, ok := cfg["binary"].(string); ok {
			wc.Binary = v
		}
		if v, ok := cfg["model"].(string); ok {
			wc.Model = v
		}
		if v, ok := cfg["device"].(string); ok {
			wc.Device = v
		}
		if v, ok := cfg["compute_type"].(string); ok {
			wc.ComputeType = v
		}
		if v, ok := cfg["batch_size"].(int); ok {
			wc.BatchSize = v
		}
		if v, ok := cfg["beam_size"].(int); ok {
			wc.BeamSize = v
		}
		if v, ok := cfg["threads"].(int); ok {
			wc.Threads = v
		}
		if v, ok := cfg["hf_token"].(string); ok {
			wc.HFToken = v
		}
		if v, ok := cfg["on_line"].(func(string)); ok {
			wc.OnLine = v
		}
		return NewProvider(wc), nil
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable checks if the whisperx executable can be resolved.
func (p *Provider) IsAvailable(_ context.Context) bool {
	_, err := exec.LookPath(p.cfg.Binary)
	return err == nil
}

// Transcribe runs the WhisperX CLI against an audio file and returns the
// location of the diarized JSON transcript it produced.
func (p *Provider) Transcribe(ctx context.Context, req transcription.Request) (*transcription.Result, error) {
	if req.AudioPath == "" {
		return nil, goerrors.InvalidInput("audio_path", "audio path is required")
	}
	if req.OutputDir == "" {
		return nil, goerrors.InvalidInput("output_dir", "output directory is required")
	}
	if p.cfg.HFToken == "" {
		return nil, goerrors.InvalidConfig("a Hugging Face token is required for diarization")
	}

	result, err := process.Run(ctx, process.Command{
		Binary: p.cfg.Binary,
		Args:   p.buildArgs(req),
		OnLine: p.cfg.OnLine,
	})
	if err != nil {
		appErr := goerrors.TranscriptionFailed(ProviderName).WithCause(err)
		if result != nil {
			appErr = appErr.
				WithDetail("exit_code", result.ExitCode).
				WithDetail("snippet", result.Tail(failureSnippetLines))
		}
		return nil, appErr
	}

	jsonPath, err := findJSONOutput(req.OutputDir, req.AudioPath)
	if err != nil {
		return nil, err
	}

	return &transcription.Result{
		JSONPath: jsonPath,
		Duration: result.Duration.Seconds(),
	}, nil
}

// buildArgs assembles the WhisperX command line for a request.
func (p *Provider) buildArgs(req transcription.Request) []string {
	args := []string{
		req.AudioPath,
		"--model", p.cfg.Model,
		"--diarize",
		"--hf_token", p.cfg.HFToken,
		"--batch_size", strconv.Itoa(p.cfg.BatchSize),
		"--beam_size", strconv.Itoa(p.cfg.BeamSize),
		"--compute_type", p.cfg.ComputeType,
		"--device", p.cfg.Device,
		"--threads", strconv.Itoa(p.cfg.Threads),
		"--vad_method", "pyannote",
		"--output_format", "json",
		"--output_dir", req.OutputDir,
		"--verbose", "True",
		"--print_progress", "True",
	}
	if req.Language != "" {
		args = append(args, "--language", req.Language)
	}
	if req.MinSpeakers > 0 {
		args = append(args, "--min_speakers", strconv.Itoa(req.MinSpeakers))
	}
	if req.MaxSpeakers > 0 {
		args = append(args, "--max_speakers", strconv.Itoa(req.MaxSpeakers))
	}
	if req.InitialPrompt != "" {
		args = append(args, "--initial_prompt", req.InitialPrompt)
	}
	return args
}

// findJSONOutput locates the JSON transcript WhisperX emitted. The file is
// normally named after the audio basename, but some WhisperX versions derive
// the name differently, so any JSON in the output dir is accepted as fallback.
func findJSONOutput(outputDir, audioPath string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	expected := filepath.Join(outputDir, base+".json")
	if info, err := os.Stat(expected); err == nil && !info.IsDir() {
		return expected, nil
	}

	candidates, err := filepath.Glob(filepath.Join(outputDir, "*.json"))
	if err != nil {
		return "", goerrors.Internal(fmt.Sprintf("scan output directory: %v", err))
	}
	if len(candidates) == 0 {
		return "", goerrors.TranscriptionFailed(ProviderName).
			WithDetail("reason", "no JSON output was found in the output directory").
			WithDetail("output_dir", outputDir)
	}
	sort.Strings(candidates)
	return candidates[0], nil
}
