package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/ytdiarize/download"
	goerrors "github.com/kbukum/ytdiarize/errors"
	"github.com/kbukum/ytdiarize/logger"
	"github.com/kbukum/ytdiarize/transcript"
	"github.com/kbukum/ytdiarize/transcription"
)

// Config tunes a Runner.
type Config struct {
	// WorkspaceRoot is the parent directory for per-run workspaces.
	// Defaults to the OS temp directory.
	WorkspaceRoot string
	// OutputDir is where the final transcript files are written.
	// Defaults to the current directory.
	OutputDir string
	// KeepWorkspace preserves the run workspace instead of removing it.
	KeepWorkspace bool
	// MaxShortSegment is the speaker smoothing threshold in seconds.
	MaxShortSegment float64
	// Language, MinSpeakers, MaxSpeakers and InitialPrompt are passed
	// through to the transcription backend as hints.
	Language      string
	MinSpeakers   int
	MaxSpeakers   int
	InitialPrompt string
}

// Result holds the outputs of a completed run.
type Result struct {
	// RunID identifies the run.
	RunID string
	// TextPath is the saved diarized transcript (.txt).
	TextPath string
	// JSONPath is the saved raw transcription output (.json).
	JSONPath string
	// Lines are the rendered transcript lines.
	Lines []string
}

// Runner executes end-to-end diarization runs.
type Runner struct {
	cfg         Config
	downloader  download.Provider
	transcriber transcription.Provider
	log         *logger.Logger
}

// NewRunner creates a Runner. A nil log disables logging.
func NewRunner(cfg Config, dl download.Provider, tr transcription.Provider, log *logger.Logger) *Runner {
	if cfg.WorkspaceRoot == "" {
		cfg.WorkspaceRoot = os.TempDir()
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.MaxShortSegment == 0 {
		cfg.MaxShortSegment = transcript.DefaultMaxShortSegment
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{cfg: cfg, downloader: dl, transcriber: tr, log: log}
}

// Run downloads the audio for a URL, produces a diarized transcript, and
// saves the .txt and .json outputs into the configured output directory.
func (r *Runner) Run(ctx context.Context, url string) (*Result, error) {
	if strings.TrimSpace(url) == "" {
		return nil, goerrors.InvalidInput("url", "a media URL is required")
	}

	runID := uuid.NewString()
	log := r.log.WithFields(logger.Fields(logger.FieldRunID, runID, logger.FieldURL, url))
	log.Info("run started")

	workDir := filepath.Join(r.cfg.WorkspaceRoot, "ytdiarize_"+runID)
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return nil, goerrors.Internal(fmt.Sprintf("create workspace: %v", err))
	}
	defer func() {
		if r.cfg.KeepWorkspace {
			log.Info("workspace preserved", logger.Fields(logger.FieldPath, workDir))
			return
		}
		if err := os.RemoveAll(workDir); err != nil {
			log.Warn("workspace cleanup failed", logger.ErrorFields("cleanup", err))
		}
	}()

	if !r.downloader.IsAvailable(ctx) {
		return nil, goerrors.Unavailable(r.downloader.Name())
	}
	if !r.transcriber.IsAvailable(ctx) {
		return nil, goerrors.Unavailable(r.transcriber.Name())
	}

	log.Info("downloading audio")
	dl, err := r.downloader.Download(ctx, download.Request{URL: url, OutputDir: workDir})
	if err != nil {
		return nil, err
	}
	log.Info("audio downloaded", logger.Fields(logger.FieldPath, dl.AudioPath))

	log.Info("running diarized transcription")
	tr, err := r.transcriber.Transcribe(ctx, transcription.Request{
		AudioPath:     dl.AudioPath,
		OutputDir:     workDir,
		Language:      r.cfg.Language,
		MinSpeakers:   r.cfg.MinSpeakers,
		MaxSpeakers:   r.cfg.MaxSpeakers,
		InitialPrompt: r.cfg.InitialPrompt,
	})
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(tr.JSONPath)
	if err != nil {
		return nil, goerrors.Internal(fmt.Sprintf("read transcription output: %v", err))
	}
	var doc transcript.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, goerrors.Internal("transcription output is not valid JSON").WithCause(err)
	}

	lines := transcript.RenderSegmentLines(doc.Segments, r.cfg.MaxShortSegment)

	result, err := r.saveOutputs(runID, lines, data)
	if err != nil {
		return nil, err
	}
	log.Info("run finished", logger.Fields(
		logger.FieldPath, result.TextPath,
		"json_path", result.JSONPath,
		"lines", len(lines),
	))
	return result, nil
}

// saveOutputs writes the transcript lines and the raw JSON next to each
// other, both named diarized_transcript_<timestamp>.
func (r *Runner) saveOutputs(runID string, lines []string, rawJSON []byte) (*Result, error) {
	base := "diarized_transcript_" + time.Now().Format("20060102_150405")
	textPath := filepath.Join(r.cfg.OutputDir, base+".txt")
	jsonPath := filepath.Join(r.cfg.OutputDir, base+".json")

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(textPath, []byte(sb.String()), 0o644); err != nil {
		return nil, goerrors.Internal(fmt.Sprintf("save transcript: %v", err))
	}
	if err := os.WriteFile(jsonPath, rawJSON, 0o644); err != nil {
		return nil, goerrors.Internal(fmt.Sprintf("save raw output: %v", err))
	}

	return &Result{
		RunID:    runID,
		TextPath: textPath,
		JSONPath: jsonPath,
		Lines:    lines,
	}, nil
}
