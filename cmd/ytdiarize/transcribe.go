package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/ytdiarize/config"
	"github.com/kbukum/ytdiarize/download"
	"github.com/kbukum/ytdiarize/download/ytdlp"
	"github.com/kbukum/ytdiarize/logger"
	"github.com/kbukum/ytdiarize/pipeline"
	"github.com/kbukum/ytdiarize/transcription"
	"github.com/kbukum/ytdiarize/transcription/whisperx"
	"github.com/kbukum/ytdiarize/util"
)

// TranscribeCmd runs the end-to-end download + diarization pipeline.
type TranscribeCmd struct {
	URL         string `arg:"" help:"Media URL to transcribe."`
	OutputDir   string `help:"Directory where the final transcript files are written." type:"path" default:"."`
	Keep        bool   `help:"Keep the run workspace for inspection."`
	Language    string `help:"Audio language hint (overrides config)."`
	MinSpeakers int    `help:"Minimum speaker count hint (overrides config)."`
	MaxSpeakers int    `help:"Maximum speaker count hint (overrides config)."`
}

func (c *TranscribeCmd) Run(cfg *config.App, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dlLog := log.WithComponent(ytdlp.ProviderName)
	dlReg := download.NewRegistry()
	dlReg.RegisterFactory(ytdlp.ProviderName, ytdlp.Factory())
	dl, err := dlReg.Create(ytdlp.ProviderName, map[string]any{
		"binary":       cfg.Download.Binary,
		"cookies_path": cfg.Download.CookiesPath,
		"on_line":      func(line string) { dlLog.Debug(line) },
	})
	if err != nil {
		return err
	}

	trLog := log.WithComponent(whisperx.ProviderName)
	trReg := transcription.NewRegistry()
	trReg.RegisterFactory(whisperx.ProviderName, whisperx.Factory())
	tr, err := trReg.Create(whisperx.ProviderName, map[string]any{
		"binary":       cfg.WhisperX.Binary,
		"model":        cfg.WhisperX.Model,
		"device":       cfg.WhisperX.Device,
		"compute_type": cfg.WhisperX.ComputeType,
		"batch_size":   cfg.WhisperX.BatchSize,
		"beam_size":    cfg.WhisperX.BeamSize,
		"threads":      cfg.WhisperX.Threads,
		"hf_token":     cfg.WhisperX.HFToken,
		"on_line":      func(line string) { trLog.Debug(line) },
	})
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(pipeline.Config{
		WorkspaceRoot:   cfg.Workspace.Root,
		OutputDir:       c.OutputDir,
		KeepWorkspace:   c.Keep || cfg.Workspace.Keep,
		MaxShortSegment: cfg.Transcript.MaxShortSegment,
		Language:        util.Coalesce(c.Language, cfg.WhisperX.Language),
		MinSpeakers:     util.Coalesce(c.MinSpeakers, cfg.WhisperX.MinSpeakers),
		MaxSpeakers:     util.Coalesce(c.MaxSpeakers, cfg.WhisperX.MaxSpeakers),
		InitialPrompt:   cfg.WhisperX.InitialPrompt,
	}, dl, tr, log.WithComponent("pipeline"))

	result, err := runner.Run(ctx, c.URL)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("=== Done ===")
	fmt.Println("Diarized transcript (TXT):", result.TextPath)
	fmt.Println("Raw WhisperX output (JSON):", result.JSONPath)
	return nil
}
