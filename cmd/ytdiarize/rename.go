package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kbukum/ytdiarize/config"
	"github.com/kbukum/ytdiarize/logger"
	"github.com/kbukum/ytdiarize/speaker"
	"github.com/kbukum/ytdiarize/transcript"
)

// RenameCmd interactively replaces SPEAKER_XX tags in an existing transcript
// and its matching JSON output, writing NAMED_ copies next to the originals.
type RenameCmd struct {
	Transcript string `arg:"" type:"existingfile" help:"Diarized transcript .txt file containing SPEAKER_XX entries."`
	JSON       string `name:"json" type:"path" help:"Matching transcription .json file (default: transcript path with a .json extension)."`
}

func (c *RenameCmd) Run(cfg *config.App, log *logger.Logger) error {
	return c.run(cfg, log, os.Stdin, os.Stdout)
}

func (c *RenameCmd) run(cfg *config.App, log *logger.Logger, in io.Reader, out io.Writer) error {
	text, err := os.ReadFile(c.Transcript)
	if err != nil {
		return fmt.Errorf("read transcript: %w", err)
	}
	lines := strings.Split(string(text), "\n")

	jsonPath := c.JSON
	if jsonPath == "" {
		candidate := strings.TrimSuffix(c.Transcript, filepath.Ext(c.Transcript)) + ".json"
		if fileExists(candidate) {
			jsonPath = candidate
		}
	}

	var doc *transcript.Document
	if jsonPath != "" && fileExists(jsonPath) {
		data, err := os.ReadFile(jsonPath)
		if err != nil {
			return fmt.Errorf("read JSON file: %w", err)
		}
		var d transcript.Document
		if err := json.Unmarshal(data, &d); err != nil {
			log.Warn("JSON file is not valid; previews will use transcript lines only",
				logger.Fields(logger.FieldPath, jsonPath, logger.FieldError, err.Error()))
			jsonPath = ""
		} else {
			doc = &d
		}
	}

	session := speaker.NewSession(in, out, speaker.WithPreviewLimit(cfg.Transcript.PreviewLimit))
	mapping, err := session.Run(lines, doc)
	if err != nil {
		return err
	}
	if len(mapping) == 0 {
		return nil
	}

	fmt.Fprintln(out, "\nAll speakers processed. Creating named files...")

	namedText := speaker.NamedPath(c.Transcript)
	renamed := speaker.ReplaceInText(string(text), mapping)
	if err := os.WriteFile(namedText, []byte(renamed), 0o644); err != nil {
		return fmt.Errorf("write renamed transcript: %w", err)
	}
	fmt.Fprintf(out, "Created file: %s\n", namedText)

	if doc != nil {
		speaker.ReplaceInDocument(doc, mapping)
		updated, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode renamed JSON: %w", err)
		}
		namedJSON := speaker.NamedPath(jsonPath)
		if err := os.WriteFile(namedJSON, updated, 0o644); err != nil {
			return fmt.Errorf("write renamed JSON: %w", err)
		}
		fmt.Fprintf(out, "Created file: %s\n", namedJSON)
	} else {
		fmt.Fprintln(out, "JSON file not found; skipping JSON copy.")
	}

	fmt.Fprintln(out, "Done.")
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
