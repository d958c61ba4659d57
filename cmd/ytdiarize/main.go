// Command ytdiarize downloads a video's audio, produces a diarized
// transcript with WhisperX, and interactively replaces anonymous speaker
// tags with real names.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/kbukum/ytdiarize/config"
	"github.com/kbukum/ytdiarize/logger"
	"github.com/kbukum/ytdiarize/version"
)

var cli struct {
	Config  string           `help:"Path to a config.yml file." type:"path"`
	Debug   bool             `help:"Enable debug logging."`
	Version kong.VersionFlag `help:"Print version information and quit."`

	Transcribe TranscribeCmd `cmd:"" help:"Download a URL's audio and produce a diarized transcript."`
	Rename     RenameCmd     `cmd:"" help:"Interactively replace SPEAKER_XX tags with real names."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("ytdiarize"),
		kong.Description("Produce diarized transcripts from online media and reconcile speaker identities."),
		kong.UsageOnError(),
		kong.Vars{"version": version.GetFullVersion()},
	)

	var opts []config.LoaderOption
	if cli.Config != "" {
		opts = append(opts, config.WithConfigFile(cli.Config))
	}
	cfg, err := config.Load(opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}
	if cli.Debug {
		cfg.Logging.Level = "debug"
	}
	log := logger.New(&cfg.Logging, cfg.Name)

	if err := ctx.Run(cfg, log); err != nil {
		log.Error("command failed", logger.Fields(logger.FieldError, err.Error()))
		os.Exit(1)
	}
}
