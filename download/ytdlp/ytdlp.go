// Package ytdlp implements download.Provider by shelling out to the yt-dlp
// CLI, extracting the best available audio track and converting it to WAV.
package ytdlp

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/kbukum/ytdiarize/download"
	goerrors "github.com/kbukum/ytdiarize/errors"
	"github.com/kbukum/ytdiarize/process"
	"github.com/kbukum/ytdiarize/provider"
)

const (
	// ProviderName is the registered name for the yt-dlp provider.
	ProviderName = "ytdlp"

	defaultBinary = "yt-dlp"

	// userAgent mimics a desktop browser; some extractors reject the default.
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/605.1.15 (KHTML, like Gecko) " +
		"Version/17.0 Safari/605.1.15"

	failureSnippetLines = 50
)

// Config holds configuration for the yt-dlp download provider.
type Config struct {
	// Binary is the yt-dlp executable name or path.
	Binary string `json:"binary" yaml:"binary"`
	// CookiesPath points to a Netscape-format cookies.txt for restricted media.
	CookiesPath string `json:"cookies_path,omitempty" yaml:"cookies_path"`
	// OnLine, if set, receives each subprocess output line for progress logging.
	OnLine func(line string) `json:"-" yaml:"-"`
}

// Provider implements download.Provider using the yt-dlp CLI.
type Provider struct {
	cfg Config
}

// NewProvider creates a new yt-dlp download provider.
func NewProvider(cfg Config) *Provider {
	if cfg.Binary == "" {
		cfg.Binary = defaultBinary
	}
	return &Provider{cfg: cfg}
}

// Factory returns a provider.Factory that creates yt-dlp Provider instances
// from a generic config map.
func Factory() provider.Factory[download.Provider] {
	return func(cfg map[string]any) (download.Provider, error) {
		dc := Config{}
		if v, ok := cfg["binary"].(string); ok {
			dc.Binary = v
		}
		if v, ok := cfg["cookies_path"].(string); ok {
			dc.CookiesPath = v
		}
		if v, ok := cfg["on_line"].(func(string)); ok {
			dc.OnLine = v
		}
		return NewProvider(dc), nil
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable checks if the yt-dlp executable can be resolved.
func (p *Provider) IsAvailable(_ context.Context) bool {
	_, err := exec.LookPath(p.cfg.Binary)
	return err == nil
}

// Download fetches best audio for a URL and converts it to WAV.
func (p *Provider) Download(ctx context.Context, req download.Request) (*download.Result, error) {
	if req.URL == "" {
		return nil, goerrors.InvalidInput("url", "url is required")
	}
	if req.OutputDir == "" {
		return nil, goerrors.InvalidInput("output_dir", "output directory is required")
	}

	result, err := process.Run(ctx, process.Command{
		Binary: p.cfg.Binary,
		Args:   p.buildArgs(req),
		OnLine: p.cfg.OnLine,
	})
	if err != nil {
		appErr := goerrors.DownloadFailed(req.URL).WithCause(err)
		if result != nil {
			appErr = appErr.
				WithDetail("exit_code", result.ExitCode).
				WithDetail("snippet", result.Tail(failureSnippetLines))
		}
		return nil, appErr
	}

	audioPath, err := findWAVOutput(req.OutputDir)
	if err != nil {
		return nil, err
	}

	return &download.Result{
		AudioPath: audioPath,
		Duration:  result.Duration.Seconds(),
	}, nil
}

// buildArgs assembles the yt-dlp command line for a request.
func (p *Provider) buildArgs(req download.Request) []string {
	args := []string{
		"--ignore-config",
		"--no-playlist",
		"-f", "bestaudio/best",
		"-x",
		"--audio-format", "wav",
		"--user-agent", userAgent,
		"--extractor-args", "youtube:player_client=web",
		"-o", filepath.Join(req.OutputDir, "audio.%(ext)s"),
	}
	if p.cfg.CookiesPath != "" {
		args = append(args, "--cookies", p.cfg.CookiesPath)
	}
	return append(args, req.URL)
}

// findWAVOutput locates the WAV file yt-dlp wrote. The output template names
// it audio.wav; any WAV in the directory is accepted as fallback.
func findWAVOutput(outputDir string) (string, error) {
	expected := filepath.Join(outputDir, "audio.wav")
	if info, err := os.Stat(expected); err == nil && !info.IsDir() {
		return expected, nil
	}

	candidates, err := filepath.Glob(filepath.Join(outputDir, "*.wav"))
	if err != nil {
		return "", goerrors.Internal(fmt.Sprintf("scan output directory: %v", err))
	}
	if len(candidates) == 0 {
		return "", goerrors.New(goerrors.ErrCodeDownloadFailed,
			"The download completed but no WAV file was found in the output directory.").
			WithDetail("output_dir", outputDir)
	}
	sort.Strings(candidates)
	return candidates[0], nil
}
