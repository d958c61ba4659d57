package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for environment variable overrides.
const envPrefix = "YTDIARIZE"

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
	ReadFile(path string) ([]byte, error)
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

func (rfs *RealFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct config file path (optional)
	EnvFile    string // Direct .env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// Load loads the application configuration. It reads config.yml and .env
// from standard locations when present, binds YTDIARIZE_* environment
// variables, applies defaults, resolves the Hugging Face token, and
// validates the result.
func Load(opts ...LoaderOption) (*App, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	configFile := lc.ConfigFile
	if configFile == "" {
		configFile = findFirst(lc.FileSystem, "./config.yml", "./config/config.yml", "../config.yml")
	}
	envFile := lc.EnvFile
	if envFile == "" {
		envFile = findFirst(lc.FileSystem, "./.env", "../.env")
	}

	// .env first so AutomaticEnv sees its variables
	if envFile != "" && lc.FileSystem.Exists(envFile) {
		if err := lc.FileSystem.LoadEnv(envFile); err != nil {
			fmt.Fprintf(os.Stderr, "[config] warning: failed to load .env file %s: %v\n", envFile, err)
		}
	}

	v := viper.New()
	if configFile != "" && lc.FileSystem.Exists(configFile) {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindKnownKeys(v)

	var cfg App
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.ApplyDefaults()
	resolveHFToken(lc.FileSystem, &cfg.WhisperX)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindKnownKeys registers every config key with Viper so values provided
// only through the environment still reach Unmarshal.
func bindKnownKeys(v *viper.Viper) {
	keys := []string{
		"name",
		"logging.level", "logging.format", "logging.output",
		"logging.no_color", "logging.timestamp", "logging.caller",
		"workspace.root", "workspace.keep",
		"transcript.preview_limit", "transcript.max_short_segment",
		"whisperx.binary", "whisperx.model", "whisperx.device",
		"whisperx.compute_type", "whisperx.batch_size", "whisperx.beam_size",
		"whisperx.threads", "whisperx.hf_token", "whisperx.hf_token_file",
		"whisperx.language", "whisperx.min_speakers", "whisperx.max_speakers",
		"whisperx.initial_prompt",
		"download.binary", "download.cookies_path",
	}
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// resolveHFToken fills WhisperXConfig.HFToken from the HF_TOKEN environment
// variable or a token file when the config itself does not carry one.
func resolveHFToken(fs FileSystem, cfg *WhisperXConfig) {
	if cfg.HFToken != "" {
		return
	}
	if tok := strings.TrimSpace(os.Getenv("HF_TOKEN")); tok != "" {
		cfg.HFToken = tok
		return
	}
	if cfg.HFTokenFile != "" && fs.Exists(cfg.HFTokenFile) {
		if data, err := fs.ReadFile(cfg.HFTokenFile); err == nil {
			cfg.HFToken = strings.TrimSpace(string(data))
		}
	}
}

// findFirst returns the first existing path from the candidates, or "".
func findFirst(fs FileSystem, candidates ...string) string {
	for _, path := range candidates {
		if fs.Exists(path) {
			return path
		}
	}
	return ""
}
