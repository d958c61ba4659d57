// Package config provides configuration loading and validation for the
// ytdiarize CLI.
//
// It uses Viper to load configuration from an optional config.yml and
// environment variables, with godotenv picking up a .env file when present.
//
// Environment variables override file values using the YTDIARIZE_ prefix
// with underscore-separated paths (e.g., YTDIARIZE_WHISPERX_MODEL).
package config
