// Package download defines the provider interface for acquiring audio from
// remote sources.
//
// # Backends
//
//   - download/ytdlp: yt-dlp CLI extracting best audio to WAV
package download
