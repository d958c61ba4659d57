// Package util provides small generic helpers shared across ytdiarize
// packages.
//
// The most important piece is Float, the tolerant numeric coercion used
// everywhere transcription JSON is read: ASR and diarization output is
// frequently partial, so missing or malformed values degrade to
// "not a number" instead of failing.
package util
