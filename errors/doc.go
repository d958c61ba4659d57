// Package errors provides unified error handling for ytdiarize.
// It implements structured error types with machine-readable codes,
// retryable detection, and contextual details, so pipeline failures can be
// reported consistently from subprocess collaborators up to the CLI.
package errors
