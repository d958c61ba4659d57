// Package pipeline orchestrates a full diarization run: download audio,
// transcribe with speaker diarization, render the transcript, and save the
// final outputs.
//
// Each run works in its own workspace directory named after a generated run
// ID. The workspace is removed when the run finishes unless configured to be
// kept for inspection.
package pipeline
