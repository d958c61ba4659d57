// Package transcript defines the transcript document model produced by
// diarizing speech-to-text backends and the post-processing applied to it:
// timestamp formatting, speaker-label smoothing, and line rendering.
//
// The model is deliberately tolerant. ASR JSON is frequently partial, so
// numeric fields are loosely typed and coerced on read, unknown fields are
// preserved for round-tripping, and no operation in this package returns an
// error for malformed input.
package transcript
