// Package speaker implements speaker-identity reconciliation for diarized
// transcripts: confidence scoring of segments, grouping by anonymous
// SPEAKER_NN tags, confidence-ranked preview selection, human-name
// normalization, and relabeling of tags to confirmed names across both the
// plain-text transcript and the structured JSON document.
//
// The interactive naming session is modeled with injectable input/output
// ports so the mapping construction logic is testable without a terminal.
package speaker
