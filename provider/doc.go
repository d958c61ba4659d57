// Package provider defines the base interface and registry for pluggable
// external-collaborator backends (transcription engines, audio
// downloaders). Backends register a factory under a name; callers create
// or look up instances at runtime.
package provider
