// Package transcription defines the provider interface and common types
// for diarized speech-to-text backends.
//
// It follows the provider pattern with a pluggable registry for
// runtime-selectable backends.
//
// # Backends
//
//   - transcription/whisperx: WhisperX CLI with pyannote diarization
//
// # Usage
//
//	reg := transcription.NewRegistry()
//	reg.RegisterFactory(whisperx.ProviderName, whisperx.Factory())
//	p, err := reg.Create(whisperx.ProviderName, cfg)
//	result, err := p.Transcribe(ctx, req)
package transcription
