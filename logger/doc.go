// Package logger provides structured logging for ytdiarize using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "console"
//
// # Usage
//
//	log := logger.NewDefault("ytdiarize").WithComponent("pipeline")
//	log.Info("transcription finished", logger.Fields("segments", 42))
package logger
