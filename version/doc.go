// Package version provides build version information embedding for
// the ytdiarize binary.
//
// Version, git commit, branch, and build time are set at compile time
// via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/ytdiarize/version.Version=1.0.0"
package version
