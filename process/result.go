package process

import (
	"strings"
	"time"
)

// Result holds the output and status of a completed subprocess.
type Result struct {
	// Stdout is the captured standard output.
	Stdout []byte
	// Stderr is the captured standard error.
	Stderr []byte
	// ExitCode is the process exit code. -1 if the process was killed.
	ExitCode int
	// Duration is how long the process ran.
	Duration time.Duration
}

// Lines returns the combined output split into non-empty lines, stdout
// first. Long-running CLI collaborators interleave progress on both
// streams; failure reporting wants them together.
func (r *Result) Lines() []string {
	var lines []string
	for _, chunk := range [][]byte{r.Stdout, r.Stderr} {
		for _, line := range strings.Split(string(chunk), "\n") {
			if trimmed := strings.TrimRight(line, "\r"); trimmed != "" {
				lines = append(lines, trimmed)
			}
		}
	}
	return lines
}

// Tail returns the last n output lines joined by newlines, for error
// snippets when a collaborator fails.
func (r *Result) Tail(n int) string {
	lines := r.Lines()
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
