package speaker

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	goerrors "github.com/kbukum/ytdiarize/errors"
	"github.com/kbukum/ytdiarize/transcript"
)

// Session drives the interactive speaker-naming flow: for every tag found
// in the transcript, show the most evidential example lines, prompt for a
// name, confirm it, and collect the finished tag→name mapping. Input and
// output are injected so the flow is testable without a terminal.
//
// A session only builds the mapping; applying it (ReplaceInText,
// ReplaceInDocument) and writing artifacts is a single batch operation the
// caller performs afterwards.
type Session struct {
	in    *bufio.Scanner
	out   io.Writer
	limit int
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithPreviewLimit overrides the number of example lines shown per speaker.
func WithPreviewLimit(limit int) SessionOption {
	return func(s *Session) {
		if limit > 0 {
			s.limit = limit
		}
	}
}

// NewSession creates a naming session reading operator input from in and
// writing prompts to out.
func NewSession(in io.Reader, out io.Writer, opts ...SessionOption) *Session {
	s := &Session{
		in:    bufio.NewScanner(in),
		out:   out,
		limit: DefaultPreviewLimit,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run collects a name for every speaker tag appearing in the transcript
// lines, in order of first appearance. doc may be nil when no structured
// JSON is available; previews then fall back to raw transcript lines.
// The returned mapping is empty when the transcript contains no tags.
func (s *Session) Run(textLines []string, doc *transcript.Document) (map[string]string, error) {
	speakerLines, order := CollectSpeakerLines(textLines)
	if len(order) == 0 {
		fmt.Fprintln(s.out, "No SPEAKER_XX tags were found in the provided file.")
		return map[string]string{}, nil
	}

	scored, _ := GroupScoredSegments(doc)

	mapping := make(map[string]string, len(order))
	for _, tag := range order {
		s.printPreview(tag, speakerLines[tag], scored[tag])
		name, err := s.promptName(tag)
		if err != nil {
			return nil, err
		}
		mapping[tag] = name
	}
	return mapping, nil
}

func (s *Session) printPreview(tag string, textLines []string, scored []ScoredSegment) {
	preview := BuildPreviewLines(tag, textLines, scored, s.limit)

	hasScores := false
	for _, seg := range scored {
		if seg.Score != 0 {
			hasScores = true
			break
		}
	}
	if hasScores {
		shown := len(preview)
		if shown > s.limit {
			shown = s.limit
		}
		fmt.Fprintf(s.out, "\nExamples for %s (top %d by score):\n", tag, shown)
	} else {
		fmt.Fprintf(s.out, "\nExamples for %s (up to %d lines):\n", tag, s.limit)
	}

	if len(preview) == 0 {
		fmt.Fprintln(s.out, "No examples found for this speaker.")
	}
	for _, example := range preview {
		fmt.Fprintln(s.out, example)
	}
}

// promptName loops until the operator confirms a non-empty normalized name:
// empty input re-prompts, 'y' confirms, 'e' returns to editing.
func (s *Session) promptName(tag string) (string, error) {
	for {
		fmt.Fprintf(s.out, "\nEnter the real name for %s: ", tag)
		raw, err := s.readLine()
		if err != nil {
			return "", err
		}
		if raw == "" {
			fmt.Fprintln(s.out, "Name cannot be empty. Please try again.")
			continue
		}
		normalized := NormalizeName(raw)
		if normalized == "" {
			fmt.Fprintln(s.out, "Name cannot be empty. Please try again.")
			continue
		}
		fmt.Fprintf(s.out, "Name will be saved as: %s\n", normalized)

		confirmed, err := s.confirm()
		if err != nil {
			return "", err
		}
		if confirmed {
			return normalized, nil
		}
	}
}

func (s *Session) confirm() (bool, error) {
	for {
		fmt.Fprint(s.out, "Enter 'y' to confirm or 'e' to edit: ")
		answer, err := s.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y":
			return true, nil
		case "e":
			return false, nil
		default:
			fmt.Fprintln(s.out, "Please enter either 'y' or 'e'.")
		}
	}
}

func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", goerrors.InvalidInput("input", "input ended before all speakers were named")
	}
	return strings.TrimSpace(s.in.Text()), nil
}
