package speaker

import (
	"path/filepath"
	"regexp"

	"github.com/kbukum/ytdiarize/transcript"
)

// SpeakerPattern matches anonymous diarization speaker tags: SPEAKER_
// followed by exactly two digits, as a standalone word.
var SpeakerPattern = regexp.MustCompile(`\bSPEAKER_\d{2}\b`)

// ReplaceInText substitutes every standalone speaker tag in text with its
// mapped name. Tags absent from the mapping pass through unchanged. The
// operation is idempotent: mapped names no longer match the tag pattern.
func ReplaceInText(text string, mapping map[string]string) string {
	return SpeakerPattern.ReplaceAllStringFunc(text, func(tag string) string {
		if name, ok := mapping[tag]; ok {
			return name
		}
		return tag
	})
}

// ReplaceInDocument rewrites the speaker field of every segment whose tag
// is present in the mapping, in place. All other document structure,
// including sibling top-level keys and unrelated segment fields, is left
// unchanged.
func ReplaceInDocument(doc *transcript.Document, mapping map[string]string) {
	if doc == nil {
		return
	}
	for _, seg := range doc.Segments {
		if seg == nil {
			continue
		}
		if name, ok := mapping[seg.Speaker]; ok {
			seg.Speaker = name
		}
	}
}

// NamedPath returns the output path for a relabeled copy of path,
// prefixing the filename with NAMED_. Callers honor this convention for
// round-trip compatibility between text and JSON artifacts.
func NamedPath(path string) string {
	dir, file := filepath.Split(path)
	return filepath.Join(dir, "NAMED_"+file)
}
