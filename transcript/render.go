package transcript

import (
	"fmt"
	"strings"
)

// UnknownSpeaker is the label rendered for segments without a speaker tag.
const UnknownSpeaker = "UNKNOWN"

// RenderLines converts a document into printable transcript lines, one per
// segment, in chronological order:
//
//	[00:00:01.000 --> 00:00:03.500] SPEAKER_00: Hello world
//
// Speaker labels are smoothed first; this is a normalization pass applied
// unconditionally. A document without segments renders to no lines.
func RenderLines(doc *Document) []string {
	if doc == nil {
		return nil
	}
	return RenderSegmentLines(doc.Segments, DefaultMaxShortSegment)
}

// RenderSegmentLines smooths and renders a raw segment sequence. The slice
// is mutated: sorted by start time and speaker-smoothed with the given
// short-segment threshold.
func RenderSegmentLines(segments []*Segment, maxShort float64) []string {
	SmoothSpeakerLabels(segments, maxShort)
	lines := make([]string, 0, len(segments))
	for _, seg := range segments {
		if seg.raw != nil {
			continue
		}
		lines = append(lines, renderSegment(seg))
	}
	return lines
}

func renderSegment(seg *Segment) string {
	speaker := seg.Speaker
	if speaker == "" {
		speaker = UnknownSpeaker
	}
	return fmt.Sprintf("[%s --> %s] %s: %s",
		FormatTimestamp(seg.Start),
		FormatTimestamp(seg.End),
		speaker,
		strings.TrimSpace(seg.Text),
	)
}
