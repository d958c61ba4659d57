package speaker

import (
	"strings"

	"github.com/kbukum/ytdiarize/transcript"
	"github.com/kbukum/ytdiarize/util"
)

// ScoredSegment is an ephemeral view of a segment scored for one speaker,
// used during preview selection.
type ScoredSegment struct {
	Start float64
	End   float64
	Text  string
	Score float64
}

// GroupScoredSegments partitions a document's segments by speaker tag.
// The returned order slice records tags by first appearance in the segment
// sequence (Go maps do not preserve insertion order). Segments without a
// string speaker tag are skipped entirely.
func GroupScoredSegments(doc *transcript.Document) (map[string][]ScoredSegment, []string) {
	grouped := make(map[string][]ScoredSegment)
	var order []string
	if doc == nil {
		return grouped, order
	}
	for _, seg := range doc.Segments {
		if seg == nil || seg.Speaker == "" {
			continue
		}
		if _, seen := grouped[seg.Speaker]; !seen {
			order = append(order, seg.Speaker)
		}
		grouped[seg.Speaker] = append(grouped[seg.Speaker], ScoredSegment{
			Start: util.FloatOr(seg.Start, 0),
			End:   util.FloatOr(seg.End, 0),
			Text:  strings.TrimSpace(seg.Text),
			Score: Score(seg, seg.Speaker),
		})
	}
	return grouped, order
}

// CollectSpeakerLines scans rendered transcript lines for SPEAKER_NN tags
// and records, per tag, the lines it appears in. Used as a fallback when no
// structured JSON is available. The order slice records tags by first
// appearance. A line mentioning a tag more than once is recorded once per
// occurrence.
func CollectSpeakerLines(lines []string) (map[string][]string, []string) {
	speakerLines := make(map[string][]string)
	var order []string
	for _, line := range lines {
		for _, tag := range SpeakerPattern.FindAllString(line, -1) {
			if _, seen := speakerLines[tag]; !seen {
				order = append(order, tag)
			}
			speakerLines[tag] = append(speakerLines[tag], line)
		}
	}
	return speakerLines, order
}
