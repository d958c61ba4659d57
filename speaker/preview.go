package speaker

import (
	"fmt"
	"sort"

	"github.com/kbukum/ytdiarize/transcript"
)

// DefaultPreviewLimit is the default number of example lines shown per
// speaker during an interactive naming session.
const DefaultPreviewLimit = 20

// BuildPreviewLines picks the example lines shown to a human reviewer for
// one speaker. When scored segments exist, the top-limit by descending
// score are selected (stable: equal scores keep their relative order) and
// then re-sorted chronologically, so the reviewer sees the most evidential
// examples in natural temporal sequence. Each carries its score to three
// decimals. Without scored segments it falls back to the first limit
// transcript lines verbatim.
func BuildPreviewLines(speaker string, textLines []string, scored []ScoredSegment, limit int) []string {
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}
	if len(scored) == 0 {
		if len(textLines) > limit {
			return textLines[:limit]
		}
		return textLines
	}

	top := make([]ScoredSegment, len(scored))
	copy(top, scored)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Score > top[j].Score })
	if len(top) > limit {
		top = top[:limit]
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Start < top[j].Start })

	previews := make([]string, 0, len(top))
	for _, seg := range top {
		previews = append(previews, fmt.Sprintf("[%s --> %s] %s: %s (score=%.3f)",
			transcript.FormatTimestamp(seg.Start),
			transcript.FormatTimestamp(seg.End),
			speaker,
			seg.Text,
			seg.Score,
		))
	}
	return previews
}
