package transcript

import "sort"

// DefaultMaxShortSegment is the default duration threshold, in seconds,
// under which an isolated speaker flip is considered diarization noise.
const DefaultMaxShortSegment = 0.7

// SmoothSpeakerLabels repairs short spurious diarization flips in place.
//
// The slice is first re-sorted by ascending start time. Then every interior
// segment whose duration is at most maxShort, whose neighbors carry the same
// non-empty speaker tag, and whose own tag differs from that shared tag has
// its tag overwritten to match the neighbors. Sequences shorter than three
// segments are left untouched.
//
// The pass runs once, not to a fixed point: a chain of three or more
// consecutive short flipped segments is only partially corrected.
func SmoothSpeakerLabels(segments []*Segment, maxShort float64) {
	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].StartSeconds() < segments[j].StartSeconds()
	})
	if len(segments) < 3 {
		return
	}
	for i := 1; i < len(segments)-1; i++ {
		seg := segments[i]
		if seg.Duration() > maxShort {
			continue
		}
		prev, next := segments[i-1], segments[i+1]
		if prev.Speaker == "" || prev.Speaker != next.Speaker {
			continue
		}
		if seg.Speaker != prev.Speaker {
			seg.Speaker = prev.Speaker
		}
	}
}
