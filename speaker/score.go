package speaker

import (
	"math"

	"github.com/kbukum/ytdiarize/transcript"
	"github.com/kbukum/ytdiarize/util"
)

// Signal extracts one confidence signal for a (segment, speaker) pair.
// It reports whether the signal was applicable.
type Signal func(seg *transcript.Segment, speaker string) (float64, bool)

// signals is the fixed priority chain evaluated by Score. Ordering is a
// contract: segment-level speaker probabilities beat generic segment
// scores, which beat word-level means, which beat ASR-level proxies, with
// segment duration as the last informative fallback.
var signals = []Signal{
	segmentSpeakerProb,
	segmentSpeakerProbs,
	segmentScore,
	segmentConfidence,
	wordLevelMean,
	avgLogprobProxy,
	noSpeechProxy,
	durationFallback,
}

// Score assigns a confidence score to a (segment, speaker) pair so that
// segments from the same speaker can be ranked. It is total: malformed or
// missing fields fall through to the next signal, and a segment with no
// usable signal scores 0.0 to keep sorting deterministic.
func Score(seg *transcript.Segment, speaker string) float64 {
	for _, signal := range signals {
		if v, ok := signal(seg, speaker); ok {
			return v
		}
	}
	return 0.0
}

func segmentSpeakerProb(seg *transcript.Segment, _ string) (float64, bool) {
	return util.Float(seg.SpeakerProb)
}

func segmentSpeakerProbs(seg *transcript.Segment, speaker string) (float64, bool) {
	if seg.SpeakerProbs == nil {
		return 0, false
	}
	return util.Float(seg.SpeakerProbs[speaker])
}

func segmentScore(seg *transcript.Segment, _ string) (float64, bool) {
	return util.Float(seg.Score)
}

func segmentConfidence(seg *transcript.Segment, _ string) (float64, bool) {
	return util.Float(seg.Confidence)
}

// wordLevelMean averages word-level confidence values across words that are
// untagged or tagged with the target speaker. Each word contributes the
// first numeric value among speaker_prob, prob, probability, score, and
// confidence.
func wordLevelMean(seg *transcript.Segment, speaker string) (float64, bool) {
	var sum float64
	var count int
	for _, word := range seg.Words {
		if word == nil {
			continue
		}
		if word.Speaker != nil {
			tag, ok := word.Speaker.(string)
			if !ok || tag != speaker {
				continue
			}
		}
		for _, candidate := range []any{word.SpeakerProb, word.Prob, word.Probability, word.Score, word.Confidence} {
			if v, ok := util.Float(candidate); ok {
				sum += v
				count++
				break
			}
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// avgLogprobProxy converts the ASR average log-probability into a rough
// [0, 1] proxy. Overflow on extreme inputs clamps to 0.
func avgLogprobProxy(seg *transcript.Segment, _ string) (float64, bool) {
	f, ok := util.Float(seg.AvgLogprob)
	if !ok {
		return 0, false
	}
	v := math.Exp(f)
	if math.IsInf(v, 1) || math.IsNaN(v) {
		v = 0
	}
	return util.Clamp01(v), true
}

// noSpeechProxy treats a low no-speech probability as confidence that the
// segment carries real speech.
func noSpeechProxy(seg *transcript.Segment, _ string) (float64, bool) {
	f, ok := util.Float(seg.NoSpeechProb)
	if !ok {
		return 0, false
	}
	return util.Clamp01(1 - f), true
}

// durationFallback ranks by segment length: longer segments tend to carry
// more evidence. Applicable only when both bounds are numeric and end is
// strictly after start.
func durationFallback(seg *transcript.Segment, _ string) (float64, bool) {
	start, okStart := util.Float(seg.Start)
	end, okEnd := util.Float(seg.End)
	if !okStart || !okEnd || end <= start {
		return 0, false
	}
	return end - start, true
}
