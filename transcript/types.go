package transcript

import (
	"encoding/json"

	"github.com/kbukum/ytdiarize/util"
)

// Word is a single word-level alignment entry inside a segment.
// Confidence fields are loosely typed; use util.Float to read them.
type Word struct {
	Word  string `json:"word,omitempty"`
	Start any    `json:"start,omitempty"`
	End   any    `json:"end,omitempty"`
	// Speaker is the word-level speaker tag. It may diverge from the
	// parent segment's tag. nil means no tag was present.
	Speaker     any `json:"speaker,omitempty"`
	SpeakerProb any `json:"speaker_prob,omitempty"`
	Prob        any `json:"prob,omitempty"`
	Probability any `json:"probability,omitempty"`
	Score       any `json:"score,omitempty"`
	Confidence  any `json:"confidence,omitempty"`
}

// Segment is one span of recognized speech.
//
// The typed fields are a decoded view of the underlying JSON object. The
// only field the post-processing pipeline ever writes back is Speaker
// (smoothing and relabeling); everything else round-trips from the raw
// object untouched.
type Segment struct {
	Start        any
	End          any
	Text         string
	Speaker      string
	Words        []*Word
	SpeakerProb  any
	SpeakerProbs map[string]any
	Score        any
	Confidence   any
	AvgLogprob   any
	NoSpeechProb any

	// extra holds every field of the original JSON object (including the
	// decoded ones above) so re-encoding preserves unknown structure.
	extra map[string]json.RawMessage
	// raw holds the original bytes for entries that were not JSON objects.
	// Such entries pass through rendering and grouping untouched.
	raw json.RawMessage
}

// StartSeconds returns the segment start in seconds, or 0 when missing.
func (s *Segment) StartSeconds() float64 { return util.FloatOr(s.Start, 0) }

// EndSeconds returns the segment end in seconds, or 0 when missing.
func (s *Segment) EndSeconds() float64 { return util.FloatOr(s.End, 0) }

// Duration returns end−start in seconds, floored at zero. Producers do not
// guarantee end ≥ start.
func (s *Segment) Duration() float64 {
	d := s.EndSeconds() - s.StartSeconds()
	if d < 0 {
		return 0
	}
	return d
}

// UnmarshalJSON decodes a segment, tolerating non-object entries by keeping
// their raw bytes for round-tripping.
func (s *Segment) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		s.raw = append(json.RawMessage(nil), data...)
		return nil
	}
	s.extra = fields

	decodeAny := func(key string) any {
		rawField, ok := fields[key]
		if !ok {
			return nil
		}
		var v any
		if err := json.Unmarshal(rawField, &v); err != nil {
			return nil
		}
		return v
	}

	s.Start = decodeAny("start")
	s.End = decodeAny("end")
	s.SpeakerProb = decodeAny("speaker_prob")
	s.Score = decodeAny("score")
	s.Confidence = decodeAny("confidence")
	s.AvgLogprob = decodeAny("avg_logprob")
	s.NoSpeechProb = decodeAny("no_speech_prob")

	if text, ok := decodeAny("text").(string); ok {
		s.Text = text
	}
	if speaker, ok := decodeAny("speaker").(string); ok {
		s.Speaker = speaker
	}
	if probs, ok := decodeAny("speaker_probs").(map[string]any); ok {
		s.SpeakerProbs = probs
	}
	if rawWords, ok := fields["words"]; ok {
		var words []*Word
		if err := json.Unmarshal(rawWords, &words); err == nil {
			s.Words = words
		}
	}
	return nil
}

// MarshalJSON re-encodes the segment from its original fields, writing back
// only the (possibly rewritten) speaker tag.
func (s *Segment) MarshalJSON() ([]byte, error) {
	if s.raw != nil {
		return s.raw, nil
	}
	out := make(map[string]json.RawMessage, len(s.extra)+6)
	for k, v := range s.extra {
		out[k] = v
	}
	setField := func(key string, v any) error {
		encoded, err := json.Marshal(v)
		if err != nil {
			return err
		}
		out[key] = encoded
		return nil
	}
	// Segments built in code (not decoded from JSON) have no extra map;
	// encode their typed fields so they still serialize sensibly.
	if s.extra == nil {
		if s.Start != nil {
			if err := setField("start", s.Start); err != nil {
				return nil, err
			}
		}
		if s.End != nil {
			if err := setField("end", s.End); err != nil {
				return nil, err
			}
		}
		if err := setField("text", s.Text); err != nil {
			return nil, err
		}
	}
	if s.Speaker != "" {
		if err := setField("speaker", s.Speaker); err != nil {
			return nil, err
		}
	}
	return json.Marshal(out)
}

// Document is a transcript document: a segments array plus arbitrary
// sibling keys that are preserved unmodified.
type Document struct {
	Segments []*Segment
	// Extra holds every top-level key other than "segments".
	Extra map[string]json.RawMessage

	segmentsPresent bool
}

// UnmarshalJSON decodes a document. A missing or non-array "segments" key
// degrades to an empty segment list.
func (d *Document) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	d.Extra = make(map[string]json.RawMessage, len(fields))
	for k, v := range fields {
		if k == "segments" {
			continue
		}
		d.Extra[k] = v
	}
	d.Segments = nil
	if rawSegments, ok := fields["segments"]; ok {
		d.segmentsPresent = true
		var segments []*Segment
		if err := json.Unmarshal(rawSegments, &segments); err == nil {
			d.Segments = segments
		}
	}
	return nil
}

// MarshalJSON re-encodes the document, leaving sibling keys untouched.
func (d *Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(d.Extra)+1)
	for k, v := range d.Extra {
		out[k] = v
	}
	if d.segmentsPresent || len(d.Segments) > 0 {
		segments := d.Segments
		if segments == nil {
			segments = []*Segment{}
		}
		encoded, err := json.Marshal(segments)
		if err != nil {
			return nil, err
		}
		out["segments"] = encoded
	}
	return json.Marshal(out)
}
