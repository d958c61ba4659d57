package transcript

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDocumentRoundTripPreservesSiblingKeys(t *testing.T) {
	raw := `{"language":"ru","word_segments":[{"word":"hi"}],"segments":[{"start":1,"end":2,"speaker":"SPEAKER_00","text":"hi","avg_logprob":-0.3}]}`
	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	out, err := json.Marshal(&doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got, want map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if err := json.Unmarshal([]byte(raw), &want); err != nil {
		t.Fatalf("reparse original: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip changed document:\ngot  %v\nwant %v", got, want)
	}
}

func TestSegmentSpeakerRewriteSurvivesRoundTrip(t *testing.T) {
	raw := `{"segments":[{"start":1,"end":2,"speaker":"SPEAKER_00","text":"hi","custom":true}]}`
	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	doc.Segments[0].Speaker = "HOST"
	out, err := json.Marshal(&doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("reparse: %v", err)
	}
	segs := got["segments"].([]any)
	seg := segs[0].(map[string]any)
	if seg["speaker"] != "HOST" {
		t.Errorf("speaker = %v, want HOST", seg["speaker"])
	}
	if seg["custom"] != true {
		t.Errorf("custom field lost in round trip: %v", seg)
	}
	if seg["text"] != "hi" {
		t.Errorf("text = %v, want hi", seg["text"])
	}
}

func TestDocumentToleratesNonObjectSegments(t *testing.T) {
	raw := `{"segments":[42,{"start":0,"end":1,"speaker":"SPEAKER_01","text":"ok"}]}`
	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(doc.Segments) != 2 {
		t.Fatalf("got %d segments, want 2", len(doc.Segments))
	}
	out, err := json.Marshal(&doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("reparse: %v", err)
	}
	segs := got["segments"].([]any)
	if segs[0] != float64(42) {
		t.Errorf("non-object entry not preserved: %v", segs[0])
	}
}

func TestSegmentDecodesConfidenceFields(t *testing.T) {
	raw := `{"start":0,"end":1,"speaker":"SPEAKER_01","text":"ok",
		"speaker_probs":{"SPEAKER_01":0.9},
		"words":[{"word":"ok","prob":0.8,"speaker":"SPEAKER_01"}]}`
	var seg Segment
	if err := json.Unmarshal([]byte(raw), &seg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if seg.SpeakerProbs["SPEAKER_01"] != 0.9 {
		t.Errorf("speaker_probs = %v", seg.SpeakerProbs)
	}
	if len(seg.Words) != 1 || seg.Words[0].Prob != 0.8 {
		t.Errorf("words = %+v", seg.Words)
	}
}

func TestSegmentDuration(t *testing.T) {
	tests := []struct {
		name string
		seg  *Segment
		want float64
	}{
		{"normal", &Segment{Start: 1.0, End: 3.5}, 2.5},
		{"end before start floors to zero", &Segment{Start: 2.0, End: 1.5}, 0},
		{"missing times", &Segment{}, 0},
		{"string times coerce", &Segment{Start: "1.0", End: "2.0"}, 1.0},
	}
	for _, tc := range tests {
		if got := tc.seg.Duration(); got != tc.want {
			t.Errorf("%s: Duration() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
