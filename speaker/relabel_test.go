package speaker

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kbukum/ytdiarize/transcript"
)

func TestReplaceInTextSwapsAllInstances(t *testing.T) {
	text := strings.Join([]string{
		"[00:00:01.000 --> 00:00:03.500] SPEAKER_01: Hello",
		"[00:00:04.000 --> 00:00:05.500] SPEAKER_02: Hi",
		"[00:00:06.000 --> 00:00:07.500] SPEAKER_01: Welcome",
	}, "\n")
	mapping := map[string]string{"SPEAKER_01": "HOST", "SPEAKER_02": "GUEST"}

	result := ReplaceInText(text, mapping)
	if strings.Contains(result, "SPEAKER_01") || strings.Contains(result, "SPEAKER_02") {
		t.Errorf("tags remain after replacement:\n%s", result)
	}
	if !strings.Contains(result, "HOST") || !strings.Contains(result, "GUEST") {
		t.Errorf("mapped names missing:\n%s", result)
	}
}

func TestReplaceInTextUnmappedTagsPassThrough(t *testing.T) {
	text := "SPEAKER_01 said hi to SPEAKER_03"
	result := ReplaceInText(text, map[string]string{"SPEAKER_01": "HOST"})
	if !strings.Contains(result, "SPEAKER_03") {
		t.Errorf("unmapped tag must pass through, got %q", result)
	}
}

func TestReplaceInTextRequiresStandaloneTags(t *testing.T) {
	text := "SPEAKER_012 and XSPEAKER_01"
	result := ReplaceInText(text, map[string]string{"SPEAKER_01": "HOST"})
	if result != text {
		t.Errorf("embedded tags must not be replaced, got %q", result)
	}
}

func TestReplaceInTextIdempotent(t *testing.T) {
	mapping := map[string]string{"SPEAKER_01": "HOST"}
	once := ReplaceInText("SPEAKER_01: hi", mapping)
	twice := ReplaceInText(once, mapping)
	if once != twice {
		t.Errorf("re-applying mapping changed output: %q vs %q", once, twice)
	}
}

func TestReplaceInDocumentTouchesOnlyMappedSpeakers(t *testing.T) {
	raw := `{"segments":[
		{"speaker":"SPEAKER_01","text":"Hello"},
		{"speaker":"SPEAKER_02","text":"Hi"},
		{"speaker":"SPEAKER_03","text":"Hey"}
	],"other":"keep"}`
	var doc transcript.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	ReplaceInDocument(&doc, map[string]string{"SPEAKER_01": "HOST", "SPEAKER_02": "GUEST"})

	if doc.Segments[0].Speaker != "HOST" {
		t.Errorf("segment 0 speaker = %q, want HOST", doc.Segments[0].Speaker)
	}
	if doc.Segments[1].Speaker != "GUEST" {
		t.Errorf("segment 1 speaker = %q, want GUEST", doc.Segments[1].Speaker)
	}
	if doc.Segments[2].Speaker != "SPEAKER_03" {
		t.Errorf("segment 2 speaker = %q, want unchanged SPEAKER_03", doc.Segments[2].Speaker)
	}

	out, err := json.Marshal(&doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if got["other"] != "keep" {
		t.Errorf("sibling key changed: %v", got["other"])
	}
}

func TestReplaceInDocumentIdempotent(t *testing.T) {
	doc := &transcript.Document{Segments: []*transcript.Segment{
		{Speaker: "SPEAKER_01", Text: "hi"},
	}}
	mapping := map[string]string{"SPEAKER_01": "HOST"}
	ReplaceInDocument(doc, mapping)
	ReplaceInDocument(doc, mapping)
	if doc.Segments[0].Speaker != "HOST" {
		t.Errorf("speaker = %q, want HOST", doc.Segments[0].Speaker)
	}
}

func TestNamedPath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{filepath.Join("out", "transcript.txt"), filepath.Join("out", "NAMED_transcript.txt")},
		{"transcript.json", "NAMED_transcript.json"},
	}
	for _, tc := range tests {
		if got := NamedPath(tc.in); got != tc.want {
			t.Errorf("NamedPath(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
