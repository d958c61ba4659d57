package speaker

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/kbukum/ytdiarize/transcript"
)

func TestGroupScoredSegments(t *testing.T) {
	raw := `{"segments":[
		{"start":0,"end":2,"speaker":"SPEAKER_01","text":" hello ","speaker_prob":0.9},
		{"start":2,"end":4,"speaker":"SPEAKER_02","text":"hi","speaker_prob":0.8},
		{"start":4,"end":6,"speaker":"SPEAKER_01","text":"again","speaker_prob":0.7},
		{"start":6,"end":8,"text":"untagged"}
	]}`
	var doc transcript.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	grouped, order := GroupScoredSegments(&doc)
	if want := []string{"SPEAKER_01", "SPEAKER_02"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
	if len(grouped["SPEAKER_01"]) != 2 {
		t.Fatalf("SPEAKER_01 has %d segments, want 2", len(grouped["SPEAKER_01"]))
	}
	first := grouped["SPEAKER_01"][0]
	if first.Text != "hello" {
		t.Errorf("text = %q, want trimmed %q", first.Text, "hello")
	}
	if first.Score != 0.9 {
		t.Errorf("score = %v, want 0.9", first.Score)
	}
	if len(grouped) != 2 {
		t.Errorf("untagged segment must not be grouped: %v", grouped)
	}
}

func TestGroupScoredSegmentsNilDocument(t *testing.T) {
	grouped, order := GroupScoredSegments(nil)
	if len(grouped) != 0 || len(order) != 0 {
		t.Errorf("got %v %v, want empty", grouped, order)
	}
}

func TestCollectSpeakerLines(t *testing.T) {
	lines := []string{
		"[00:00:01.000 --> 00:00:03.500] SPEAKER_01: Hello",
		"[00:00:04.000 --> 00:00:05.500] SPEAKER_02: Hi",
		"[00:00:06.000 --> 00:00:07.500] SPEAKER_01: Welcome",
	}
	speakerLines, order := CollectSpeakerLines(lines)
	if want := []string{"SPEAKER_01", "SPEAKER_02"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
	if want := []string{lines[0], lines[2]}; !reflect.DeepEqual(speakerLines["SPEAKER_01"], want) {
		t.Errorf("SPEAKER_01 lines = %v, want %v", speakerLines["SPEAKER_01"], want)
	}
	if want := []string{lines[1]}; !reflect.DeepEqual(speakerLines["SPEAKER_02"], want) {
		t.Errorf("SPEAKER_02 lines = %v, want %v", speakerLines["SPEAKER_02"], want)
	}
}

func TestCollectSpeakerLinesNoTags(t *testing.T) {
	speakerLines, order := CollectSpeakerLines([]string{"no tags here", "still none"})
	if len(speakerLines) != 0 || len(order) != 0 {
		t.Errorf("got %v %v, want empty", speakerLines, order)
	}
}
