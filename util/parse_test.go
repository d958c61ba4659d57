package util

import (
	"encoding/json"
	"math"
	"testing"
)

func TestFloat(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{"float64", 0.9, 0.9, true},
		{"int", 3, 3.0, true},
		{"numeric string", "0.25", 0.25, true},
		{"json number", json.Number("1.5"), 1.5, true},
		{"nil", nil, 0, false},
		{"garbage string", "high", 0, false},
		{"bool", true, 0, false},
		{"map", map[string]any{}, 0, false},
		{"nan", math.NaN(), 0, false},
		{"inf", math.Inf(1), 0, false},
	}
	for _, tc := range tests {
		got, ok := Float(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("%s: Float(%v) = (%v, %v), want (%v, %v)", tc.name, tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFloatOr(t *testing.T) {
	if got := FloatOr(nil, 0.5); got != 0.5 {
		t.Errorf("FloatOr(nil, 0.5) = %v, want 0.5", got)
	}
	if got := FloatOr(2.0, 0.5); got != 2.0 {
		t.Errorf("FloatOr(2.0, 0.5) = %v, want 2.0", got)
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.3, 0.3},
		{1, 1},
		{42.0, 1},
	}
	for _, tc := range tests {
		if got := Clamp01(tc.in); got != tc.want {
			t.Errorf("Clamp01(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "", "hello", "world"); got != "hello" {
		t.Errorf("expected 'hello', got %q", got)
	}
	if got := Coalesce(0, 0, 42); got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if got := Coalesce("", ""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}
