package transcript

import "testing"

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"zero", 0.0, "00:00:00.000"},
		{"basic", 1.234, "00:00:01.234"},
		{"nil", nil, "00:00:00.000"},
		{"negative", -5.0, "00:00:00.000"},
		{"rounds to nearest ms", 1.2345, "00:00:01.235"},
		{"hours", 3661.5, "01:01:01.500"},
		{"numeric string", "2.5", "00:00:02.500"},
		{"garbage string", "soon", "00:00:00.000"},
		{"int", 90, "00:01:30.000"},
	}
	for _, tc := range tests {
		if got := FormatTimestamp(tc.in); got != tc.want {
			t.Errorf("%s: FormatTimestamp(%v) = %q, want %q", tc.name, tc.in, got, tc.want)
		}
	}
}
