package speaker

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Анна-Мария Иванова", "ANNA_MARIYA_IVANOVA"},
		{"John Doe", "JOHN_DOE"},
		{"  John   Doe  ", "JOHN_DOE"},
		{"José Martínez", "JOSE_MARTINEZ"},
		{"Щербаков", "SHCHERBAKOV"},
		{"Объект", "OBEKT"},
		{"O'Brien", "O_BRIEN"},
		{"jean-luc", "JEAN_LUC"},
		{"a_b", "A_B"},
		{"42", "42"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tc := range tests {
		if got := NormalizeName(tc.in); got != tc.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeNameIsDeterministic(t *testing.T) {
	in := "Ёлка Ёлкина"
	first := NormalizeName(in)
	for i := 0; i < 3; i++ {
		if got := NormalizeName(in); got != first {
			t.Fatalf("NormalizeName not deterministic: %q vs %q", got, first)
		}
	}
	if first != "ELKA_ELKINA" {
		t.Errorf("NormalizeName(%q) = %q, want ELKA_ELKINA", in, first)
	}
}
