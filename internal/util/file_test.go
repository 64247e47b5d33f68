package util

import (
	"strings"
	"testing"
)

func TestSanitizeImageName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain name", "circuit.png", "circuit.png"},
		{"nested path", "images/circuit.png", "circuit.png"},
		{"traversal", "../../etc/passwd", "passwd"},
		{"windows separators", "images\\circuit.png", "circuit.png"},
		{"absolute path", "/var/tmp/diagram.jpg", "diagram.jpg"},
		{"empty", "", ""},
		{"dot only", ".", ""},
		{"slash only", "/", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeImageName(tt.in); got != tt.want {
				t.Errorf("SanitizeImageName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStoredImageName(t *testing.T) {
	got := StoredImageName("images/Circuit.PNG")
	if !strings.HasPrefix(got, "questions/") {
		t.Errorf("StoredImageName = %q, want questions/ prefix", got)
	}
	if !strings.HasSuffix(got, ".png") {
		t.Errorf("StoredImageName = %q, want lowercased .png suffix", got)
	}

	other := StoredImageName("images/Circuit.PNG")
	if got == other {
		t.Errorf("StoredImageName produced colliding names %q", got)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{33.333333, 33.33},
		{0.125, 0.13},
		{66.666666, 66.67},
		{100, 100},
	}

	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
