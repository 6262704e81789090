package export

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple name", "Bruce Thomas", "bruce-thomas"},
		{"punctuation collapsed", "O'Brien & Co.", "o-brien-co"},
		{"already a slug", "jane-doe", "jane-doe"},
		{"tbc marker dropped", "Crypt Gallery TBC", "crypt-gallery"},
		{"interior runs", "The  Royal   Drawing School", "the-royal-drawing-school"},
		{"accents dropped not transliterated", "Café Société", "caf-soci-t"},
		{"empty", "", ""},
		{"only punctuation", "***", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.in)
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Bruce Thomas", "O'Brien & Co.", "Crypt Gallery TBC", "Café Société"}
	for _, in := range inputs {
		once := Slugify(in)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
