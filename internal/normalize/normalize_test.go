package normalize

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "Moby Dick", "Moby Dick"},
		{"trims", "  Moby Dick  ", "Moby Dick"},
		{"collapses spaces", "Moby   Dick", "Moby Dick"},
		{"non-breaking space", "Moby\u00a0Dick", "Moby Dick"},
		{"newlines", "Alice's Adventures\nin Wonderland", "Alice's Adventures in Wonderland"},
		{"decomposed accent", "Mise\u0301rables", "Mis\u00e9rables"},
		{"already composed", "Mis\u00e9rables", "Mis\u00e9rables"},
		{"whitespace only", " \t\n", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Text(tt.input)
			if result != tt.expected {
				t.Errorf("Text(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
