package bot

import "testing"

func TestParseWatched(t *testing.T) {
	tests := []struct {
		in        string
		title     string
		rating    int
		hasRating bool
	}{
		{"Дюна, 8", "Дюна", 8, true},
		{"Дюна, 8/10", "Дюна", 8, true},
		{"Дюна 8/10", "Дюна", 8, true},
		{"Дюна", "Дюна", 0, false},
		// a trailing number without comma or /10 is part of the title
		{"Дюна 2", "Дюна 2", 0, false},
		{"Дюна 2, 7", "Дюна 2", 7, true},
		{"", "", 0, false},
		{"  Барби , 10  ", "Барби", 10, true},
	}
	for _, tc := range tests {
		title, rating, hasRating := parseWatched(tc.in)
		if title != tc.title || rating != tc.rating || hasRating != tc.hasRating {
			t.Errorf("parseWatched(%q) = (%q, %d, %v), want (%q, %d, %v)",
				tc.in, title, rating, hasRating, tc.title, tc.rating, tc.hasRating)
		}
	}
}

func TestIsPickCommand(t *testing.T) {
	for _, in := range []string{"что смотрим", "что смотрим?", "🎲 что смотрим"} {
		if !isPickCommand(in) {
			t.Errorf("isPickCommand(%q) = false, want true", in)
		}
	}
	if isPickCommand("что посмотреть потом") {
		t.Error("isPickCommand matched an unrelated message")
	}
}
