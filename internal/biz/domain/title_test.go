package domain

import "testing"

func TestTitleSet_FirstSeenCasingWins(t *testing.T) {
	s := NewTitleSet("Дюна", "ДЮНА", "Barbie")
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	canonical, ok := s.Canonical("дюна")
	if !ok || canonical != "Дюна" {
		t.Errorf("Canonical() = (%q, %v), want (Дюна, true)", canonical, ok)
	}
}

func TestTitleSet_RemoveCaseInsensitive(t *testing.T) {
	s := NewTitleSet("Dune", "Barbie")
	if !s.Remove("DUNE") {
		t.Fatal("Remove() = false, want true")
	}
	if s.Has("dune") {
		t.Error("removed title still present")
	}
	got := s.Titles()
	if len(got) != 1 || got[0] != "Barbie" {
		t.Errorf("Titles() = %v, want [Barbie]", got)
	}
}

func TestTitleSet_PreservesInsertionOrder(t *testing.T) {
	s := NewTitleSet("C", "a", "B")
	got := s.Titles()
	want := []string{"C", "a", "B"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Titles() = %v, want %v", got, want)
		}
	}
}

func TestTitleKey_TrimsAndLowers(t *testing.T) {
	if TitleKey("  Дюна 2  ") != "дюна 2" {
		t.Errorf("TitleKey() = %q", TitleKey("  Дюна 2  "))
	}
}

func TestValidRating(t *testing.T) {
	for _, tc := range []struct {
		rating int
		want   bool
	}{
		{0, false}, {1, true}, {10, true}, {11, false}, {-3, false},
	} {
		if got := ValidRating(tc.rating); got != tc.want {
			t.Errorf("ValidRating(%d) = %v, want %v", tc.rating, got, tc.want)
		}
	}
}
