package usecase

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"moviebot/internal/biz/domain"
	"moviebot/internal/biz/repo"
)

type selectionFixture struct {
	users    *mockUserRepo
	wishlist *mockWishlistRepo
	history  *mockHistoryRepo
	state    *mockStateRepo
	uc       *SelectionUsecase
}

func newSelectionFixture() *selectionFixture {
	f := &selectionFixture{
		users:    &mockUserRepo{},
		wishlist: &mockWishlistRepo{},
		history:  &mockHistoryRepo{},
		state:    newMockStateRepo(),
	}
	f.uc = NewSelectionUsecase(f.wishlist, f.history, f.state, f.users, rand.New(rand.NewSource(1)))
	return f
}

func (f *selectionFixture) addUser(t *testing.T, telegramID int64, name string) *domain.User {
	t.Helper()
	u, err := f.users.Create(context.Background(), telegramID, name)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func (f *selectionFixture) addMovies(t *testing.T, userID int64, titles ...string) {
	t.Helper()
	for _, title := range titles {
		if _, err := f.wishlist.Add(context.Background(), userID, title); err != nil {
			t.Fatalf("add movie: %v", err)
		}
	}
}

func (f *selectionFixture) markWatched(t *testing.T, title string) {
	t.Helper()
	if _, err := f.history.Add(context.Background(), title, 8, time.Now(), 1); err != nil {
		t.Fatalf("add history: %v", err)
	}
}

func TestPick_AllListsEmpty(t *testing.T) {
	f := newSelectionFixture()
	f.addUser(t, 100, "Alice")

	result, err := f.uc.Pick(context.Background(), 100)
	if err != nil {
		t.Fatalf("Pick() error: %v", err)
	}
	if !result.Empty() {
		t.Fatalf("expected empty result, got movie %q", result.Movie)
	}
	if result.EmptyReason != EmptyAllEmpty {
		t.Errorf("EmptyReason = %q, want %q", result.EmptyReason, EmptyAllEmpty)
	}
}

func TestPick_AllWatched(t *testing.T) {
	f := newSelectionFixture()
	alice := f.addUser(t, 100, "Alice")
	f.addMovies(t, alice.ID, "Dune")
	f.markWatched(t, "DUNE") // different casing still excludes

	result, err := f.uc.Pick(context.Background(), 100)
	if err != nil {
		t.Fatalf("Pick() error: %v", err)
	}
	if result.EmptyReason != EmptyAllWatched {
		t.Errorf("EmptyReason = %q, want %q", result.EmptyReason, EmptyAllWatched)
	}
}

func TestPick_NeverReturnsWatched(t *testing.T) {
	f := newSelectionFixture()
	alice := f.addUser(t, 100, "Alice")
	f.addMovies(t, alice.ID, "Dune", "Barbie", "Oppenheimer")
	f.markWatched(t, "Dune")

	for i := 0; i < 50; i++ {
		result, err := f.uc.Pick(context.Background(), 100)
		if err != nil {
			t.Fatalf("Pick() error: %v", err)
		}
		if result.Empty() {
			t.Fatalf("unexpected empty result: %q", result.EmptyReason)
		}
		if domain.TitleKey(result.Movie) == "dune" {
			t.Fatalf("pick %d returned a watched movie", i)
		}
	}
}

func TestPick_IntersectionPreferred(t *testing.T) {
	f := newSelectionFixture()
	alice := f.addUser(t, 100, "Alice")
	bob := f.addUser(t, 200, "Bob")
	f.addMovies(t, alice.ID, "Dune", "Barbie")
	f.addMovies(t, bob.ID, "dune", "Oppenheimer")

	for _, actingID := range []int64{100, 200, 999} {
		result, err := f.uc.Pick(context.Background(), actingID)
		if err != nil {
			t.Fatalf("Pick(%d) error: %v", actingID, err)
		}
		if result.Movie != "Dune" {
			t.Errorf("Pick(%d) = %q, want %q", actingID, result.Movie, "Dune")
		}
		if !result.FromIntersection {
			t.Errorf("Pick(%d): FromIntersection = false, want true", actingID)
		}
	}
}

func TestPick_IntersectionExcludesWatched(t *testing.T) {
	f := newSelectionFixture()
	alice := f.addUser(t, 100, "Alice")
	bob := f.addUser(t, 200, "Bob")
	f.addMovies(t, alice.ID, "Dune", "Barbie")
	f.addMovies(t, bob.ID, "Dune", "Barbie")
	f.markWatched(t, "Dune")

	result, err := f.uc.Pick(context.Background(), 100)
	if err != nil {
		t.Fatalf("Pick() error: %v", err)
	}
	if result.Movie != "Barbie" || !result.FromIntersection {
		t.Errorf("got (%q, intersection=%v), want (Barbie, true)", result.Movie, result.FromIntersection)
	}
}

func TestPick_SingleUserNoIntersection(t *testing.T) {
	f := newSelectionFixture()
	alice := f.addUser(t, 100, "Alice")
	f.addMovies(t, alice.ID, "Dune")

	result, err := f.uc.Pick(context.Background(), 100)
	if err != nil {
		t.Fatalf("Pick() error: %v", err)
	}
	if result.FromIntersection {
		t.Error("FromIntersection = true with a single user")
	}
	if result.Movie != "Dune" {
		t.Errorf("Movie = %q, want %q", result.Movie, "Dune")
	}
}

func TestPick_AntiRepeatWithAlternatives(t *testing.T) {
	f := newSelectionFixture()
	alice := f.addUser(t, 100, "Alice")
	f.addMovies(t, alice.ID, "Dune", "Barbie")
	if err := f.state.Set(context.Background(), repo.StateLastSelected, "Dune"); err != nil {
		t.Fatal(err)
	}

	result, err := f.uc.Pick(context.Background(), 100)
	if err != nil {
		t.Fatalf("Pick() error: %v", err)
	}
	if result.Movie != "Barbie" {
		t.Errorf("Movie = %q, want %q (last pick must be excluded)", result.Movie, "Barbie")
	}
}

func TestPick_AntiRepeatSingleCandidate(t *testing.T) {
	f := newSelectionFixture()
	alice := f.addUser(t, 100, "Alice")
	f.addMovies(t, alice.ID, "Dune")
	if err := f.state.Set(context.Background(), repo.StateLastSelected, "Dune"); err != nil {
		t.Fatal(err)
	}

	result, err := f.uc.Pick(context.Background(), 100)
	if err != nil {
		t.Fatalf("Pick() error: %v", err)
	}
	if result.Movie != "Dune" {
		t.Errorf("Movie = %q, want %q (exclusion must not empty the pool)", result.Movie, "Dune")
	}
}

func TestPick_PersistsLastSelected(t *testing.T) {
	f := newSelectionFixture()
	alice := f.addUser(t, 100, "Alice")
	f.addMovies(t, alice.ID, "Dune")

	result, err := f.uc.Pick(context.Background(), 100)
	if err != nil {
		t.Fatalf("Pick() error: %v", err)
	}
	last, ok, err := f.state.Get(context.Background(), repo.StateLastSelected)
	if err != nil {
		t.Fatal(err)
	}
	if !ok || last != result.Movie {
		t.Errorf("last selected = (%q, %v), want (%q, true)", last, ok, result.Movie)
	}
}

func TestPick_OtherUserFallback(t *testing.T) {
	f := newSelectionFixture()
	f.addUser(t, 100, "Alice")
	bob := f.addUser(t, 200, "Bob")
	f.addMovies(t, bob.ID, "Dune")

	result, err := f.uc.Pick(context.Background(), 100)
	if err != nil {
		t.Fatalf("Pick() error: %v", err)
	}
	if result.OtherUserName != "Bob" {
		t.Errorf("OtherUserName = %q, want %q", result.OtherUserName, "Bob")
	}
}

func TestPick_OtherUserNameEmptyWhenActingUserHasMovies(t *testing.T) {
	f := newSelectionFixture()
	alice := f.addUser(t, 100, "Alice")
	bob := f.addUser(t, 200, "Bob")
	f.addMovies(t, alice.ID, "Barbie")
	f.addMovies(t, bob.ID, "Dune")

	result, err := f.uc.Pick(context.Background(), 100)
	if err != nil {
		t.Fatalf("Pick() error: %v", err)
	}
	if result.OtherUserName != "" {
		t.Errorf("OtherUserName = %q, want empty", result.OtherUserName)
	}
}

// The other-user check looks at raw wishlist membership, not the
// watched-filtered pool. Bob's only movie is already watched, yet his
// name is still the one reported while the pick comes from Carol's
// list. Intentionally preserved behavior.
func TestPick_OtherUserNameUsesUnfilteredLists(t *testing.T) {
	f := newSelectionFixture()
	f.addUser(t, 100, "Alice")
	bob := f.addUser(t, 200, "Bob")
	carol := f.addUser(t, 300, "Carol")
	f.addMovies(t, bob.ID, "Dune")
	f.addMovies(t, carol.ID, "Barbie")
	f.markWatched(t, "Dune")

	result, err := f.uc.Pick(context.Background(), 100)
	if err != nil {
		t.Fatalf("Pick() error: %v", err)
	}
	if result.Movie != "Barbie" {
		t.Fatalf("Movie = %q, want %q", result.Movie, "Barbie")
	}
	if result.OtherUserName != "Bob" {
		t.Errorf("OtherUserName = %q, want %q (unfiltered check)", result.OtherUserName, "Bob")
	}
}

func TestPick_UnknownActingUser(t *testing.T) {
	f := newSelectionFixture()
	bob := f.addUser(t, 200, "Bob")
	f.addMovies(t, bob.ID, "Dune")

	result, err := f.uc.Pick(context.Background(), 999)
	if err != nil {
		t.Fatalf("Pick() error: %v", err)
	}
	if result.Empty() {
		t.Fatal("pick must proceed for an unknown acting user")
	}
	if result.OtherUserName != "" {
		t.Errorf("OtherUserName = %q, want empty for unknown user", result.OtherUserName)
	}
}
