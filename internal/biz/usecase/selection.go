package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"moviebot/internal/biz/domain"
	"moviebot/internal/biz/repo"
)

// EmptyReason explains why no movie could be picked.
type EmptyReason string

const (
	EmptyReasonNone EmptyReason = ""

	// EmptyAllEmpty means no wishlist has any entries.
	EmptyAllEmpty EmptyReason = "all_empty"

	// EmptyAllWatched means every wishlist entry is already in the history.
	EmptyAllWatched EmptyReason = "all_watched"
)

// SelectionResult is the outcome of one pick.
type SelectionResult struct {
	Movie            string
	FromIntersection bool
	EmptyReason      EmptyReason

	// OtherUserName is set when the acting user's own wishlist is empty:
	// the display name of the first registered user who has entries.
	// Informational only, it never changes which pool the movie came from.
	OtherUserName string
}

// Empty reports whether no movie was picked.
func (r *SelectionResult) Empty() bool {
	return r.Movie == ""
}

// SelectionUsecase picks the evening's movie.
type SelectionUsecase struct {
	// mu serializes the whole read-pick-persist sequence so two
	// concurrent picks cannot both read a stale last-selected value.
	mu sync.Mutex

	wishlistRepo repo.WishlistRepo
	historyRepo  repo.HistoryRepo
	stateRepo    repo.StateRepo
	userRepo     repo.UserRepo
	rng          *rand.Rand
}

// NewSelectionUsecase creates a new selection usecase.
// rng may be nil, in which case a time-seeded source is used.
func NewSelectionUsecase(
	wishlistRepo repo.WishlistRepo,
	historyRepo repo.HistoryRepo,
	stateRepo repo.StateRepo,
	userRepo repo.UserRepo,
	rng *rand.Rand,
) *SelectionUsecase {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &SelectionUsecase{
		wishlistRepo: wishlistRepo,
		historyRepo:  historyRepo,
		stateRepo:    stateRepo,
		userRepo:     userRepo,
		rng:          rng,
	}
}

// Pick selects a movie for the evening.
//
// Candidates are every wishlist title minus the watch history. When at
// least two users share candidates, the draw is restricted to that
// intersection. The previous pick is excluded unless it is the only
// candidate left. An unregistered acting user is not an error: selection
// is a household action, the pick proceeds on global wishlist data.
func (uc *SelectionUsecase) Pick(ctx context.Context, telegramID int64) (*SelectionResult, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	// 1. All movies from all wishlists
	allTitles, err := uc.wishlistRepo.AllTitles(ctx)
	if err != nil {
		return nil, fmt.Errorf("all titles: %w", err)
	}
	if len(allTitles) == 0 {
		return &SelectionResult{EmptyReason: EmptyAllEmpty}, nil
	}

	// 2. Filter out watched movies
	watched, err := uc.historyRepo.WatchedTitlesLower(ctx)
	if err != nil {
		return nil, fmt.Errorf("watched titles: %w", err)
	}
	pool := make([]string, 0, len(allTitles))
	for _, t := range allTitles {
		if !watched[domain.TitleKey(t)] {
			pool = append(pool, t)
		}
	}
	if len(pool) == 0 {
		return &SelectionResult{EmptyReason: EmptyAllWatched}, nil
	}

	// 3. Prefer the intersection of everyone's wishlists
	intersection, err := uc.intersection(ctx, pool)
	if err != nil {
		return nil, err
	}
	fromIntersection := len(intersection) > 0
	if fromIntersection {
		pool = intersection
	}

	// 4. Whose list are we effectively picking from, if the acting
	// user's own list is empty
	otherUserName, err := uc.otherUserWithMovies(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	// 5. Don't repeat the previous pick when alternatives exist
	last, ok, err := uc.stateRepo.Get(ctx, repo.StateLastSelected)
	if err != nil {
		return nil, fmt.Errorf("get last selected: %w", err)
	}
	if ok && last != "" && len(pool) > 1 {
		lastKey := domain.TitleKey(last)
		filtered := pool[:0]
		for _, t := range pool {
			if domain.TitleKey(t) != lastKey {
				filtered = append(filtered, t)
			}
		}
		pool = filtered
	}

	// 6. Uniform random draw
	selected := pool[uc.rng.Intn(len(pool))]

	// 7. Remember it for the anti-repeat rule
	if err := uc.stateRepo.Set(ctx, repo.StateLastSelected, selected); err != nil {
		return nil, fmt.Errorf("save last selected: %w", err)
	}

	return &SelectionResult{
		Movie:            selected,
		FromIntersection: fromIntersection,
		OtherUserName:    otherUserName,
	}, nil
}

// intersection returns the titles from pool that every user with at least
// one available movie wants, in pool order. Empty when fewer than two
// users have available movies or when their lists don't overlap.
func (uc *SelectionUsecase) intersection(ctx context.Context, pool []string) ([]string, error) {
	byUser, err := uc.wishlistRepo.TitlesByUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("titles by user: %w", err)
	}
	if len(byUser) < 2 {
		return nil, nil
	}

	available := make(map[string]bool, len(pool))
	for _, t := range pool {
		available[domain.TitleKey(t)] = true
	}

	var userSets []map[string]bool
	for _, titles := range byUser {
		set := make(map[string]bool)
		for _, t := range titles {
			if key := domain.TitleKey(t); available[key] {
				set[key] = true
			}
		}
		if len(set) > 0 {
			userSets = append(userSets, set)
		}
	}
	if len(userSets) < 2 {
		return nil, nil
	}

	common := userSets[0]
	for _, set := range userSets[1:] {
		next := make(map[string]bool)
		for key := range common {
			if set[key] {
				next[key] = true
			}
		}
		common = next
	}
	if len(common) == 0 {
		return nil, nil
	}

	var out []string
	for _, t := range pool {
		if common[domain.TitleKey(t)] {
			out = append(out, t)
		}
	}
	return out, nil
}

// otherUserWithMovies returns the display name of the first registered
// user who has wishlist entries, when the acting user has none.
//
// Deliberately checks raw wishlist membership, not the filtered pool, so
// the name can reference a user whose titles were all excluded by the
// watched filter. Known quirk, kept as-is.
func (uc *SelectionUsecase) otherUserWithMovies(ctx context.Context, telegramID int64) (string, error) {
	current, err := uc.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return "", fmt.Errorf("get user: %w", err)
	}
	if current == nil {
		return "", nil
	}

	byUser, err := uc.wishlistRepo.TitlesByUser(ctx)
	if err != nil {
		return "", fmt.Errorf("titles by user: %w", err)
	}
	if len(byUser[current.ID]) > 0 {
		return "", nil
	}

	users, err := uc.userRepo.ListAll(ctx)
	if err != nil {
		return "", fmt.Errorf("list users: %w", err)
	}
	for _, u := range users {
		if u.ID != current.ID && len(byUser[u.ID]) > 0 {
			return u.DisplayName, nil
		}
	}
	return "", nil
}
