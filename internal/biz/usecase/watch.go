package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"moviebot/internal/biz/domain"
	"moviebot/internal/biz/repo"
)

// WatchResult reports the recorded movie with its canonical title.
type WatchResult struct {
	MovieTitle     string
	Rating         int
	WasInWishlist  bool
	RemovedEntries int64
}

// WatchUsecase records watched movies into the shared history.
type WatchUsecase struct {
	// mu serializes the resolve-append-remove sequence so two
	// concurrent reports of the same movie cannot double-append.
	mu sync.Mutex

	userRepo     repo.UserRepo
	wishlistRepo repo.WishlistRepo
	historyRepo  repo.HistoryRepo
	now          func() time.Time
}

// NewWatchUsecase creates a new watch usecase.
func NewWatchUsecase(userRepo repo.UserRepo, wishlistRepo repo.WishlistRepo, historyRepo repo.HistoryRepo) *WatchUsecase {
	return &WatchUsecase{
		userRepo:     userRepo,
		wishlistRepo: wishlistRepo,
		historyRepo:  historyRepo,
		now:          time.Now,
	}
}

// MarkWatched appends the movie to the shared history, dated today, and
// removes it from every user's wishlist. The title is resolved to the
// casing already stored on any wishlist; an unmatched title is recorded
// verbatim. The rating is validated before any state is touched.
func (uc *WatchUsecase) MarkWatched(ctx context.Context, telegramID int64, movieTitle string, rating int) (*WatchResult, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	user, err := uc.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnknownUser
	}

	if !domain.ValidRating(rating) {
		return nil, domain.ErrInvalidRating
	}

	original, inWishlist, err := uc.resolveTitle(ctx, movieTitle)
	if err != nil {
		return nil, err
	}

	if _, err := uc.historyRepo.Add(ctx, original, rating, uc.now(), user.ID); err != nil {
		return nil, fmt.Errorf("add history: %w", err)
	}

	removed, err := uc.wishlistRepo.DeleteEverywhere(ctx, original)
	if err != nil {
		return nil, fmt.Errorf("delete everywhere: %w", err)
	}

	return &WatchResult{
		MovieTitle:     original,
		Rating:         rating,
		WasInWishlist:  inWishlist,
		RemovedEntries: removed,
	}, nil
}

// resolveTitle maps the reported title to the casing stored on any
// wishlist, falling back to the input verbatim.
func (uc *WatchUsecase) resolveTitle(ctx context.Context, movieTitle string) (string, bool, error) {
	all, err := uc.wishlistRepo.AllTitles(ctx)
	if err != nil {
		return "", false, fmt.Errorf("all titles: %w", err)
	}
	if canonical, ok := domain.NewTitleSet(all...).Canonical(movieTitle); ok {
		return canonical, true, nil
	}
	return movieTitle, false, nil
}
