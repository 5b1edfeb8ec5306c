package usecase

import (
	"context"
	"fmt"

	"moviebot/internal/biz/domain"
	"moviebot/internal/biz/repo"
)

// AddMovieResult reports the stored title and whether it already existed.
type AddMovieResult struct {
	MovieTitle    string
	AlreadyExists bool
}

// DeleteMovieResult reports the canonical title and whether it was removed.
type DeleteMovieResult struct {
	MovieTitle string
	Deleted    bool
}

// WishlistUsecase handles personal wishlist operations.
type WishlistUsecase struct {
	wishlistRepo repo.WishlistRepo
	userRepo     repo.UserRepo
}

// NewWishlistUsecase creates a new wishlist usecase.
func NewWishlistUsecase(wishlistRepo repo.WishlistRepo, userRepo repo.UserRepo) *WishlistUsecase {
	return &WishlistUsecase{wishlistRepo: wishlistRepo, userRepo: userRepo}
}

// AddMovie adds a movie to the user's wishlist. Duplicate detection is
// case-insensitive; the originally stored casing is returned either way.
func (uc *WishlistUsecase) AddMovie(ctx context.Context, telegramID int64, movieTitle string) (*AddMovieResult, error) {
	user, err := uc.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnknownUser
	}

	existing, err := uc.wishlistRepo.FindByTitle(ctx, user.ID, movieTitle)
	if err != nil {
		return nil, fmt.Errorf("find by title: %w", err)
	}
	if existing != nil {
		return &AddMovieResult{MovieTitle: existing.MovieTitle, AlreadyExists: true}, nil
	}

	item, err := uc.wishlistRepo.Add(ctx, user.ID, movieTitle)
	if err != nil {
		return nil, fmt.Errorf("add movie: %w", err)
	}
	return &AddMovieResult{MovieTitle: item.MovieTitle}, nil
}

// UserWishlist returns the user's wishlist titles in insertion order.
// An unregistered user simply has an empty list.
func (uc *WishlistUsecase) UserWishlist(ctx context.Context, telegramID int64) ([]string, error) {
	user, err := uc.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, nil
	}

	items, err := uc.wishlistRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list by user: %w", err)
	}
	titles := make([]string, 0, len(items))
	for _, it := range items {
		titles = append(titles, it.MovieTitle)
	}
	return titles, nil
}

// DeleteMovie removes a movie from the user's wishlist, case-insensitively.
// The returned title carries the stored casing when the movie was found.
func (uc *WishlistUsecase) DeleteMovie(ctx context.Context, telegramID int64, movieTitle string) (*DeleteMovieResult, error) {
	user, err := uc.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return &DeleteMovieResult{MovieTitle: movieTitle}, nil
	}

	original := movieTitle
	if existing, err := uc.wishlistRepo.FindByTitle(ctx, user.ID, movieTitle); err != nil {
		return nil, fmt.Errorf("find by title: %w", err)
	} else if existing != nil {
		original = existing.MovieTitle
	}

	deleted, err := uc.wishlistRepo.Delete(ctx, user.ID, movieTitle)
	if err != nil {
		return nil, fmt.Errorf("delete movie: %w", err)
	}
	return &DeleteMovieResult{MovieTitle: original, Deleted: deleted}, nil
}

// Intersection returns the movies every user wants, case-insensitively,
// mapped back to canonical casing. With a single user it is simply their
// list; with none it is empty.
func (uc *WishlistUsecase) Intersection(ctx context.Context) ([]string, error) {
	byUser, err := uc.wishlistRepo.TitlesByUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("titles by user: %w", err)
	}
	if len(byUser) == 0 {
		return nil, nil
	}
	if len(byUser) == 1 {
		for _, titles := range byUser {
			return titles, nil
		}
	}

	var userSets []map[string]bool
	for _, titles := range byUser {
		set := make(map[string]bool, len(titles))
		for _, t := range titles {
			set[domain.TitleKey(t)] = true
		}
		userSets = append(userSets, set)
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

	all, err := uc.wishlistRepo.AllTitles(ctx)
	if err != nil {
		return nil, fmt.Errorf("all titles: %w", err)
	}
	var out []string
	for _, t := range all {
		if common[domain.TitleKey(t)] {
			out = append(out, t)
		}
	}
	return out, nil
}

// AllMovies returns every distinct title across all wishlists.
func (uc *WishlistUsecase) AllMovies(ctx context.Context) ([]string, error) {
	return uc.wishlistRepo.AllTitles(ctx)
}
