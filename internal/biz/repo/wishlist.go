package repo

import (
	"context"

	"moviebot/internal/biz/domain"
)

// WishlistRepo is the per-user wishlist storage interface.
// All title matching is case-insensitive (domain.TitleKey).
type WishlistRepo interface {
	// Add appends a movie to a user's wishlist.
	Add(ctx context.Context, userID int64, movieTitle string) (*domain.WishlistItem, error)

	// FindByTitle finds a movie on a user's wishlist. Returns nil when absent.
	FindByTitle(ctx context.Context, userID int64, movieTitle string) (*domain.WishlistItem, error)

	// ListByUser returns a user's wishlist in insertion order.
	ListByUser(ctx context.Context, userID int64) ([]*domain.WishlistItem, error)

	// Delete removes a movie from one user's wishlist.
	Delete(ctx context.Context, userID int64, movieTitle string) (bool, error)

	// DeleteEverywhere removes a movie from every user's wishlist and
	// returns the number of entries removed.
	DeleteEverywhere(ctx context.Context, movieTitle string) (int64, error)

	// AllTitles returns every distinct title across all wishlists,
	// one canonical casing per title.
	AllTitles(ctx context.Context) ([]string, error)

	// TitlesByUser returns titles grouped by user id, each in insertion order.
	TitlesByUser(ctx context.Context) (map[int64][]string, error)
}
