package repo

import (
	"context"
	"time"

	"moviebot/internal/biz/domain"
)

// HistoryRepo is the shared watch-history storage interface.
type HistoryRepo interface {
	// Add appends a watched movie to the history.
	Add(ctx context.Context, movieTitle string, rating int, watchedAt time.Time, markedByUserID int64) (*domain.HistoryItem, error)

	// ListAll returns the full history ordered by watch date descending.
	ListAll(ctx context.Context) ([]*domain.HistoryItem, error)

	// WatchedTitlesLower returns the TitleKey forms of every watched movie.
	WatchedTitlesLower(ctx context.Context) (map[string]bool, error)

	// FindByTitle finds a history entry case-insensitively. Returns nil when absent.
	FindByTitle(ctx context.Context, movieTitle string) (*domain.HistoryItem, error)

	// IsEmpty reports whether the history has no entries.
	IsEmpty(ctx context.Context) (bool, error)
}
