package repo

import "context"

// Keys used in the state store.
const (
	// StateLastSelected holds the title of the most recent pick,
	// read by the anti-repeat rule.
	StateLastSelected = "last_selected_movie"

	// StatePendingMoviePrefix prefixes per-user pending-rating keys:
	// "pending_movie:<telegram_id>" -> movie title awaiting a rating.
	StatePendingMoviePrefix = "pending_movie:"
)

// StateRepo is a persisted string key/value store.
type StateRepo interface {
	// Get returns the value for key, or ("", false) when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key and reports whether it existed.
	Delete(ctx context.Context, key string) (bool, error)
}
