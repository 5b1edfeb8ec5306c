package domain

import "time"

// Rating bounds, inclusive.
const (
	MinRating = 1
	MaxRating = 10
)

// ValidRating reports whether r is within the allowed 1..10 range.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// HistoryItem is one watched movie in the shared household history.
// History is append-only; entries are never mutated or deleted.
type HistoryItem struct {
	ID         int64
	MovieTitle string
	Rating     int
	WatchedAt  time.Time
}
