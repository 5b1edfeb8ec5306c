package domain

// WishlistItem is one movie on one user's personal list.
// Titles are unique per user under TitleKey.
type WishlistItem struct {
	ID         int64
	UserID     int64
	MovieTitle string
}
