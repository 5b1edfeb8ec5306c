package data

import (
	"context"
	"database/sql"
	"fmt"

	"moviebot/internal/biz/domain"
)

// wishlistRepo implements repo.WishlistRepo on SQLite.
// The movie_title_lower column carries the domain.TitleKey form so
// case-insensitive lookups stay indexed.
type wishlistRepo struct {
	db *sql.DB
}

func (r *wishlistRepo) Add(ctx context.Context, userID int64, movieTitle string) (*domain.WishlistItem, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO wishlist (user_id, movie_title, movie_title_lower) VALUES (?, ?, ?)
	`, userID, movieTitle, domain.TitleKey(movieTitle))
	if err != nil {
		return nil, fmt.Errorf("failed to add wishlist item: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get wishlist item id: %w", err)
	}
	return &domain.WishlistItem{ID: id, UserID: userID, MovieTitle: movieTitle}, nil
}

func (r *wishlistRepo) FindByTitle(ctx context.Context, userID int64, movieTitle string) (*domain.WishlistItem, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, movie_title FROM wishlist
		WHERE user_id = ? AND movie_title_lower = ?
	`, userID, domain.TitleKey(movieTitle))

	var item domain.WishlistItem
	err := row.Scan(&item.ID, &item.UserID, &item.MovieTitle)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query wishlist item: %w", err)
	}
	return &item, nil
}

func (r *wishlistRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.WishlistItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, movie_title FROM wishlist
		WHERE user_id = ? ORDER BY added_at, id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}
	defer rows.Close()

	var items []*domain.WishlistItem
	for rows.Next() {
		var item domain.WishlistItem
		if err := rows.Scan(&item.ID, &item.UserID, &item.MovieTitle); err != nil {
			return nil, fmt.Errorf("failed to scan wishlist item: %w", err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (r *wishlistRepo) Delete(ctx context.Context, userID int64, movieTitle string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM wishlist WHERE user_id = ? AND movie_title_lower = ?
	`, userID, domain.TitleKey(movieTitle))
	if err != nil {
		return false, fmt.Errorf("failed to delete wishlist item: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to count deleted rows: %w", err)
	}
	return n > 0, nil
}

func (r *wishlistRepo) DeleteEverywhere(ctx context.Context, movieTitle string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		DELETE FROM wishlist WHERE movie_title_lower = ?
	`, domain.TitleKey(movieTitle))
	if err != nil {
		return 0, fmt.Errorf("failed to delete from all wishlists: %w", err)
	}
	return result.RowsAffected()
}

func (r *wishlistRepo) AllTitles(ctx context.Context) ([]string, error) {
	// One row per distinct lowercase key; the first-added casing wins.
	rows, err := r.db.QueryContext(ctx, `
		SELECT movie_title, MIN(id) AS first_id FROM wishlist
		GROUP BY movie_title_lower ORDER BY first_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query all titles: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var title string
		var firstID int64
		if err := rows.Scan(&title, &firstID); err != nil {
			return nil, fmt.Errorf("failed to scan title: %w", err)
		}
		titles = append(titles, title)
	}
	return titles, rows.Err()
}

func (r *wishlistRepo) TitlesByUser(ctx context.Context) (map[int64][]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, movie_title FROM wishlist ORDER BY user_id, added_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query titles by user: %w", err)
	}
	defer rows.Close()

	result := make(map[int64][]string)
	for rows.Next() {
		var userID int64
		var title string
		if err := rows.Scan(&userID, &title); err != nil {
			return nil, fmt.Errorf("failed to scan title: %w", err)
		}
		result[userID] = append(result[userID], title)
	}
	return result, rows.Err()
}
