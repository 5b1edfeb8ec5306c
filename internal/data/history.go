package data

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"moviebot/internal/biz/domain"
)

// historyRepo implements repo.HistoryRepo on SQLite.
type historyRepo struct {
	db *sql.DB
}

func (r *historyRepo) Add(ctx context.Context, movieTitle string, rating int, watchedAt time.Time, markedByUserID int64) (*domain.HistoryItem, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO watch_history (movie_title, movie_title_lower, rating, watched_at, marked_by_user_id)
		VALUES (?, ?, ?, ?, ?)
	`, movieTitle, domain.TitleKey(movieTitle), rating, watchedAt.Format(dateLayout), markedByUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to add history item: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get history item id: %w", err)
	}
	return &domain.HistoryItem{ID: id, MovieTitle: movieTitle, Rating: rating, WatchedAt: watchedAt}, nil
}

func (r *historyRepo) ListAll(ctx context.Context) ([]*domain.HistoryItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, movie_title, rating, watched_at FROM watch_history
		ORDER BY watched_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var items []*domain.HistoryItem
	for rows.Next() {
		item, err := scanHistoryItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *historyRepo) WatchedTitlesLower(ctx context.Context) (map[string]bool, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT movie_title_lower FROM watch_history
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query watched titles: %w", err)
	}
	defer rows.Close()

	watched := make(map[string]bool)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan watched title: %w", err)
		}
		watched[key] = true
	}
	return watched, rows.Err()
}

func (r *historyRepo) FindByTitle(ctx context.Context, movieTitle string) (*domain.HistoryItem, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, movie_title, rating, watched_at FROM watch_history
		WHERE movie_title_lower = ?
	`, domain.TitleKey(movieTitle))

	item, err := scanHistoryItem(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *historyRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM watch_history`).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to count history: %w", err)
	}
	return count == 0, nil
}

func scanHistoryItem(scan func(dest ...any) error) (*domain.HistoryItem, error) {
	var item domain.HistoryItem
	var watchedAt string
	if err := scan(&item.ID, &item.MovieTitle, &item.Rating, &watchedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan history item: %w", err)
	}
	t, err := time.Parse(dateLayout, watchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse watch date: %w", err)
	}
	item.WatchedAt = t
	return &item, nil
}
