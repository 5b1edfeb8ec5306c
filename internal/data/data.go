package data

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"moviebot/internal/biz/repo"

	_ "modernc.org/sqlite"
)

// Dates in watch_history are stored as ISO strings.
const dateLayout = "2006-01-02"

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	telegram_id INTEGER UNIQUE NOT NULL,
	display_name TEXT NOT NULL,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS wishlist (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL,
	movie_title TEXT NOT NULL,
	movie_title_lower TEXT NOT NULL,
	added_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
	UNIQUE(user_id, movie_title_lower)
);

CREATE TABLE IF NOT EXISTS watch_history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	movie_title TEXT NOT NULL,
	movie_title_lower TEXT NOT NULL,
	rating INTEGER CHECK (rating >= 1 AND rating <= 10),
	watched_at DATE NOT NULL,
	marked_by_user_id INTEGER,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (marked_by_user_id) REFERENCES users(id)
);

CREATE TABLE IF NOT EXISTS bot_state (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_wishlist_user ON wishlist(user_id);
CREATE INDEX IF NOT EXISTS idx_wishlist_title ON wishlist(movie_title_lower);
CREATE INDEX IF NOT EXISTS idx_history_date ON watch_history(watched_at);
CREATE INDEX IF NOT EXISTS idx_history_title ON watch_history(movie_title_lower);
`

// Repositories aggregates all storage implementations over one database.
type Repositories struct {
	User     repo.UserRepo
	Wishlist repo.WishlistRepo
	History  repo.HistoryRepo
	State    repo.StateRepo

	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at dbPath,
// applies the schema, and returns the repositories.
func Open(dbPath string) (*Repositories, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Repositories{
		User:     &userRepo{db: db},
		Wishlist: &wishlistRepo{db: db},
		History:  &historyRepo{db: db},
		State:    &stateRepo{db: db},
		db:       db,
	}, nil
}

// Close closes the underlying database.
func (r *Repositories) Close() error {
	return r.db.Close()
}
