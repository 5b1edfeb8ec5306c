package data

import (
	"context"
	"database/sql"
	"fmt"

	"moviebot/internal/biz/domain"
)

// userRepo implements repo.UserRepo on SQLite.
type userRepo struct {
	db *sql.DB
}

func (r *userRepo) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, telegram_id, display_name FROM users WHERE telegram_id = ?
	`, telegramID)

	var user domain.User
	err := row.Scan(&user.ID, &user.TelegramID, &user.DisplayName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

func (r *userRepo) Create(ctx context.Context, telegramID int64, displayName string) (*domain.User, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO users (telegram_id, display_name) VALUES (?, ?)
	`, telegramID, displayName)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get user id: %w", err)
	}
	return &domain.User{ID: id, TelegramID: telegramID, DisplayName: displayName}, nil
}

func (r *userRepo) GetOrCreate(ctx context.Context, telegramID int64, displayName string) (*domain.User, error) {
	user, err := r.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}
	return r.Create(ctx, telegramID, displayName)
}

func (r *userRepo) ListAll(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, telegram_id, display_name FROM users ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.TelegramID, &user.DisplayName); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}
