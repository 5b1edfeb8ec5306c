package repo

import (
	"context"

	"moviebot/internal/biz/domain"
)

// UserRepo is the user directory interface.
type UserRepo interface {
	// GetByTelegramID finds a user by Telegram id. Returns nil when absent.
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)

	// Create registers a new user.
	Create(ctx context.Context, telegramID int64, displayName string) (*domain.User, error)

	// GetOrCreate returns the existing user or registers a new one.
	GetOrCreate(ctx context.Context, telegramID int64, displayName string) (*domain.User, error)

	// ListAll returns all users in registration order.
	ListAll(ctx context.Context) ([]*domain.User, error)
}
