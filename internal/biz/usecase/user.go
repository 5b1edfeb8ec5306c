package usecase

import (
	"context"
	"fmt"

	"moviebot/internal/biz/domain"
	"moviebot/internal/biz/repo"
)

// RegisterResult reports the user and whether they were just created.
type RegisterResult struct {
	User  *domain.User
	IsNew bool
}

// UserUsecase handles user registration and lookup.
type UserUsecase struct {
	userRepo repo.UserRepo
}

// NewUserUsecase creates a new user usecase.
func NewUserUsecase(userRepo repo.UserRepo) *UserUsecase {
	return &UserUsecase{userRepo: userRepo}
}

// Register returns the existing user or registers a new one.
// Every incoming message goes through this first.
func (uc *UserUsecase) Register(ctx context.Context, telegramID int64, displayName string) (*RegisterResult, error) {
	existing, err := uc.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if existing != nil {
		return &RegisterResult{User: existing, IsNew: false}, nil
	}

	user, err := uc.userRepo.Create(ctx, telegramID, displayName)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &RegisterResult{User: user, IsNew: true}, nil
}

// Get finds a user by Telegram id. Returns nil when not registered.
func (uc *UserUsecase) Get(ctx context.Context, telegramID int64) (*domain.User, error) {
	return uc.userRepo.GetByTelegramID(ctx, telegramID)
}

// ListAll returns all registered users in registration order.
func (uc *UserUsecase) ListAll(ctx context.Context) ([]*domain.User, error) {
	return uc.userRepo.ListAll(ctx)
}
