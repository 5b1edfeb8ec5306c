package usecase

import (
	"context"
	"time"

	"moviebot/internal/biz/domain"
)

// In-memory repository implementations shared by the usecase tests.

type mockUserRepo struct {
	users  []*domain.User
	nextID int64
}

func (m *mockUserRepo) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	for _, u := range m.users {
		if u.TelegramID == telegramID {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, telegramID int64, displayName string) (*domain.User, error) {
	m.nextID++
	u := &domain.User{ID: m.nextID, TelegramID: telegramID, DisplayName: displayName}
	m.users = append(m.users, u)
	return u, nil
}

func (m *mockUserRepo) GetOrCreate(ctx context.Context, telegramID int64, displayName string) (*domain.User, error) {
	if u, _ := m.GetByTelegramID(ctx, telegramID); u != nil {
		return u, nil
	}
	return m.Create(ctx, telegramID, displayName)
}

func (m *mockUserRepo) ListAll(ctx context.Context) ([]*domain.User, error) {
	return m.users, nil
}

type mockWishlistRepo struct {
	items  []*domain.WishlistItem
	nextID int64
}

func (m *mockWishlistRepo) Add(ctx context.Context, userID int64, movieTitle string) (*domain.WishlistItem, error) {
	m.nextID++
	item := &domain.WishlistItem{ID: m.nextID, UserID: userID, MovieTitle: movieTitle}
	m.items = append(m.items, item)
	return item, nil
}

func (m *mockWishlistRepo) FindByTitle(ctx context.Context, userID int64, movieTitle string) (*domain.WishlistItem, error) {
	key := domain.TitleKey(movieTitle)
	for _, it := range m.items {
		if it.UserID == userID && domain.TitleKey(it.MovieTitle) == key {
			return it, nil
		}
	}
	return nil, nil
}

func (m *mockWishlistRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.WishlistItem, error) {
	var out []*domain.WishlistItem
	for _, it := range m.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *mockWishlistRepo) Delete(ctx context.Context, userID int64, movieTitle string) (bool, error) {
	key := domain.TitleKey(movieTitle)
	for i, it := range m.items {
		if it.UserID == userID && domain.TitleKey(it.MovieTitle) == key {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *mockWishlistRepo) DeleteEverywhere(ctx context.Context, movieTitle string) (int64, error) {
	key := domain.TitleKey(movieTitle)
	var kept []*domain.WishlistItem
	var removed int64
	for _, it := range m.items {
		if domain.TitleKey(it.MovieTitle) == key {
			removed++
			continue
		}
		kept = append(kept, it)
	}
	m.items = kept
	return removed, nil
}

func (m *mockWishlistRepo) AllTitles(ctx context.Context) ([]string, error) {
	set := domain.NewTitleSet()
	for _, it := range m.items {
		set.Add(it.MovieTitle)
	}
	return set.Titles(), nil
}

func (m *mockWishlistRepo) TitlesByUser(ctx context.Context) (map[int64][]string, error) {
	out := make(map[int64][]string)
	for _, it := range m.items {
		out[it.UserID] = append(out[it.UserID], it.MovieTitle)
	}
	return out, nil
}

type mockHistoryRepo struct {
	items  []*domain.HistoryItem
	nextID int64
}

func (m *mockHistoryRepo) Add(ctx context.Context, movieTitle string, rating int, watchedAt time.Time, markedByUserID int64) (*domain.HistoryItem, error) {
	m.nextID++
	item := &domain.HistoryItem{ID: m.nextID, MovieTitle: movieTitle, Rating: rating, WatchedAt: watchedAt}
	m.items = append(m.items, item)
	return item, nil
}

func (m *mockHistoryRepo) ListAll(ctx context.Context) ([]*domain.HistoryItem, error) {
	return m.items, nil
}

func (m *mockHistoryRepo) WatchedTitlesLower(ctx context.Context) (map[string]bool, error) {
	out := make(map[string]bool)
	for _, it := range m.items {
		out[domain.TitleKey(it.MovieTitle)] = true
	}
	return out, nil
}

func (m *mockHistoryRepo) FindByTitle(ctx context.Context, movieTitle string) (*domain.HistoryItem, error) {
	key := domain.TitleKey(movieTitle)
	for _, it := range m.items {
		if domain.TitleKey(it.MovieTitle) == key {
			return it, nil
		}
	}
	return nil, nil
}

func (m *mockHistoryRepo) IsEmpty(ctx context.Context) (bool, error) {
	return len(m.items) == 0, nil
}

type mockStateRepo struct {
	values map[string]string
}

func newMockStateRepo() *mockStateRepo {
	return &mockStateRepo{values: make(map[string]string)}
}

func (m *mockStateRepo) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mockStateRepo) Set(ctx context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func (m *mockStateRepo) Delete(ctx context.Context, key string) (bool, error) {
	_, ok := m.values[key]
	delete(m.values, key)
	return ok, nil
}
