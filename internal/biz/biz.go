package biz

import (
	"moviebot/internal/biz/usecase"
	"moviebot/internal/data"
)

// Usecases contains all usecases
type Usecases struct {
	User      *usecase.UserUsecase
	Wishlist  *usecase.WishlistUsecase
	Selection *usecase.SelectionUsecase
	Watch     *usecase.WatchUsecase
	History   *usecase.HistoryUsecase
}

// NewUsecases wires the usecases over the given repositories.
func NewUsecases(repos *data.Repositories) *Usecases {
	return &Usecases{
		User:      usecase.NewUserUsecase(repos.User),
		Wishlist:  usecase.NewWishlistUsecase(repos.Wishlist, repos.User),
		Selection: usecase.NewSelectionUsecase(repos.Wishlist, repos.History, repos.State, repos.User, nil),
		Watch:     usecase.NewWatchUsecase(repos.User, repos.Wishlist, repos.History),
		History:   usecase.NewHistoryUsecase(repos.History),
	}
}
