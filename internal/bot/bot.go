package bot

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"moviebot/internal/biz/repo"
	"moviebot/internal/biz/usecase"
)

// Bot is the Telegram transport: it polls for updates and routes the
// household's free-text commands to the usecases.
type Bot struct {
	api *tgbotapi.BotAPI

	userUC      *usecase.UserUsecase
	wishlistUC  *usecase.WishlistUsecase
	selectionUC *usecase.SelectionUsecase
	watchUC     *usecase.WatchUsecase
	historyUC   *usecase.HistoryUsecase
	stateRepo   repo.StateRepo
}

// Deps bundles everything the bot needs.
type Deps struct {
	UserUC      *usecase.UserUsecase
	WishlistUC  *usecase.WishlistUsecase
	SelectionUC *usecase.SelectionUsecase
	WatchUC     *usecase.WatchUsecase
	HistoryUC   *usecase.HistoryUsecase
	StateRepo   repo.StateRepo
}

// New connects to the Telegram API and creates the bot.
func New(token string, debug bool, deps Deps) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	api.Debug = debug

	return &Bot{
		api:         api,
		userUC:      deps.UserUC,
		wishlistUC:  deps.WishlistUC,
		selectionUC: deps.SelectionUC,
		watchUC:     deps.WatchUC,
		historyUC:   deps.HistoryUC,
		stateRepo:   deps.StateRepo,
	}, nil
}

// Self returns the bot's Telegram username.
func (b *Bot) Self() string {
	return b.api.Self.UserName
}

// Run polls for updates until ctx is cancelled. Updates are handled
// sequentially: one command is one uninterrupted read-then-write
// sequence against storage.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30

	updates := b.api.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil && update.Message.Text != "":
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	}
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send message: %v", err)
	}
}

func (b *Bot) replyWithKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboard
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("send message: %v", err)
	}
}
