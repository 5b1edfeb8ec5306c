package bot

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"moviebot/internal/biz/domain"
	"moviebot/internal/biz/repo"
	"moviebot/internal/biz/usecase"
)

// Command prefixes, matched against the lowercased message text.
// Cyrillic case pairs have equal UTF-8 width, so the prefix length is
// also valid as a byte offset into the original text.
const (
	cmdAdd     = "хочу посмотреть"
	cmdMyList  = "мой список"
	cmdOurList = "наш список"
	cmdPick    = "что смотрим"
	cmdWatched = "посмотрели"
	cmdHistory = "история"
	cmdDelete  = "удали"
)

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	// Every message registers its sender first, like the original flow.
	from := msg.From
	if from == nil {
		return
	}
	if _, err := b.userUC.Register(ctx, from.ID, displayName(from)); err != nil {
		log.Printf("register user %d: %v", from.ID, err)
		return
	}

	text := msg.Text
	lower := strings.ToLower(text)
	chatID := msg.Chat.ID

	switch {
	case msg.IsCommand():
		switch msg.Command() {
		case "start":
			b.reply(chatID, msgWelcome)
		case "help":
			b.reply(chatID, msgHelp)
		default:
			b.reply(chatID, msgUnknownCommand)
		}

	case strings.HasPrefix(lower, cmdAdd):
		b.handleAdd(ctx, chatID, from.ID, strings.TrimSpace(text[len(cmdAdd):]))

	case lower == cmdMyList:
		b.handleMyList(ctx, chatID, from.ID)

	case lower == cmdOurList:
		b.handleOurList(ctx, chatID)

	case isPickCommand(lower):
		b.handlePick(ctx, chatID, from.ID)

	case strings.HasPrefix(lower, cmdWatched):
		b.handleWatched(ctx, chatID, from.ID, strings.TrimSpace(text[len(cmdWatched):]))

	case lower == cmdHistory || lower == "📚 "+cmdHistory:
		b.handleHistory(ctx, chatID)

	case strings.HasPrefix(lower, cmdDelete):
		b.handleDelete(ctx, chatID, from.ID, strings.TrimSpace(text[len(cmdDelete):]))

	default:
		b.reply(chatID, msgUnknownCommand)
	}
}

// isPickCommand matches "что смотрим", with or without a dice prefix
// and trailing punctuation.
func isPickCommand(lower string) bool {
	lower = strings.TrimSpace(strings.TrimPrefix(lower, "🎲"))
	return strings.HasPrefix(lower, cmdPick)
}

func (b *Bot) handleAdd(ctx context.Context, chatID, telegramID int64, title string) {
	if title == "" {
		b.reply(chatID, msgEmptyMovieName)
		return
	}

	result, err := b.wishlistUC.AddMovie(ctx, telegramID, title)
	if err != nil {
		log.Printf("add movie: %v", err)
		return
	}
	if result.AlreadyExists {
		b.reply(chatID, msgMovieAlreadyExists(result.MovieTitle))
	} else {
		b.reply(chatID, msgMovieAdded(result.MovieTitle))
	}
}

func (b *Bot) handleMyList(ctx context.Context, chatID, telegramID int64) {
	movies, err := b.wishlistUC.UserWishlist(ctx, telegramID)
	if err != nil {
		log.Printf("user wishlist: %v", err)
		return
	}
	b.reply(chatID, formatMyList(movies))
}

func (b *Bot) handleOurList(ctx context.Context, chatID int64) {
	movies, err := b.wishlistUC.Intersection(ctx)
	if err != nil {
		log.Printf("intersection: %v", err)
		return
	}
	b.reply(chatID, formatOurList(movies))
}

func (b *Bot) handlePick(ctx context.Context, chatID, telegramID int64) {
	result, err := b.selectionUC.Pick(ctx, telegramID)
	if err != nil {
		log.Printf("pick movie: %v", err)
		return
	}

	switch {
	case result.EmptyReason == usecase.EmptyAllEmpty:
		b.reply(chatID, msgAllListsEmpty)
	case result.EmptyReason == usecase.EmptyAllWatched:
		b.reply(chatID, msgAllWatched)
	case result.FromIntersection:
		b.reply(chatID, msgMovieSelectedIntersection(result.Movie))
	case result.OtherUserName != "":
		b.reply(chatID, msgMovieSelectedFromOther(result.Movie, result.OtherUserName))
	default:
		b.reply(chatID, msgMovieSelectedRandom(result.Movie))
	}
}

func (b *Bot) handleWatched(ctx context.Context, chatID, telegramID int64, text string) {
	title, rating, hasRating := parseWatched(text)

	if !hasRating {
		if title == "" {
			b.reply(chatID, msgAskRating)
			return
		}
		// Remember the title and ask for a rating via buttons.
		key := repo.StatePendingMoviePrefix + strconv.FormatInt(telegramID, 10)
		if err := b.stateRepo.Set(ctx, key, title); err != nil {
			log.Printf("set pending movie: %v", err)
			return
		}
		b.replyWithKeyboard(chatID, msgAskRating, ratingKeyboard())
		return
	}

	if !domain.ValidRating(rating) {
		b.reply(chatID, msgInvalidRating)
		return
	}

	b.finishWatched(ctx, chatID, telegramID, title, rating, nil)
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.From == nil || cb.Message == nil || !strings.HasPrefix(cb.Data, ratingCallbackPrefix) {
		return
	}
	if _, err := b.userUC.Register(ctx, cb.From.ID, displayName(cb.From)); err != nil {
		log.Printf("register user %d: %v", cb.From.ID, err)
		return
	}

	rating, err := strconv.Atoi(strings.TrimPrefix(cb.Data, ratingCallbackPrefix))
	if err != nil {
		return
	}

	key := repo.StatePendingMoviePrefix + strconv.FormatInt(cb.From.ID, 10)
	title, ok, err := b.stateRepo.Get(ctx, key)
	if err != nil {
		log.Printf("get pending movie: %v", err)
		return
	}
	if !ok {
		b.answerCallback(cb.ID, msgNoPendingMovie)
		return
	}
	if _, err := b.stateRepo.Delete(ctx, key); err != nil {
		log.Printf("delete pending movie: %v", err)
	}

	b.finishWatched(ctx, cb.Message.Chat.ID, cb.From.ID, title, rating, cb.Message)
	b.answerCallback(cb.ID, "")
}

// finishWatched records the movie; editMsg, when set, is the keyboard
// message to replace with the confirmation text.
func (b *Bot) finishWatched(ctx context.Context, chatID, telegramID int64, title string, rating int, editMsg *tgbotapi.Message) {
	result, err := b.watchUC.MarkWatched(ctx, telegramID, title, rating)
	switch {
	case errors.Is(err, domain.ErrInvalidRating):
		b.reply(chatID, msgInvalidRating)
		return
	case errors.Is(err, domain.ErrUnknownUser):
		b.reply(chatID, msgUnknownUserWatch)
		return
	case err != nil:
		log.Printf("mark watched: %v", err)
		return
	}

	var text string
	if result.WasInWishlist {
		text = msgMovieWatched(result.MovieTitle, result.Rating)
	} else {
		text = msgMovieAddedToHistory(result.MovieTitle, result.Rating)
	}

	if editMsg != nil {
		edit := tgbotapi.NewEditMessageText(chatID, editMsg.MessageID, text)
		if _, err := b.api.Send(edit); err != nil {
			log.Printf("edit message: %v", err)
		}
		return
	}
	b.reply(chatID, text)
}

func (b *Bot) handleHistory(ctx context.Context, chatID int64) {
	report, err := b.historyUC.Report(ctx)
	if err != nil {
		log.Printf("history report: %v", err)
		return
	}
	if report.IsEmpty {
		b.reply(chatID, msgEmptyHistory)
		return
	}
	b.reply(chatID, formatHistory(report))
}

func (b *Bot) handleDelete(ctx context.Context, chatID, telegramID int64, title string) {
	if title == "" {
		return
	}

	result, err := b.wishlistUC.DeleteMovie(ctx, telegramID, title)
	if err != nil {
		log.Printf("delete movie: %v", err)
		return
	}
	if result.Deleted {
		b.reply(chatID, msgMovieDeleted(result.MovieTitle))
	} else {
		b.reply(chatID, msgMovieNotFound(result.MovieTitle))
	}
}

func (b *Bot) answerCallback(id, text string) {
	if _, err := b.api.Request(tgbotapi.NewCallback(id, text)); err != nil {
		log.Printf("answer callback: %v", err)
	}
}

func displayName(u *tgbotapi.User) string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		name = u.UserName
	}
	return name
}
