package bot

import (
	"fmt"
	"strings"

	"moviebot/internal/biz/usecase"
)

// Reply texts. The bot speaks Russian, emoji included.
const (
	msgWelcome = `👋 Привет! Я помогу вам выбирать фильмы на вечер.

Как это работает:
1. Добавляйте фильмы: «хочу посмотреть [название]»
2. Когда захотите спросите: «что смотрим?»
3. После просмотра: «посмотрели [название], [оценка]/10»`

	msgHelp = `📖 Команды:

• «хочу посмотреть [название]» — добавить фильм
• «мой список» — твои фильмы
• «наш список» — фильмы которые хотите оба
• «что смотрим?» — выбрать фильм на вечер
• «посмотрели [название], [оценка]» — отметить просмотр
• «история» — что смотрели за год
• «удали [название]» — убрать из списка`

	msgUnknownCommand   = "🤔 Не понял. Напиши /help чтобы увидеть доступные команды"
	msgEmptyMovieName   = "🎬 Какой фильм добавить? Напиши «хочу посмотреть [название]»"
	msgEmptyWishlist    = "📋 Твой список пуст. Напиши «хочу посмотреть [название]» чтобы добавить фильм"
	msgEmptyIntersect   = "💑 Пока нет фильмов которые хотите оба"
	msgAllListsEmpty    = "😅 Списки пусты! Добавьте фильмы командой «хочу посмотреть [название]»"
	msgAllWatched       = "🍿 Вы уже всё посмотрели! Добавьте новые фильмы командой «хочу посмотреть [название]»"
	msgEmptyHistory     = "📚 История пуста. Самое время что-нибудь посмотреть! 🍿"
	msgAskRating        = "Как вам фильм? Оцените от 1 до 10"
	msgInvalidRating    = "🤔 Оценка должна быть от 1 до 10"
	msgNoPendingMovie   = "Нет фильма, ожидающего оценки"
	msgUnknownUserWatch = "🤔 Сначала напиши /start"
)

func msgMovieAdded(title string) string {
	return fmt.Sprintf("✅ Добавил «%s» в твой список", title)
}

func msgMovieAlreadyExists(title string) string {
	return fmt.Sprintf("ℹ️ «%s» уже есть в твоём списке", title)
}

func msgMovieDeleted(title string) string {
	return fmt.Sprintf("🗑 Удалил «%s» из твоего списка", title)
}

func msgMovieNotFound(title string) string {
	return fmt.Sprintf("🤷 «%s» нет в твоём списке", title)
}

func msgMovieWatched(title string, rating int) string {
	return fmt.Sprintf("🎬 «%s» — %d/10. Записал!", title, rating)
}

func msgMovieAddedToHistory(title string, rating int) string {
	return fmt.Sprintf("📝 «%s» не было в списках, но записал в историю — %d/10", title, rating)
}

func msgMovieSelectedIntersection(title string) string {
	return fmt.Sprintf("🎬 Вы оба хотите посмотреть «%s»! Отличный выбор на вечер", title)
}

func msgMovieSelectedRandom(title string) string {
	return fmt.Sprintf("🎲 Пересечений нет, выбираю случайный: «%s»", title)
}

func msgMovieSelectedFromOther(title, otherName string) string {
	return fmt.Sprintf("🎬 Твой список пуст, выбираю из списка %s: «%s»", otherName, title)
}

func formatMyList(movies []string) string {
	if len(movies) == 0 {
		return msgEmptyWishlist
	}
	lines := []string{"📋 Твой список:"}
	for i, movie := range movies {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, movie))
	}
	return strings.Join(lines, "\n")
}

func formatOurList(movies []string) string {
	if len(movies) == 0 {
		return msgEmptyIntersect
	}
	lines := []string{"💑 Фильмы которые хотите оба:"}
	for i, movie := range movies {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, movie))
	}
	return strings.Join(lines, "\n")
}

func formatHistory(report *usecase.HistoryReport) string {
	lines := []string{"📚 История просмотров:"}
	for _, month := range report.Months {
		lines = append(lines, "", month.MonthName+":")
		for _, movie := range month.Movies {
			lines = append(lines, fmt.Sprintf("• %s — %d/10 (%s)",
				movie.MovieTitle, movie.Rating, usecase.FormatDate(movie.WatchedAt)))
		}
	}
	lines = append(lines, "", fmt.Sprintf("Всего за год: %d фильма, средняя оценка: %.1f",
		report.TotalCount, report.AverageRating))
	return strings.Join(lines, "\n")
}
