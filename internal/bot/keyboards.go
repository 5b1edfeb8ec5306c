package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ratingCallbackPrefix prefixes rating button callback data: "rate:7".
const ratingCallbackPrefix = "rate:"

// ratingKeyboard builds the inline 1-10 rating keyboard, two rows of five.
func ratingKeyboard() tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, span := range [][2]int{{1, 5}, {6, 10}} {
		var row []tgbotapi.InlineKeyboardButton
		for i := span[0]; i <= span[1]; i++ {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(
				fmt.Sprintf("%d", i),
				fmt.Sprintf("%s%d", ratingCallbackPrefix, i),
			))
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
