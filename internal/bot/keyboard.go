package bot

import (
	"stylet/internal/domain"
	"stylet/internal/telegram"
)

// keyboardRowLen is how many variant buttons fit on one keyboard row.
const keyboardRowLen = 3

// keyboard lays the offered variants out as an inline keyboard, three
// buttons per row, in catalog order.
func keyboard(offered []domain.Variant) *telegram.InlineKeyboardMarkup {
	var rows [][]telegram.InlineKeyboardButton
	for start := 0; start < len(offered); start += keyboardRowLen {
		end := min(start+keyboardRowLen, len(offered))
		row := make([]telegram.InlineKeyboardButton, 0, end-start)
		for _, v := range offered[start:end] {
			row = append(row, telegram.InlineKeyboardButton{
				Text:         v.Label,
				CallbackData: callbackPrefix + v.Code.String(),
			})
		}
		rows = append(rows, row)
	}
	return &telegram.InlineKeyboardMarkup{InlineKeyboard: rows}
}
