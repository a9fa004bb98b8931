package menus

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vladimiradmaev/nutrition-helper/internal/bot/keyboards"
)

// SendMainMenu sends the welcome text with the main menu keyboard
func SendMainMenu(api *tgbotapi.BotAPI, chatID int64) error {
	text := `Добро пожаловать в бот "Здоровое питание"!

Отправьте название продукта и его количество в граммах, например:
яблоко 200
рис 100
куриная грудка 200

Я запишу продукт и посчитаю калории, белки, жиры и углеводы.
Каждый день в 23:59 вы получите итоговый отчет за день.

Используйте команду /help для просмотра всех доступных команд.`

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = keyboards.MainMenu()
	_, err := api.Send(msg)
	return err
}

// SendHelp sends the command reference
func SendHelp(api *tgbotapi.BotAPI, chatID int64) error {
	text := `📖 *Доступные команды:*

/start - Начать работу с ботом
/help - Показать список доступных команд
/report - Получить отчет о потребленных КБЖУ за сегодня

💬 *Использование:* Отправьте название продукта и его количество, например:
` + "`яблоко 200`\n`рис 100`\n`куриная грудка 200`"

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	_, err := api.Send(msg)
	return err
}
