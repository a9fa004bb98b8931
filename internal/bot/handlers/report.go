package handlers

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vladimiradmaev/nutrition-helper/internal/bot/keyboards"
	"github.com/vladimiradmaev/nutrition-helper/internal/interfaces"
	"github.com/vladimiradmaev/nutrition-helper/internal/logger"
	"github.com/vladimiradmaev/nutrition-helper/internal/report"
	"github.com/vladimiradmaev/nutrition-helper/internal/utils"
)

// sendDailyReport delivers today's report to the chat. Shared by the
// /report command and the report menu button.
func sendDailyReport(ctx context.Context, api *tgbotapi.BotAPI, ledger interfaces.LedgerServiceInterface, chatID, telegramID int64) error {
	date := utils.DateKey(time.Now())

	entries, err := ledger.EntriesForUserOnDate(ctx, telegramID, date)
	if err != nil {
		logger.Error("Failed to read entries for report", "telegram_id", telegramID, "error", err)
		msg := tgbotapi.NewMessage(chatID, "Произошла ошибка при подготовке отчета. Пожалуйста, попробуйте еще раз.")
		_, sendErr := api.Send(msg)
		return sendErr
	}

	if len(entries) == 0 {
		msg := tgbotapi.NewMessage(chatID, report.EmptyDayMessage)
		_, err := api.Send(msg)
		return err
	}

	text := report.Daily(date, entries, report.Aggregate(entries))
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = keyboards.ReportMenu()
	_, err = api.Send(msg)
	return err
}
