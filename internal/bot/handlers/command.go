package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vladimiradmaev/nutrition-helper/internal/bot/menus"
	"github.com/vladimiradmaev/nutrition-helper/internal/database"
	"github.com/vladimiradmaev/nutrition-helper/internal/logger"
)

// CommandHandler handles bot commands
type CommandHandler struct {
	api  *tgbotapi.BotAPI
	deps Dependencies
}

// NewCommandHandler creates a new command handler
func NewCommandHandler(api *tgbotapi.BotAPI, deps Dependencies) *CommandHandler {
	return &CommandHandler{
		api:  api,
		deps: deps,
	}
}

// Handle processes a command message
func (h *CommandHandler) Handle(ctx context.Context, message *tgbotapi.Message, user *database.User) error {
	logger.Infof("Handling command %s from user %d", message.Command(), user.TelegramID)

	switch message.Command() {
	case "start":
		return menus.SendMainMenu(h.api, message.Chat.ID)
	case "help":
		return menus.SendHelp(h.api, message.Chat.ID)
	case "report":
		return sendDailyReport(ctx, h.api, h.deps.Ledger, message.Chat.ID, user.TelegramID)
	default:
		return h.handleUnknownCommand(message.Chat.ID)
	}
}

// handleUnknownCommand handles unknown commands
func (h *CommandHandler) handleUnknownCommand(chatID int64) error {
	msg := tgbotapi.NewMessage(chatID, "Извините, я не понимаю эту команду. Отправьте название продукта и его количество, например: яблоко 200")
	_, err := h.api.Send(msg)
	return err
}
