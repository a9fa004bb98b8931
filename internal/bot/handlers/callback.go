package handlers

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vladimiradmaev/nutrition-helper/internal/bot/menus"
	"github.com/vladimiradmaev/nutrition-helper/internal/database"
	"github.com/vladimiradmaev/nutrition-helper/internal/logger"
)

// CallbackHandler handles inline keyboard button clicks
type CallbackHandler struct {
	api  *tgbotapi.BotAPI
	deps Dependencies
}

// NewCallbackHandler creates a new callback handler
func NewCallbackHandler(api *tgbotapi.BotAPI, deps Dependencies) *CallbackHandler {
	return &CallbackHandler{
		api:  api,
		deps: deps,
	}
}

// Handle processes a callback query
func (h *CallbackHandler) Handle(ctx context.Context, query *tgbotapi.CallbackQuery, user *database.User) error {
	chatID := query.Message.Chat.ID

	switch query.Data {
	case "daily_report":
		return sendDailyReport(ctx, h.api, h.deps.Ledger, chatID, user.TelegramID)
	case "help":
		return menus.SendHelp(h.api, chatID)
	case "main_menu":
		return menus.SendMainMenu(h.api, chatID)
	default:
		logger.Warn("Unknown callback data", "data", query.Data)
		return nil
	}
}
