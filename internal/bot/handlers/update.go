package handlers

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vladimiradmaev/nutrition-helper/internal/logger"
)

// UpdateHandler handles telegram updates and coordinates other handlers
type UpdateHandler struct {
	api             *tgbotapi.BotAPI
	deps            Dependencies
	commandHandler  *CommandHandler
	textHandler     *TextHandler
	callbackHandler *CallbackHandler
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(api *tgbotapi.BotAPI, deps Dependencies) *UpdateHandler {
	return &UpdateHandler{
		api:             api,
		deps:            deps,
		commandHandler:  NewCommandHandler(api, deps),
		textHandler:     NewTextHandler(api, deps),
		callbackHandler: NewCallbackHandler(api, deps),
	}
}

// Handle processes a telegram update
func (h *UpdateHandler) Handle(ctx context.Context, update tgbotapi.Update) error {
	if update.Message == nil && update.CallbackQuery == nil {
		return nil
	}

	var userID, chatID int64
	if update.Message != nil {
		userID = update.Message.From.ID
		chatID = update.Message.Chat.ID
	} else {
		userID = update.CallbackQuery.From.ID
		chatID = update.CallbackQuery.Message.Chat.ID
	}

	// Every interaction registers the user; repeat calls are no-ops.
	user, err := h.deps.Ledger.RegisterUser(ctx, userID, chatID)
	if err != nil {
		logger.Error("Failed to register user", "telegram_id", userID, "error", err)
		return fmt.Errorf("failed to register user: %w", err)
	}

	if update.CallbackQuery != nil {
		// Answer callback query to remove loading state
		callback := tgbotapi.NewCallback(update.CallbackQuery.ID, "")
		if _, err := h.api.Request(callback); err != nil {
			logger.Warn("Failed to answer callback query", "error", err)
		}
		return h.callbackHandler.Handle(ctx, update.CallbackQuery, user)
	}

	if update.Message.IsCommand() {
		return h.commandHandler.Handle(ctx, update.Message, user)
	}

	if update.Message.Text != "" {
		return h.textHandler.Handle(ctx, update.Message, user)
	}

	return nil
}
