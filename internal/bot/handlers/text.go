package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/vladimiradmaev/nutrition-helper/internal/database"
	apperrors "github.com/vladimiradmaev/nutrition-helper/internal/errors"
	"github.com/vladimiradmaev/nutrition-helper/internal/logger"
	"github.com/vladimiradmaev/nutrition-helper/internal/report"
	"github.com/vladimiradmaev/nutrition-helper/internal/services"
	"github.com/vladimiradmaev/nutrition-helper/internal/utils"
)

const (
	minAmountGrams = 0.0
	maxAmountGrams = 5000.0
)

// TextHandler handles free-text food submissions
type TextHandler struct {
	api  *tgbotapi.BotAPI
	deps Dependencies
}

// NewTextHandler creates a new text handler
func NewTextHandler(api *tgbotapi.BotAPI, deps Dependencies) *TextHandler {
	return &TextHandler{
		api:  api,
		deps: deps,
	}
}

// parseSubmission splits "яблоко 200" into the product name and amount in
// grams. The product name is stored in lowercase, exactly as parsed.
func parseSubmission(text string) (string, float64, error) {
	input := strings.ToLower(strings.TrimSpace(text))
	if input == "" {
		return "", 0, apperrors.NewValidationError("Пожалуйста, введите название продукта и его количество, например: яблоко 200")
	}

	parts := strings.Fields(input)
	if len(parts) < 2 {
		return "", 0, apperrors.NewValidationError("Пожалуйста, введите продукт и его количество, например: яблоко 200")
	}

	amount, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil {
		return "", 0, apperrors.NewValidationError("Пожалуйста, введите корректное количество, например: 100")
	}
	if amount <= minAmountGrams || amount > maxAmountGrams {
		return "", 0, apperrors.NewValidationError("Пожалуйста, введите количество от 1 до 5000 грамм.")
	}

	product := strings.Join(parts[:len(parts)-1], " ")
	return product, amount, nil
}

// Handle runs the full submission flow: parse, translate, look up
// nutrients, append to the ledger, confirm. Each external call is a single
// attempt; any failure tells the user to retry and records nothing.
func (h *TextHandler) Handle(ctx context.Context, message *tgbotapi.Message, user *database.User) error {
	product, amount, err := parseSubmission(message.Text)
	if err != nil {
		return h.reply(message.Chat.ID, validationMessage(err))
	}

	translated, err := h.deps.Translator.TranslateProductName(ctx, product)
	if err != nil {
		logger.Warn("Product name translation failed", "product", product, "error", err)
		return h.reply(message.Chat.ID, "Произошла ошибка при переводе названия продукта. Попробуйте снова.")
	}
	logger.Infof("Translated %q to %q", product, translated)

	nutrition, err := h.deps.Nutrition.Lookup(ctx, translated, amount)
	if err != nil {
		logger.Warn("Nutrition lookup failed", "product", translated, "error", err)
		return h.reply(message.Chat.ID, "Извините, не удалось получить информацию о продукте. Проверьте название и попробуйте снова.")
	}

	entry, err := h.deps.Ledger.AppendEntry(ctx, user.TelegramID, message.Chat.ID,
		utils.DateKey(time.Now()), product, amount, services.Nutrients{
			Calories: nutrition.Calories,
			Proteins: nutrition.Proteins,
			Fats:     nutrition.Fats,
			Carbs:    nutrition.Carbs,
		})
	if err != nil {
		logger.Error("Failed to append entry", "telegram_id", user.TelegramID, "error", err)
		return h.reply(message.Chat.ID, "Произошла ошибка при сохранении данных. Пожалуйста, попробуйте еще раз.")
	}
	logger.Infof("Recorded entry %d: user=%d product=%q amount=%.1f", entry.ID, user.TelegramID, product, amount)

	confirmation := fmt.Sprintf(
		"Добавлено: %s - %s г\nКалории: %.2f ккал\nБелки: %.2f г, Жиры: %.2f г, Углеводы: %.2f г",
		product, report.FormatAmount(amount),
		entry.Calories, entry.Proteins, entry.Fats, entry.Carbs,
	)
	return h.reply(message.Chat.ID, confirmation)
}

func (h *TextHandler) reply(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := h.api.Send(msg)
	return err
}

// validationMessage extracts the corrective text of a validation error.
func validationMessage(err error) string {
	if appErr, ok := err.(*apperrors.AppError); ok {
		return appErr.Message
	}
	return "Пожалуйста, введите название продукта и его количество, например: яблоко 200"
}
