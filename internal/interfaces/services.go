package interfaces

import (
	"context"

	"github.com/vladimiradmaev/nutrition-helper/internal/database"
	"github.com/vladimiradmaev/nutrition-helper/internal/services"
)

// LedgerServiceInterface defines the contract for the entry ledger
type LedgerServiceInterface interface {
	RegisterUser(ctx context.Context, telegramID, chatID int64) (*database.User, error)
	AppendEntry(ctx context.Context, telegramID, chatID int64, date, product string, amountGrams float64, n services.Nutrients) (*database.Entry, error)
	EntriesForUserOnDate(ctx context.Context, telegramID int64, date string) ([]database.Entry, error)
	AllUsers(ctx context.Context) ([]database.User, error)
}

// TranslationServiceInterface defines the contract for product name translation
type TranslationServiceInterface interface {
	TranslateProductName(ctx context.Context, name string) (string, error)
}

// NutritionServiceInterface defines the contract for nutrient lookups
type NutritionServiceInterface interface {
	Lookup(ctx context.Context, product string, amountGrams float64) (*services.NutritionResult, error)
}
