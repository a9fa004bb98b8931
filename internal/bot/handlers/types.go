package handlers

import (
	"github.com/vladimiradmaev/nutrition-helper/internal/interfaces"
)

// Dependencies holds all service dependencies for handlers
type Dependencies struct {
	Ledger     interfaces.LedgerServiceInterface
	Translator interfaces.TranslationServiceInterface
	Nutrition  interfaces.NutritionServiceInterface
}
