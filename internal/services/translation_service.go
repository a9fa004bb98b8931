package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	apperrors "github.com/vladimiradmaev/nutrition-helper/internal/errors"
	"google.golang.org/api/option"
)

// TranslationService maps free-text Russian product names into English,
// the only language the nutrition provider understands.
type TranslationService struct {
	client *genai.Client
}

func NewTranslationService(apiKey string) *TranslationService {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		panic(fmt.Sprintf("Failed to create Gemini client: %v", err))
	}

	return &TranslationService{client: client}
}

const translatePrompt = `You are a food name translator. Translate the food product name from Russian to English.

REQUIREMENTS:
- Return ONLY the translated name
- Use the common everyday English name of the product
- Lowercase, no punctuation, no explanations

Product: %s`

// TranslateProductName performs a single translation attempt. There is no
// retry: a failed round-trip surfaces to the user immediately.
func (s *TranslationService) TranslateProductName(ctx context.Context, name string) (string, error) {
	model := s.client.GenerativeModel("gemini-1.5-flash")

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(translatePrompt, name)))
	if err != nil {
		return "", apperrors.NewLookupError(err, "translation")
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", apperrors.NewLookupError(fmt.Errorf("empty response"), "translation")
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", apperrors.NewLookupError(fmt.Errorf("unexpected response part type"), "translation")
	}

	translated := strings.TrimSpace(string(text))
	if translated == "" {
		return "", apperrors.NewLookupError(fmt.Errorf("translation of %q produced no result", name), "translation")
	}
	return translated, nil
}
