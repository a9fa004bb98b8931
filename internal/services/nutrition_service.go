package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	apperrors "github.com/vladimiradmaev/nutrition-helper/internal/errors"
)

const edamamBaseURL = "https://api.edamam.com/api/nutrition-data"

// NutritionResult holds the macronutrient values for one product portion.
type NutritionResult struct {
	Calories float64
	Proteins float64
	Fats     float64
	Carbs    float64
}

// NutritionService resolves a product name and amount to macronutrient
// values via the Edamam nutrition-data API. One bounded attempt per
// lookup, no retries.
type NutritionService struct {
	appID      string
	appKey     string
	baseURL    string
	httpClient *http.Client
}

func NewNutritionService(appID, appKey string, timeout time.Duration) *NutritionService {
	return &NutritionService{
		appID:   appID,
		appKey:  appKey,
		baseURL: edamamBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// edamamResponse mirrors the fields of the nutrition-data payload we read.
// PROCNT/FAT/CHOCDF are Edamam's codes for protein, fat and carbohydrate.
type edamamResponse struct {
	Calories       float64 `json:"calories"`
	TotalNutrients map[string]struct {
		Quantity float64 `json:"quantity"`
	} `json:"totalNutrients"`
}

// Lookup fetches nutrient values for the given product and amount in grams.
// An unrecognized product (empty totalNutrients) is a lookup failure: no
// entry must be recorded for it.
func (s *NutritionService) Lookup(ctx context.Context, product string, amountGrams float64) (*NutritionResult, error) {
	params := url.Values{}
	params.Set("app_id", s.appID)
	params.Set("app_key", s.appKey)
	params.Set("ingr", fmt.Sprintf("%sg %s", strconv.FormatFloat(amountGrams, 'f', -1, 64), product))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, apperrors.NewLookupError(err, "nutrition")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewLookupError(err, "nutrition")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewLookupError(fmt.Errorf("unexpected status %d", resp.StatusCode), "nutrition")
	}

	var data edamamResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, apperrors.NewLookupError(err, "nutrition")
	}

	if len(data.TotalNutrients) == 0 {
		return nil, apperrors.NewLookupError(fmt.Errorf("product %q not found", product), "nutrition").
			WithContext("product", product)
	}

	return &NutritionResult{
		Calories: data.Calories,
		Proteins: data.TotalNutrients["PROCNT"].Quantity,
		Fats:     data.TotalNutrients["FAT"].Quantity,
		Carbs:    data.TotalNutrients["CHOCDF"].Quantity,
	}, nil
}
