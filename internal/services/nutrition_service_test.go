package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/vladimiradmaev/nutrition-helper/internal/errors"
)

func newTestNutritionService(t *testing.T, handler http.HandlerFunc) *NutritionService {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc := NewNutritionService("test-id", "test-key", 2*time.Second)
	svc.baseURL = srv.URL
	return svc
}

func TestLookupSuccess(t *testing.T) {
	var gotIngr string
	svc := newTestNutritionService(t, func(w http.ResponseWriter, r *http.Request) {
		gotIngr = r.URL.Query().Get("ingr")
		assert.Equal(t, "test-id", r.URL.Query().Get("app_id"))
		assert.Equal(t, "test-key", r.URL.Query().Get("app_key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"calories": 104,
			"totalNutrients": {
				"PROCNT": {"quantity": 0.52},
				"FAT": {"quantity": 0.34},
				"CHOCDF": {"quantity": 27.61}
			}
		}`))
	})

	result, err := svc.Lookup(context.Background(), "apple", 200)
	require.NoError(t, err)
	assert.Equal(t, "200g apple", gotIngr)
	assert.Equal(t, 104.0, result.Calories)
	assert.Equal(t, 0.52, result.Proteins)
	assert.Equal(t, 0.34, result.Fats)
	assert.Equal(t, 27.61, result.Carbs)
}

func TestLookupProductNotFound(t *testing.T) {
	svc := newTestNutritionService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"calories": 0, "totalNutrients": {}}`))
	})

	result, err := svc.Lookup(context.Background(), "nonsense", 100)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeLookup))
}

func TestLookupServerError(t *testing.T) {
	svc := newTestNutritionService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := svc.Lookup(context.Background(), "apple", 100)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeLookup))
}

func TestLookupContextCancelled(t *testing.T) {
	svc := newTestNutritionService(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.Lookup(ctx, "apple", 100)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeLookup))
}
