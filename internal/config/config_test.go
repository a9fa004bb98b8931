package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_BOT_TOKEN", "test-token")
	t.Setenv("EDAMAM_APP_ID", "test-app-id")
	t.Setenv("EDAMAM_APP_KEY", "test-app-key")
	t.Setenv("GEMINI_API_KEY", "test-gemini-key")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DAILY_REPORT_TIME", "")
	t.Setenv("NUTRITION_TIMEOUT_SECONDS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.TelegramToken)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "nutrition_helper", cfg.DB.DBName)
	assert.Equal(t, 23, cfg.ReportTime.Hour)
	assert.Equal(t, 59, cfg.ReportTime.Minute)
	assert.Equal(t, 0, cfg.ReportTime.Second)
	assert.Equal(t, 10*time.Second, cfg.LookupTimeout)
}

func TestLoadReportsAllMissingVariables(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("EDAMAM_APP_ID", "")
	t.Setenv("EDAMAM_APP_KEY", "x")
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_BOT_TOKEN")
	assert.Contains(t, err.Error(), "EDAMAM_APP_ID")
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
	assert.NotContains(t, err.Error(), "EDAMAM_APP_KEY")
}

func TestLoadCustomReportTime(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DAILY_REPORT_TIME", "21:30:15")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 21, cfg.ReportTime.Hour)
	assert.Equal(t, 30, cfg.ReportTime.Minute)
	assert.Equal(t, 15, cfg.ReportTime.Second)
}

func TestLoadInvalidReportTime(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DAILY_REPORT_TIME", "25:00:00")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DAILY_REPORT_TIME")
}

func TestLoadInvalidTimeout(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("NUTRITION_TIMEOUT_SECONDS", "-1")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NUTRITION_TIMEOUT_SECONDS")
}
