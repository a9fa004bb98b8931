package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/vladimiradmaev/nutrition-helper/internal/logger"
	"github.com/vladimiradmaev/nutrition-helper/internal/utils"
)

type Config struct {
	TelegramToken string
	EdamamAppID   string
	EdamamAppKey  string
	GeminiAPIKey  string
	DB            DBConfig
	Logger        LoggerConfig
	ReportTime    utils.TimeOfDay
	LookupTimeout time.Duration
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type LoggerConfig struct {
	Level      logger.LogLevel
	OutputPath string
	Format     string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return logger.LevelDebug
	case "info":
		return logger.LevelInfo
	case "warn", "warning":
		return logger.LevelWarn
	case "error":
		return logger.LevelError
	default:
		return logger.LevelInfo
	}
}

// Load reads configuration from the environment. Credentials for the
// Telegram transport, the Edamam nutrition API and the Gemini translator
// are required; a missing one fails startup.
func Load() (*Config, error) {
	var missing []string
	requireEnv := func(key string) string {
		value := os.Getenv(key)
		if value == "" {
			missing = append(missing, key)
		}
		return value
	}

	cfg := &Config{
		TelegramToken: requireEnv("TELEGRAM_BOT_TOKEN"),
		EdamamAppID:   requireEnv("EDAMAM_APP_ID"),
		EdamamAppKey:  requireEnv("EDAMAM_APP_KEY"),
		GeminiAPIKey:  requireEnv("GEMINI_API_KEY"),
		DB: DBConfig{
			Host:     getEnvOrDefault("DB_HOST", "localhost"),
			Port:     getEnvOrDefault("DB_PORT", "5432"),
			User:     getEnvOrDefault("DB_USER", "postgres"),
			Password: getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrDefault("DB_NAME", "nutrition_helper"),
		},
		Logger: LoggerConfig{
			Level:      parseLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
			OutputPath: getEnvOrDefault("LOG_OUTPUT", "logs/app.log"),
			Format:     getEnvOrDefault("LOG_FORMAT", "json"),
		},
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	reportTime, err := utils.ParseTimeOfDay(getEnvOrDefault("DAILY_REPORT_TIME", "23:59:00"))
	if err != nil {
		return nil, fmt.Errorf("invalid DAILY_REPORT_TIME: %w", err)
	}
	cfg.ReportTime = reportTime

	timeoutSec, err := strconv.Atoi(getEnvOrDefault("NUTRITION_TIMEOUT_SECONDS", "10"))
	if err != nil || timeoutSec <= 0 {
		return nil, fmt.Errorf("invalid NUTRITION_TIMEOUT_SECONDS: %q", os.Getenv("NUTRITION_TIMEOUT_SECONDS"))
	}
	cfg.LookupTimeout = time.Duration(timeoutSec) * time.Second

	return cfg, nil
}
