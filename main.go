package main

import (
	"context"
	"log"
	"os/signal"
	"sync"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/vladimiradmaev/nutrition-helper/internal/bot"
	"github.com/vladimiradmaev/nutrition-helper/internal/bot/handlers"
	"github.com/vladimiradmaev/nutrition-helper/internal/config"
	"github.com/vladimiradmaev/nutrition-helper/internal/database"
	"github.com/vladimiradmaev/nutrition-helper/internal/logger"
	"github.com/vladimiradmaev/nutrition-helper/internal/scheduler"
	"github.com/vladimiradmaev/nutrition-helper/internal/services"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting Nutrition Helper Bot...")

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	log.Println("Configuration loaded successfully")

	db, err := database.NewPostgresDB(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Initialize services
	ledgerService := services.NewLedgerService(db)
	translationService := services.NewTranslationService(cfg.GeminiAPIKey)
	nutritionService := services.NewNutritionService(cfg.EdamamAppID, cfg.EdamamAppKey, cfg.LookupTimeout)
	log.Println("Services initialized successfully")

	// Initialize bot
	telegramBot, err := bot.NewBot(cfg.TelegramToken, handlers.Dependencies{
		Ledger:     ledgerService,
		Translator: translationService,
		Nutrition:  nutritionService,
	})
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}
	log.Println("Bot initialized successfully")

	dailyScheduler := scheduler.New(ledgerService, telegramBot, cfg.ReportTime)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := telegramBot.Start(ctx); err != nil && ctx.Err() == nil {
			log.Printf("Bot stopped with error: %v", err)
			stop()
		}
	}()
	go func() {
		defer wg.Done()
		if err := dailyScheduler.Run(ctx); err != nil && ctx.Err() == nil {
			log.Printf("Scheduler stopped with error: %v", err)
			stop()
		}
	}()

	log.Println("Bot is running. Press Ctrl+C to stop.")
	wg.Wait()
}
