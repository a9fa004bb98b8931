package database

import (
	"fmt"
	"log"
	"path/filepath"
	"runtime"

	"github.com/vladimiradmaev/nutrition-helper/internal/config"
	"github.com/vladimiradmaev/nutrition-helper/internal/database/migrations"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// User is a registered bot user. ChatID is the address daily reports are
// delivered to; it is captured on first contact and never updated.
type User struct {
	gorm.Model
	TelegramID int64 `gorm:"uniqueIndex"`
	ChatID     int64
}

// Entry is one recorded food item. Rows are append-only: there is no
// update or delete path anywhere in the application.
type Entry struct {
	gorm.Model
	UserID      uint `gorm:"index:idx_entries_user_date,priority:1"`
	User        User
	Date        string `gorm:"index:idx_entries_user_date,priority:2"` // "2006-01-02"
	Product     string
	AmountGrams float64
	Calories    float64
	Proteins    float64
	Fats        float64
	Carbs       float64
}

func NewPostgresDB(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get the directory of the current file
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return nil, fmt.Errorf("failed to get current file path")
	}
	migrationsDir := filepath.Join(filepath.Dir(filename), "migrations")

	// Load and run migrations
	if err := migrations.LoadSQLMigrations(db, migrationsDir); err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database connection established and migrations completed")
	return db, nil
}

// Migrate brings the schema up to date. Split from NewPostgresDB so tests
// can run it against an in-memory database.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&User{}, &Entry{}); err != nil {
		return fmt.Errorf("failed to auto-migrate database: %w", err)
	}

	if err := migrations.RunMigrations(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
