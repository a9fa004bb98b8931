package services

import (
	"context"
	"errors"

	"github.com/vladimiradmaev/nutrition-helper/internal/database"
	apperrors "github.com/vladimiradmaev/nutrition-helper/internal/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Nutrients holds the values resolved by the lookup provider for one entry.
type Nutrients struct {
	Calories float64
	Proteins float64
	Fats     float64
	Carbs    float64
}

// LedgerService owns all User and Entry rows. Entries are append-only and
// every entry insert upserts its user in the same transaction, so an entry
// can never reference a missing user.
type LedgerService struct {
	db *gorm.DB
}

func NewLedgerService(db *gorm.DB) *LedgerService {
	return &LedgerService{db: db}
}

// RegisterUser creates the user on first contact. Idempotent and safe under
// concurrent calls for the same telegram ID: uniqueness is enforced by the
// telegram_id index, not by a pre-check. The chat ID recorded by the first
// successful insert wins.
func (s *LedgerService) RegisterUser(ctx context.Context, telegramID, chatID int64) (*database.User, error) {
	user := database.User{TelegramID: telegramID, ChatID: chatID}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "telegram_id"}}, DoNothing: true}).
		Create(&user).Error
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	// The insert is a no-op when the row already exists; read back the
	// canonical row either way.
	if err := s.db.WithContext(ctx).Where("telegram_id = ?", telegramID).First(&user).Error; err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return &user, nil
}

// AppendEntry records one immutable food entry for the given calendar date.
// The user row is upserted inside the same transaction, so the call is
// atomic: either both the user and the entry are committed or neither is.
func (s *LedgerService) AppendEntry(ctx context.Context, telegramID, chatID int64, date, product string, amountGrams float64, n Nutrients) (*database.Entry, error) {
	var entry database.Entry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := database.User{TelegramID: telegramID, ChatID: chatID}
		if err := tx.
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "telegram_id"}}, DoNothing: true}).
			Create(&user).Error; err != nil {
			return err
		}
		if user.ID == 0 {
			if err := tx.Where("telegram_id = ?", telegramID).First(&user).Error; err != nil {
				return err
			}
		}

		entry = database.Entry{
			UserID:      user.ID,
			Date:        date,
			Product:     product,
			AmountGrams: amountGrams,
			Calories:    n.Calories,
			Proteins:    n.Proteins,
			Fats:        n.Fats,
			Carbs:       n.Carbs,
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return &entry, nil
}

// EntriesForUserOnDate returns the user's entries for one date in insertion
// order. A user with no entries (or an unknown user) yields an empty slice,
// not an error.
func (s *LedgerService) EntriesForUserOnDate(ctx context.Context, telegramID int64, date string) ([]database.Entry, error) {
	var user database.User
	if err := s.db.WithContext(ctx).Where("telegram_id = ?", telegramID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []database.Entry{}, nil
		}
		return nil, apperrors.NewStorageError(err)
	}

	var entries []database.Entry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", user.ID, date).
		Order("id ASC").
		Find(&entries).Error; err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return entries, nil
}

// AllUsers returns every registered user. Used by the daily broadcast to
// snapshot its recipients; order is unspecified.
func (s *LedgerService) AllUsers(ctx context.Context) ([]database.User, error) {
	var users []database.User
	if err := s.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return users, nil
}
