package scheduler

import (
	"context"
	"time"

	"github.com/vladimiradmaev/nutrition-helper/internal/database"
	apperrors "github.com/vladimiradmaev/nutrition-helper/internal/errors"
	"github.com/vladimiradmaev/nutrition-helper/internal/logger"
	"github.com/vladimiradmaev/nutrition-helper/internal/report"
	"github.com/vladimiradmaev/nutrition-helper/internal/utils"
)

// Ledger is the slice of the entry ledger the broadcast needs.
type Ledger interface {
	AllUsers(ctx context.Context) ([]database.User, error)
	EntriesForUserOnDate(ctx context.Context, telegramID int64, date string) ([]database.Entry, error)
}

// Notifier delivers a report to a user's chat.
type Notifier interface {
	SendMessage(chatID int64, text string) error
}

// Scheduler fires once a day at a fixed local time and sends every
// registered user their report for that date. There is no record of
// "already sent today": if the process restarts and the timer fires again
// on the same date, users get a duplicate report. Accepted behavior.
type Scheduler struct {
	ledger   Ledger
	notifier Notifier
	at       utils.TimeOfDay
}

func New(ledger Ledger, notifier Notifier, at utils.TimeOfDay) *Scheduler {
	return &Scheduler{
		ledger:   ledger,
		notifier: notifier,
		at:       at,
	}
}

// NextFire returns the next moment at or after now matching the configured
// wall-clock time, in now's location.
func NextFire(now time.Time, at utils.TimeOfDay) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), at.Hour, at.Minute, at.Second, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Run blocks until ctx is cancelled, firing RunCycle at the configured
// time each day.
func (s *Scheduler) Run(ctx context.Context) error {
	logger.Infof("Daily report scheduler started, firing at %s", s.at)

	for {
		next := NextFire(time.Now(), s.at)
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			logger.Info("Daily report scheduler stopped")
			return ctx.Err()
		case now := <-timer.C:
			s.RunCycle(ctx, now)
		}
	}
}

// RunCycle broadcasts the day's report to every user known at the start of
// the cycle. A failure for one user is logged and does not stop delivery
// to the rest.
func (s *Scheduler) RunCycle(ctx context.Context, now time.Time) {
	users, err := s.ledger.AllUsers(ctx)
	if err != nil {
		logger.Error("Failed to list users for daily broadcast", "error", err)
		return
	}

	date := utils.DateKey(now)
	logger.Infof("Starting daily broadcast for %s to %d users", date, len(users))

	for _, user := range users {
		entries, err := s.ledger.EntriesForUserOnDate(ctx, user.TelegramID, date)
		if err != nil {
			logger.Error("Failed to read entries for daily broadcast",
				"telegram_id", user.TelegramID, "error", err)
			continue
		}

		var text string
		if len(entries) == 0 {
			text = report.EmptyDayMessage
		} else {
			text = report.Scheduled(date, entries, report.Aggregate(entries))
		}

		if err := s.notifier.SendMessage(user.ChatID, text); err != nil {
			deliveryErr := apperrors.NewDeliveryError(err, user.ChatID)
			logger.Error("Failed to deliver daily report",
				"telegram_id", user.TelegramID, "error", deliveryErr)
			continue
		}
		logger.Infof("Daily report sent to user %d (chat %d)", user.TelegramID, user.ChatID)
	}
}
