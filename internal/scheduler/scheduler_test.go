package scheduler

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vladimiradmaev/nutrition-helper/internal/database"
	"github.com/vladimiradmaev/nutrition-helper/internal/logger"
	"github.com/vladimiradmaev/nutrition-helper/internal/report"
	"github.com/vladimiradmaev/nutrition-helper/internal/utils"
)

func TestMain(m *testing.M) {
	if err := logger.InitWithConfig(logger.Config{
		Level:      logger.LevelError,
		OutputPath: "stdout",
		Format:     "text",
	}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeLedger struct {
	users      []database.User
	entries    map[int64][]database.Entry
	entriesErr map[int64]error
}

func (f *fakeLedger) AllUsers(context.Context) ([]database.User, error) {
	return f.users, nil
}

func (f *fakeLedger) EntriesForUserOnDate(_ context.Context, telegramID int64, _ string) ([]database.Entry, error) {
	if err := f.entriesErr[telegramID]; err != nil {
		return nil, err
	}
	return f.entries[telegramID], nil
}

type fakeNotifier struct {
	sent    map[int64]string
	failFor map[int64]error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{sent: make(map[int64]string), failFor: make(map[int64]error)}
}

func (f *fakeNotifier) SendMessage(chatID int64, text string) error {
	if err := f.failFor[chatID]; err != nil {
		return err
	}
	f.sent[chatID] = text
	return nil
}

func at(s string) utils.TimeOfDay {
	t, err := utils.ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNextFireBeforeTodaysTime(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.Local)
	next := NextFire(now, at("23:59:00"))
	assert.Equal(t, time.Date(2026, 8, 30, 23, 59, 0, 0, time.Local), next)
}

func TestNextFireAfterTodaysTime(t *testing.T) {
	now := time.Date(2026, 8, 30, 23, 59, 30, 0, time.Local)
	next := NextFire(now, at("23:59:00"))
	assert.Equal(t, time.Date(2026, 8, 31, 23, 59, 0, 0, time.Local), next)
}

func TestNextFireExactlyAtTime(t *testing.T) {
	now := time.Date(2026, 8, 30, 23, 59, 0, 0, time.Local)
	next := NextFire(now, at("23:59:00"))
	assert.Equal(t, time.Date(2026, 8, 31, 23, 59, 0, 0, time.Local), next)
}

func TestRunCycleDeliversReports(t *testing.T) {
	now := time.Date(2026, 8, 30, 23, 59, 0, 0, time.Local)
	entries := []database.Entry{
		{Product: "яблоко", AmountGrams: 200, Calories: 104, Proteins: 0.5, Fats: 0.3, Carbs: 28},
	}
	ledger := &fakeLedger{
		users:   []database.User{{TelegramID: 1, ChatID: 100}},
		entries: map[int64][]database.Entry{1: entries},
	}
	notifier := newFakeNotifier()

	New(ledger, notifier, at("23:59:00")).RunCycle(context.Background(), now)

	require.Contains(t, notifier.sent, int64(100))
	expected := report.Scheduled("2026-08-30", entries, report.Aggregate(entries))
	assert.Equal(t, expected, notifier.sent[100])
}

func TestRunCycleEmptyDayMessage(t *testing.T) {
	ledger := &fakeLedger{
		users:   []database.User{{TelegramID: 2, ChatID: 200}},
		entries: map[int64][]database.Entry{},
	}
	notifier := newFakeNotifier()

	New(ledger, notifier, at("23:59:00")).RunCycle(context.Background(), time.Now())

	assert.Equal(t, report.EmptyDayMessage, notifier.sent[200])
}

func TestRunCycleIsolatesDeliveryFailure(t *testing.T) {
	// User B's notifier call fails; user A must still get a report.
	ledger := &fakeLedger{
		users: []database.User{
			{TelegramID: 2, ChatID: 200}, // B, no entries, delivery fails
			{TelegramID: 1, ChatID: 100}, // A, has entries
		},
		entries: map[int64][]database.Entry{
			1: {{Product: "рис", AmountGrams: 100, Calories: 130, Proteins: 2.7, Fats: 0.3, Carbs: 28.2}},
		},
	}
	notifier := newFakeNotifier()
	notifier.failFor[200] = errors.New("chat not found")

	New(ledger, notifier, at("23:59:00")).RunCycle(context.Background(), time.Now())

	assert.Contains(t, notifier.sent, int64(100))
	assert.NotContains(t, notifier.sent, int64(200))
}

func TestRunCycleIsolatesStorageFailure(t *testing.T) {
	ledger := &fakeLedger{
		users: []database.User{
			{TelegramID: 3, ChatID: 300},
			{TelegramID: 4, ChatID: 400},
		},
		entries:    map[int64][]database.Entry{},
		entriesErr: map[int64]error{3: errors.New("connection reset")},
	}
	notifier := newFakeNotifier()

	New(ledger, notifier, at("23:59:00")).RunCycle(context.Background(), time.Now())

	// User 3 is skipped, user 4 still gets the empty-day message
	assert.NotContains(t, notifier.sent, int64(300))
	assert.Equal(t, report.EmptyDayMessage, notifier.sent[400])
}

func TestRunStopsOnContextCancel(t *testing.T) {
	ledger := &fakeLedger{}
	notifier := newFakeNotifier()
	s := New(ledger, notifier, at("23:59:00"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx)
	}()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
