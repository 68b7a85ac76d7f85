package reminders

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rolandomc/MiAhorroBot/pkg/db"
	"github.com/rolandomc/MiAhorroBot/pkg/internal/testutil"
	"github.com/rolandomc/MiAhorroBot/pkg/ledger"
	"github.com/rolandomc/MiAhorroBot/pkg/logger"
)

type fakeSender struct {
	mu      sync.Mutex
	sent    map[int64][]string
	failFor map[int64]bool
}

func newFakeSender() *fakeSender {
	return &fakeSender{
		sent:    make(map[int64][]string),
		failFor: make(map[int64]bool),
	}
}

func (s *fakeSender) SendMessage(_ context.Context, chatID int64, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failFor[chatID] {
		return errors.New("send rejected")
	}
	s.sent[chatID] = append(s.sent[chatID], text)
	return nil
}

func (s *fakeSender) messages(chatID int64) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sent[chatID]...)
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 8, 31, hour, minute, 0, 0, time.Local)
}

func TestProcessCycleNotifiesMatchingUsers(t *testing.T) {
	testutil.SetupTestDB(t)
	logger.SetLogLevel(logger.ERROR)

	for _, userID := range []int64{1, 2} {
		if err := SetSchedule(userID, "08:00"); err != nil {
			t.Fatalf("failed to set schedule for user %d: %v", userID, err)
		}
	}

	sender := newFakeSender()
	processCycle(context.Background(), sender, at(8, 0))

	for _, userID := range []int64{1, 2} {
		msgs := sender.messages(userID)
		if len(msgs) != 1 {
			t.Fatalf("expected one message for user %d, got %d", userID, len(msgs))
		}
		if !strings.Contains(msgs[0], "savings amount") {
			t.Fatalf("unexpected message for user %d: %q", userID, msgs[0])
		}

		amounts, err := ledger.ListAmounts(userID)
		if err != nil {
			t.Fatalf("failed to list amounts for user %d: %v", userID, err)
		}
		if len(amounts) != 1 {
			t.Fatalf("expected one recorded amount for user %d, got %v", userID, amounts)
		}
		if amounts[0] < ledger.MinAmount || amounts[0] > ledger.MaxAmount {
			t.Fatalf("recorded amount out of range for user %d: %d", userID, amounts[0])
		}
	}
}

func TestProcessCycleExactMinuteOnly(t *testing.T) {
	testutil.SetupTestDB(t)
	logger.SetLogLevel(logger.ERROR)

	if err := SetSchedule(1, "08:00"); err != nil {
		t.Fatalf("failed to set schedule: %v", err)
	}

	sender := newFakeSender()
	processCycle(context.Background(), sender, at(8, 1))

	if len(sender.messages(1)) != 0 {
		t.Fatalf("expected no message at 08:01, got %v", sender.messages(1))
	}
	if _, count, err := ledger.TotalAndCount(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if count != 0 {
		t.Fatalf("expected no recorded amount at 08:01, got %d entries", count)
	}
}

func TestProcessCycleSilentWhenExhausted(t *testing.T) {
	testutil.SetupTestDB(t)
	logger.SetLogLevel(logger.ERROR)

	if err := SetSchedule(6, "10:30"); err != nil {
		t.Fatalf("failed to set schedule: %v", err)
	}
	entries := make([]db.SavingsEntry, 0, ledger.MaxAmount)
	for n := ledger.MinAmount; n <= ledger.MaxAmount; n++ {
		entries = append(entries, db.SavingsEntry{UserID: 6, Date: at(0, 0), Amount: n})
	}
	if err := db.DB.CreateInBatches(entries, 100).Error; err != nil {
		t.Fatalf("failed to seed entries: %v", err)
	}

	sender := newFakeSender()
	processCycle(context.Background(), sender, at(10, 30))

	if len(sender.messages(6)) != 0 {
		t.Fatalf("expected silence for an exhausted pool, got %v", sender.messages(6))
	}
	if _, count, err := ledger.TotalAndCount(6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if count != int64(ledger.MaxAmount) {
		t.Fatalf("expected ledger to stay at %d entries, got %d", ledger.MaxAmount, count)
	}
}

func TestProcessCycleSendFailureDoesNotStopOthers(t *testing.T) {
	testutil.SetupTestDB(t)
	logger.SetLogLevel(logger.ERROR)

	for _, userID := range []int64{1, 2, 3} {
		if err := SetSchedule(userID, "18:45"); err != nil {
			t.Fatalf("failed to set schedule for user %d: %v", userID, err)
		}
	}

	sender := newFakeSender()
	sender.failFor[2] = true
	processCycle(context.Background(), sender, at(18, 45))

	for _, userID := range []int64{1, 3} {
		if len(sender.messages(userID)) != 1 {
			t.Fatalf("expected user %d to be notified despite user 2 failing", userID)
		}
	}
}

func TestProcessCycleRecordsBeforeNotifying(t *testing.T) {
	testutil.SetupTestDB(t)
	logger.SetLogLevel(logger.ERROR)

	if err := SetSchedule(5, "07:00"); err != nil {
		t.Fatalf("failed to set schedule: %v", err)
	}

	sender := newFakeSender()
	sender.failFor[5] = true
	processCycle(context.Background(), sender, at(7, 0))

	// The amount is booked even when the notification cannot be delivered;
	// the next cycle must not hand out the same day twice.
	if _, count, err := ledger.TotalAndCount(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	} else if count != 1 {
		t.Fatalf("expected the amount to be recorded despite the send failure, got %d entries", count)
	}
}
