package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/rolandomc/MiAhorroBot/pkg/db"
	"github.com/rolandomc/MiAhorroBot/pkg/ledger"
	"github.com/rolandomc/MiAhorroBot/pkg/logger"
)

// Sender delivers one outbound notification. The Telegram bot implements it
// in main; tests substitute a fake.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

// StartPeriodicMessages polls every minute and fires the reminders whose
// configured time matches the current wall-clock minute. It runs until the
// context is canceled.
func StartPeriodicMessages(ctx context.Context, s Sender) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			processCycle(ctx, s, now)
		}
	}
}

// processCycle evaluates every configured schedule against now. Schedules are
// read fresh from the store each cycle, and a failure for one user never
// stops the rest of the cycle.
func processCycle(ctx context.Context, s Sender, now time.Time) {
	var configs []db.ScheduleConfig
	if err := db.DB.Find(&configs).Error; err != nil {
		logger.Error("failed to fetch schedules for reminders", "error", err)
		return
	}

	minute := now.Format(clockLayout)
	for _, cfg := range configs {
		if cfg.TimeOfDay != minute {
			continue
		}
		sendDailyAmount(ctx, s, cfg.UserID)
	}
}

func sendDailyAmount(ctx context.Context, s Sender, userID int64) {
	amount, ok, err := ledger.PickUnusedNumber(userID)
	if err != nil {
		logger.Error("failed to pick amount for reminder", "user_id", userID, "error", err)
		return
	}
	if !ok {
		// All 365 amounts are recorded. The challenge is complete and there
		// is nothing left to send.
		logger.Info("savings challenge complete, skipping reminder", "user_id", userID)
		return
	}

	res, err := ledger.RecordEntry(userID, amount)
	if err != nil {
		logger.Error("failed to record scheduled amount", "user_id", userID, "error", err)
		return
	}
	if res != ledger.RecordSaved {
		// Lost a race with a manual entry for the same amount. Skip today
		// rather than double-book.
		logger.Info("scheduled amount already recorded", "user_id", userID, "amount", amount)
		return
	}

	total, _, err := ledger.TotalAndCount(userID)
	if err != nil {
		logger.Error("failed to compute total for reminder", "user_id", userID, "error", err)
		return
	}

	text := fmt.Sprintf("Today's savings amount: %d. Saved so far: %d.", amount, total)
	if err := s.SendMessage(ctx, userID, text); err != nil {
		logger.Error("failed to send reminder", "user_id", userID, "error", err)
	}
}
