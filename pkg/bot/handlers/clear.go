package handlers

import (
	"context"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rolandomc/MiAhorroBot/pkg/bot/reminders"
	"github.com/rolandomc/MiAhorroBot/pkg/bot/session"
	"github.com/rolandomc/MiAhorroBot/pkg/ledger"
	"github.com/rolandomc/MiAhorroBot/pkg/logger"
)

const clearConfirmationWord = "yes"

// HandleClear asks for confirmation; the actual wipe happens when the user
// replies in the AwaitingDeleteConfirmation state.
func HandleClear(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.From == nil || update.Message.Chat.ID == 0 {
		logger.Error("invalid update in HandleClear")
		return
	}

	session.DefaultManager.Set(update.Message.From.ID, session.AwaitingDeleteConfirmation)
	reply(ctx, b, update.Message.Chat.ID,
		"This removes your whole savings history and your daily reminder. Reply \"yes\" to confirm, anything else to cancel.")
}

func confirmClear(ctx context.Context, b *bot.Bot, chatID, userID int64, text string) {
	session.DefaultManager.Set(userID, session.Idle)

	if !isConfirmation(text) {
		reply(ctx, b, chatID, "Cancelled. Your savings are untouched.")
		return
	}

	if err := ledger.ClearAll(userID); err != nil {
		logger.Error("failed to clear ledger", "user_id", userID, "error", err)
		reply(ctx, b, chatID, transientFailureText)
		return
	}
	if err := reminders.ClearSchedule(userID); err != nil {
		logger.Error("failed to clear schedule", "user_id", userID, "error", err)
		reply(ctx, b, chatID, "Your savings history is gone, but the reminder could not be removed. Please try /clear again.")
		return
	}

	reply(ctx, b, chatID, "Your savings history and reminder have been removed.")
}

func isConfirmation(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), clearConfirmationWord)
}
