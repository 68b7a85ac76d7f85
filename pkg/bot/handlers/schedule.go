package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rolandomc/MiAhorroBot/pkg/bot/reminders"
	"github.com/rolandomc/MiAhorroBot/pkg/bot/session"
	"github.com/rolandomc/MiAhorroBot/pkg/logger"
)

const timePromptText = "Send me the reminder time as HH:MM, for example 08:00."

// HandleSetTime handles "/settime HH:MM". A bare "/settime" starts the prompt
// flow instead.
func HandleSetTime(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.From == nil || update.Message.Chat.ID == 0 {
		logger.Error("invalid update in HandleSetTime")
		return
	}

	userID := update.Message.From.ID
	parts := strings.Fields(update.Message.Text)
	if len(parts) < 2 {
		promptForTime(ctx, b, update.Message.Chat.ID, userID)
		return
	}

	applySchedule(ctx, b, update.Message.Chat.ID, userID, parts[1])
}

func promptForTime(ctx context.Context, b *bot.Bot, chatID, userID int64) {
	session.DefaultManager.Set(userID, session.AwaitingTime)

	text := timePromptText
	if current, ok, err := reminders.GetSchedule(userID); err != nil {
		logger.Error("failed to load schedule", "user_id", userID, "error", err)
	} else if ok {
		text = fmt.Sprintf("Your daily reminder is set to %s. %s", current, timePromptText)
	}
	reply(ctx, b, chatID, text)
}

func applySchedule(ctx context.Context, b *bot.Bot, chatID, userID int64, value string) {
	if err := reminders.SetSchedule(userID, value); err != nil {
		if errors.Is(err, reminders.ErrInvalidTimeOfDay) {
			reply(ctx, b, chatID, "That does not look like a time. "+timePromptText)
			return
		}
		logger.Error("failed to store schedule", "user_id", userID, "error", err)
		reply(ctx, b, chatID, transientFailureText)
		return
	}

	normalized, _ := reminders.ParseTimeOfDay(value)
	session.DefaultManager.Set(userID, session.Idle)
	reply(ctx, b, chatID, fmt.Sprintf("Done. I will send your savings number every day at %s.", normalized))
}
