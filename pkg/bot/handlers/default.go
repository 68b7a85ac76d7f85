package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rolandomc/MiAhorroBot/pkg/bot/session"
	"github.com/rolandomc/MiAhorroBot/pkg/ledger"
	"github.com/rolandomc/MiAhorroBot/pkg/logger"
)

const helpText = "Commands:\n" +
	"* /start: show the menu.\n" +
	"* /random: get a random unused savings number.\n" +
	"* /total: show your total.\n" +
	"* /history: show your recorded numbers.\n" +
	"* /settime HH:MM: set the daily reminder.\n" +
	"* /export: download your savings as CSV.\n" +
	"* /clear: remove all recorded savings."

const numbersPromptText = "Send me one or more numbers between 1 and 365, separated by spaces."

// DefaultHandler routes free text according to the user's session state.
func DefaultHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.From == nil {
		logger.Error("received invalid update in DefaultHandler")
		return
	}
	if update.Message.Chat.ID == 0 {
		logger.Error("chat ID is zero in DefaultHandler")
		return
	}

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID
	text := strings.TrimSpace(update.Message.Text)

	switch session.DefaultManager.Get(userID) {
	case session.AwaitingNumbers:
		recordNumbers(ctx, b, chatID, userID, text)
	case session.AwaitingTime:
		applySchedule(ctx, b, chatID, userID, text)
	case session.AwaitingDeleteConfirmation:
		confirmClear(ctx, b, chatID, userID, text)
	default:
		reply(ctx, b, chatID, helpText)
	}
}

func recordNumbers(ctx context.Context, b *bot.Bot, chatID, userID int64, text string) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == ','
	})
	if len(fields) == 0 {
		reply(ctx, b, chatID, numbersPromptText)
		return
	}
	session.DefaultManager.Set(userID, session.Idle)

	var lines []string
	for _, field := range fields {
		amount, err := strconv.Atoi(field)
		if err != nil {
			lines = append(lines, fmt.Sprintf("%s: not a number", field))
			continue
		}

		res, err := ledger.RecordEntry(userID, amount)
		if err != nil {
			logger.Error("failed to record amount", "user_id", userID, "amount", amount, "error", err)
			lines = append(lines, fmt.Sprintf("%d: could not be saved, please try again later", amount))
			continue
		}
		switch res {
		case ledger.RecordSaved:
			lines = append(lines, fmt.Sprintf("%d: saved", amount))
		case ledger.RecordDuplicate:
			lines = append(lines, fmt.Sprintf("%d: already recorded", amount))
		case ledger.RecordOutOfRange:
			lines = append(lines, fmt.Sprintf("%d: must be between 1 and 365", amount))
		}
	}

	summary := strings.Join(lines, "\n")
	if total, count, err := ledger.TotalAndCount(userID); err == nil && count > 0 {
		summary += fmt.Sprintf("\n\nSaved so far: %d across %d entries.", total, count)
	}
	reply(ctx, b, chatID, summary)
}
