package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rolandomc/MiAhorroBot/pkg/ledger"
	"github.com/rolandomc/MiAhorroBot/pkg/logger"
)

const transientFailureText = "Something went wrong. Please try again later."

func HandleTotal(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.From == nil || update.Message.Chat.ID == 0 {
		logger.Error("invalid update in HandleTotal")
		return
	}
	sendTotal(ctx, b, update.Message.Chat.ID, update.Message.From.ID)
}

func HandleHistory(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.From == nil || update.Message.Chat.ID == 0 {
		logger.Error("invalid update in HandleHistory")
		return
	}
	sendHistory(ctx, b, update.Message.Chat.ID, update.Message.From.ID)
}

func HandleRandom(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.From == nil || update.Message.Chat.ID == 0 {
		logger.Error("invalid update in HandleRandom")
		return
	}
	sendRandomAmount(ctx, b, update.Message.Chat.ID, update.Message.From.ID)
}

func sendTotal(ctx context.Context, b *bot.Bot, chatID, userID int64) {
	total, count, err := ledger.TotalAndCount(userID)
	if err != nil {
		logger.Error("failed to compute total", "user_id", userID, "error", err)
		reply(ctx, b, chatID, transientFailureText)
		return
	}
	if count == 0 {
		reply(ctx, b, chatID, "You have not recorded any savings yet.")
		return
	}
	reply(ctx, b, chatID, fmt.Sprintf("You have saved %d across %d entries.", total, count))
}

func sendHistory(ctx context.Context, b *bot.Bot, chatID, userID int64) {
	amounts, err := ledger.ListAmounts(userID)
	if err != nil {
		logger.Error("failed to list amounts", "user_id", userID, "error", err)
		reply(ctx, b, chatID, transientFailureText)
		return
	}
	if len(amounts) == 0 {
		reply(ctx, b, chatID, "You have not recorded any savings yet.")
		return
	}

	parts := make([]string, 0, len(amounts))
	for _, a := range amounts {
		parts = append(parts, strconv.Itoa(a))
	}
	reply(ctx, b, chatID, fmt.Sprintf("Your savings history (most recent first):\n%s", strings.Join(parts, ", ")))
}

// sendRandomAmount is the manual version of the daily trigger: draw an unused
// amount, book it, and report the new total.
func sendRandomAmount(ctx context.Context, b *bot.Bot, chatID, userID int64) {
	amount, ok, err := ledger.PickUnusedNumber(userID)
	if err != nil {
		logger.Error("failed to pick unused amount", "user_id", userID, "error", err)
		reply(ctx, b, chatID, transientFailureText)
		return
	}
	if !ok {
		reply(ctx, b, chatID, "All 365 amounts are recorded. You have completed the challenge!")
		return
	}

	res, err := ledger.RecordEntry(userID, amount)
	if err != nil {
		logger.Error("failed to record random amount", "user_id", userID, "error", err)
		reply(ctx, b, chatID, transientFailureText)
		return
	}
	if res != ledger.RecordSaved {
		// The picked amount was taken in between. Rare enough that asking the
		// user to press again beats retrying in a loop.
		reply(ctx, b, chatID, "That number was just taken. Please try again.")
		return
	}

	total, _, err := ledger.TotalAndCount(userID)
	if err != nil {
		logger.Error("failed to compute total", "user_id", userID, "error", err)
		reply(ctx, b, chatID, fmt.Sprintf("Recorded %d.", amount))
		return
	}
	reply(ctx, b, chatID, fmt.Sprintf("Recorded %d. Saved so far: %d.", amount, total))
}

func reply(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	}); err != nil {
		logger.Error("failed to send message", "chat_id", chatID, "error", err)
	}
}
