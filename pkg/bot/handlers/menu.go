package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rolandomc/MiAhorroBot/pkg/bot/session"
	"github.com/rolandomc/MiAhorroBot/pkg/logger"
	"github.com/rolandomc/MiAhorroBot/pkg/ui"
)

// HandleMenuCallback dispatches the /start menu buttons.
func HandleMenuCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.CallbackQuery == nil {
		logger.Error("invalid update in HandleMenuCallback")
		return
	}

	answerCallback(ctx, b, update.CallbackQuery.ID)

	action, err := ui.ParseCallbackData(update.CallbackQuery.Data)
	if err != nil {
		logger.Error("failed to parse menu callback", "data", update.CallbackQuery.Data, "error", err)
		return
	}

	message := update.CallbackQuery.Message
	if message.Type != models.MaybeInaccessibleMessageTypeMessage || message.Message == nil {
		logger.Error("callback query message is inaccessible", "user_id", update.CallbackQuery.From.ID)
		return
	}
	chatID := message.Message.Chat.ID
	if chatID == 0 {
		logger.Error("chat ID is zero in HandleMenuCallback")
		return
	}
	userID := update.CallbackQuery.From.ID

	switch action {
	case ui.ActionAddNumbers:
		session.DefaultManager.Set(userID, session.AwaitingNumbers)
		reply(ctx, b, chatID, numbersPromptText)
	case ui.ActionHistory:
		sendHistory(ctx, b, chatID, userID)
	case ui.ActionTotal:
		sendTotal(ctx, b, chatID, userID)
	case ui.ActionRandom:
		sendRandomAmount(ctx, b, chatID, userID)
	case ui.ActionSetReminder:
		promptForTime(ctx, b, chatID, userID)
	case ui.ActionClear:
		session.DefaultManager.Set(userID, session.AwaitingDeleteConfirmation)
		reply(ctx, b, chatID,
			"This removes your whole savings history and your daily reminder. Reply \"yes\" to confirm, anything else to cancel.")
	}
}

func answerCallback(ctx context.Context, b *bot.Bot, callbackID string) {
	if callbackID == "" {
		return
	}
	if _, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
	}); err != nil {
		logger.Error("failed to answer callback query", "error", err)
	}
}
