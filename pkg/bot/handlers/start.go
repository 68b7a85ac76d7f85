package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rolandomc/MiAhorroBot/pkg/bot/session"
	"github.com/rolandomc/MiAhorroBot/pkg/logger"
	"github.com/rolandomc/MiAhorroBot/pkg/ui"
)

func HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.From == nil || update.Message.Chat.ID == 0 {
		logger.Error("invalid update in HandleStart")
		return
	}

	// /start abandons any pending prompt.
	session.DefaultManager.Clear(update.Message.From.ID)

	text, keyboard, err := ui.RenderMenu()
	if err != nil {
		logger.Error("failed to render menu", "user_id", update.Message.From.ID, "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   "Something went wrong. Please try again later.",
		})
		return
	}

	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        text,
		ReplyMarkup: keyboard,
	}); err != nil {
		logger.Error("failed to send start menu", "user_id", update.Message.From.ID, "error", err)
	}
}
