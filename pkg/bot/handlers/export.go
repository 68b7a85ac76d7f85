package handlers

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rolandomc/MiAhorroBot/pkg/bot/export"
	"github.com/rolandomc/MiAhorroBot/pkg/db"
	"github.com/rolandomc/MiAhorroBot/pkg/logger"
)

func HandleExport(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.From == nil || update.Message.Chat.ID == 0 {
		logger.Error("invalid update in HandleExport")
		return
	}

	userID := update.Message.From.ID
	var entries []db.SavingsEntry
	if err := db.DB.Where("user_id = ?", userID).Order("date DESC, id DESC").Find(&entries).Error; err != nil {
		logger.Error("failed to fetch entries for export", "user_id", userID, "error", err)
		reply(ctx, b, update.Message.Chat.ID, transientFailureText)
		return
	}
	if len(entries) == 0 {
		reply(ctx, b, update.Message.Chat.ID, "You have not recorded any savings yet.")
		return
	}

	data, err := export.BuildLedgerCSV(entries)
	if err != nil {
		logger.Error("failed to build export CSV", "user_id", userID, "error", err)
		reply(ctx, b, update.Message.Chat.ID, transientFailureText)
		return
	}

	caption := fmt.Sprintf("Your savings export (%d entries).", len(entries))
	if _, err := b.SendDocument(ctx, &bot.SendDocumentParams{
		ChatID: update.Message.Chat.ID,
		Document: &models.InputFileUpload{
			Filename: export.Filename(time.Now()),
			Data:     bytes.NewReader(data),
		},
		Caption: caption,
	}); err != nil {
		logger.Error("failed to send export document", "user_id", userID, "error", err)
		reply(ctx, b, update.Message.Chat.ID, transientFailureText)
	}
}
