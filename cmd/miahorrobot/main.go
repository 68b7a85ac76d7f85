// cmd/miahorrobot/main.go
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/go-telegram/bot"
	"github.com/rolandomc/MiAhorroBot/pkg/bot/handlers"
	"github.com/rolandomc/MiAhorroBot/pkg/bot/reminders"
	"github.com/rolandomc/MiAhorroBot/pkg/config"
	"github.com/rolandomc/MiAhorroBot/pkg/db"
	"github.com/rolandomc/MiAhorroBot/pkg/logger"
	"github.com/rolandomc/MiAhorroBot/pkg/ui"
)

type botSender struct {
	b *bot.Bot
}

func (s botSender) SendMessage(ctx context.Context, chatID int64, text string) error {
	_, err := s.b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	return err
}

func main() {
	if err := config.LoadConfig("config.json"); err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := logger.Configure(logger.Options{
		Level: config.AppConfig.Logging.Level,
		File:  config.AppConfig.Logging.File,
	}); err != nil {
		logger.Error("failed to configure logger", "error", err)
	}

	if err := db.InitDB(config.AppConfig.Database); err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	opts := []bot.Option{
		bot.WithDefaultHandler(handlers.DefaultHandler),
	}
	b, err := bot.New(config.AppConfig.Telegram.Token, opts...)
	if err != nil {
		logger.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, handlers.HandleStart)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/total", bot.MatchTypeExact, handlers.HandleTotal)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/history", bot.MatchTypeExact, handlers.HandleHistory)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/random", bot.MatchTypeExact, handlers.HandleRandom)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/settime", bot.MatchTypePrefix, handlers.HandleSetTime)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/export", bot.MatchTypeExact, handlers.HandleExport)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/clear", bot.MatchTypeExact, handlers.HandleClear)
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, ui.CallbackPrefix, bot.MatchTypePrefix, handlers.HandleMenuCallback)

	go reminders.StartPeriodicMessages(ctx, botSender{b: b})

	logger.Info("Starting bot...")
	b.Start(ctx)
}
