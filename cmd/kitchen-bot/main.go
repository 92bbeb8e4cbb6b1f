package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"kitchen-companion/internal/app"
	"kitchen-companion/internal/config"
	"kitchen-companion/internal/telegram"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.TelegramBotToken == "" {
		log.Fatal("TELEGRAM_BOT_TOKEN is required for the bot")
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer application.Close()

	bot, err := telegram.NewBot(cfg, telegram.Deps{
		Lists:   application.Lists,
		Recipes: application.Recipes,
		Pantry:  application.Pantry,
		Metrics: application.Metrics,
		DataDir: cfg.DataDir,
	})
	if err != nil {
		log.Fatalf("Failed to start the bot: %v", err)
	}

	if err := bot.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Bot stopped with an error: %v", err)
	}
}
