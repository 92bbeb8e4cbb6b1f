package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"kitchen-companion/internal/app"
	"kitchen-companion/internal/config"
	"kitchen-companion/internal/menu"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	defer application.Close()

	m := menu.New(os.Stdin, os.Stdout, menu.Deps{
		Lists:    application.Lists,
		Recipes:  application.Recipes,
		Pantry:   application.Pantry,
		Chef:     application.Chef,
		Importer: application.Importer,
		Exporter: application.Exporter,
		Metrics:  application.Metrics,
		DataDir:  cfg.DataDir,
	})
	if err := m.Run(ctx); err != nil {
		log.Fatalf("Session ended with an error: %v", err)
	}
}
