// Package telegram runs a read-only bot for checking lists, recipes and
// the pantry from a phone. It long-polls and only answers the configured
// user.
package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"kitchen-companion/internal/config"
	"kitchen-companion/internal/metrics"
	"kitchen-companion/internal/pantry"
	"kitchen-companion/internal/recipe"
	"kitchen-companion/internal/shopping"
)

// Deps are the stores the bot reads from.
type Deps struct {
	Lists   shopping.Store
	Recipes recipe.Store
	Pantry  pantry.Store
	Metrics *metrics.Store // nil when running on file storage
	DataDir string
}

// Bot wraps the Telegram API around the kitchen stores.
type Bot struct {
	api           *tgbotapi.BotAPI
	deps          Deps
	allowedUserID int64
}

// NewBot connects to the Telegram API using the configured token.
func NewBot(cfg *config.Config, deps Deps) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}
	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:           api,
		deps:          deps,
		allowedUserID: cfg.TelegramAllowUserID,
	}, nil
}

// Run long-polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			if update.Message.From.ID != b.allowedUserID {
				log.Printf("Ignoring message from unauthorized user %d (@%s)",
					update.Message.From.ID, update.Message.From.UserName)
				continue
			}

			reply := tgbotapi.NewMessage(update.Message.Chat.ID, b.replyFor(ctx, update.Message.Text))
			reply.ParseMode = "Markdown"
			if _, err := b.api.Send(reply); err != nil {
				log.Printf("Failed to send reply: %v", err)
			}
		}
	}
}

const helpText = `*Kitchen Companion*
/lists - shopping list names
/list <name> - one shopping list
/recipes - recipe names
/recipe <name> - one recipe
/pantry - pantry inventory
/usage - token usage and health`

// replyFor builds the markdown reply for one incoming message.
func (b *Bot) replyFor(ctx context.Context, text string) string {
	command, argument := splitCommand(text)

	switch command {
	case "/start", "/help":
		return helpText
	case "/lists":
		return b.namesReply(b.deps.Lists.Names(ctx))
	case "/list":
		if argument == "" {
			return "Usage: /list <name>"
		}
		list, err := b.deps.Lists.Load(ctx, argument)
		if err != nil {
			return errorReply(err)
		}
		if list == nil {
			return fmt.Sprintf("No list named %q.", argument)
		}
		return list.Markdown()
	case "/recipes":
		return b.namesReply(b.deps.Recipes.Names(ctx))
	case "/recipe":
		if argument == "" {
			return "Usage: /recipe <name>"
		}
		rec, err := b.deps.Recipes.Load(ctx, argument)
		if err != nil {
			return errorReply(err)
		}
		if rec == nil {
			return fmt.Sprintf("No recipe named %q.", argument)
		}
		return rec.Markdown()
	case "/pantry":
		entries, err := b.deps.Pantry.List(ctx)
		if err != nil {
			return errorReply(err)
		}
		if len(entries) == 0 {
			return "The pantry is empty."
		}
		return pantry.Markdown(entries)
	case "/usage":
		return b.usageReply(ctx)
	default:
		return helpText
	}
}

func splitCommand(text string) (string, string) {
	fields := strings.SplitN(strings.TrimSpace(text), " ", 2)
	command := strings.ToLower(fields[0])
	if len(fields) == 1 {
		return command, ""
	}
	return command, strings.TrimSpace(fields[1])
}

func (b *Bot) namesReply(names []string, err error) string {
	if err != nil {
		return errorReply(err)
	}
	if len(names) == 0 {
		return "Nothing saved yet."
	}
	var sb strings.Builder
	for _, name := range names {
		sb.WriteString("• " + name + "\n")
	}
	return sb.String()
}

func (b *Bot) usageReply(ctx context.Context) string {
	var sb strings.Builder
	sb.WriteString("📊 *Usage & Health*\n\n")

	if b.deps.Metrics == nil {
		sb.WriteString("_Usage tracking needs the sqlite backend._\n")
	} else {
		usage, err := b.deps.Metrics.GetDailyUsage(ctx, 7)
		if err != nil {
			return errorReply(err)
		}
		if len(usage) == 0 {
			sb.WriteString("_No model calls in the last 7 days._\n")
		}
		for _, d := range usage {
			sb.WriteString(fmt.Sprintf("• *%s*: %d tokens (%d calls)\n",
				d.Date, d.TotalPrompt+d.TotalCompletion, d.TotalCalls))
		}
	}

	health := metrics.GetSysHealth(b.deps.DataDir)
	sb.WriteString(fmt.Sprintf("\n🧠 RAM: %dMB / %dMB, goroutines: %d\n",
		health.AllocMB, health.SysMB, health.Goroutines))
	sb.WriteString("💾 Data: " + health.DataSize)
	return sb.String()
}

func errorReply(err error) string {
	safe := strings.ReplaceAll(err.Error(), "`", "'")
	return "❌ Error:\n```\n" + safe + "\n```"
}
