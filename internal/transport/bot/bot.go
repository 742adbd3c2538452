package bot

import (
	"context"
	"fmt"
	"log"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"phone-input/internal/config"
	"phone-input/internal/transport/bot/handler"
)

// Bot отладочный Telegram-бот: присылаешь номер как текст, в ответ приходит
// каноническая форма, классификация и ссылка wa.me.
type Bot struct {
	bot        *telego.Bot
	botHandler *th.BotHandler

	handler *handler.Handler
}

// New создает новый экземпляр бота
func New(cfg config.Bot) (*Bot, error) {
	bot, err := telego.NewBot(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	// Получаем обновления через long polling
	updates, err := bot.UpdatesViaLongPolling(context.Background(), &telego.GetUpdatesParams{
		Timeout: 60,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get updates: %w", err)
	}

	botHandler, err := th.NewBotHandler(bot, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot handler: %w", err)
	}

	commandHandler := handler.New()

	commandHandler.RegisterRoutes(botHandler, cfg.AdminID)

	return &Bot{
		bot:        bot,
		botHandler: botHandler,
		handler:    commandHandler,
	}, nil
}

// Run запускает бота
func (b *Bot) Run(ctx context.Context) error {
	go func() {
		if err := b.botHandler.Start(); err != nil {
			log.Printf("Failed to start bot handler: %v", err)
		}
	}()

	<-ctx.Done()

	if err := b.botHandler.Stop(); err != nil {
		log.Printf("Failed to stop bot handler: %v", err)
	}

	return ctx.Err()
}
