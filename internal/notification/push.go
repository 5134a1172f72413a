package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramPush delivers booking pushes to users who linked a Telegram
// chat.
type TelegramPush struct {
	bot *tgbotapi.BotAPI
}

func NewTelegramPush(token string) (*TelegramPush, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramPush{bot: bot}, nil
}

func (t *TelegramPush) SendPush(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(chatID, text)

	if _, err := t.bot.Send(msg); err != nil {
		return fmt.Errorf("telegram: %w", err)
	}

	return nil
}
