package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/telegram-market-bot/internal/domain/repository"
)

// Notifier foydalanuvchilarga xabar yetkazish adapteri
type Notifier struct {
	bot *tgbotapi.BotAPI
}

// NewNotifier yangi notifier yaratish
func NewNotifier(bot *tgbotapi.BotAPI) repository.UserNotifier {
	return &Notifier{bot: bot}
}

// Notify foydalanuvchiga xabar yuborish
func (n *Notifier) Notify(ctx context.Context, userID int64, text string) error {
	msg := tgbotapi.NewMessage(userID, text)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to notify user %d: %w", userID, err)
	}
	return nil
}
