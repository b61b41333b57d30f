package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/telegram-market-bot/internal/domain/repository"
)

// ChannelPublisher tayyor e'lonlarni kanalga chiqaradi
type ChannelPublisher struct {
	bot       *tgbotapi.BotAPI
	channelID int64
}

// NewChannelPublisher yangi kanal publisher yaratish
func NewChannelPublisher(bot *tgbotapi.BotAPI, channelID int64) repository.ChannelSender {
	return &ChannelPublisher{bot: bot, channelID: channelID}
}

// SendListing e'lonni kanalga yuborish. Rasmlar media group bo'lib ketadi,
// matn birinchi rasmning caption ida. Keyin alohida xabar bilan aloqa
// tugmasi yuboriladi (media group ga tugma ulab bo'lmaydi).
func (p *ChannelPublisher) SendListing(ctx context.Context, text string, photos []string, contact string) error {
	if len(photos) == 0 {
		msg := tgbotapi.NewMessage(p.channelID, text)
		msg.ReplyMarkup = contactMarkup(contact)
		if _, err := p.bot.Send(msg); err != nil {
			return fmt.Errorf("failed to send listing: %w", err)
		}
		return nil
	}

	media := make([]interface{}, 0, len(photos))
	for i, fileID := range photos {
		photo := tgbotapi.NewInputMediaPhoto(tgbotapi.FileID(fileID))
		if i == 0 {
			photo.Caption = text
		}
		media = append(media, photo)
	}

	group := tgbotapi.NewMediaGroup(p.channelID, media)
	if _, err := p.bot.SendMediaGroup(group); err != nil {
		return fmt.Errorf("failed to send media group: %w", err)
	}

	btnMsg := tgbotapi.NewMessage(p.channelID, "📞 Связаться с продавцом:")
	btnMsg.ReplyMarkup = contactMarkup(contact)
	if _, err := p.bot.Send(btnMsg); err != nil {
		return fmt.Errorf("failed to send contact button: %w", err)
	}

	return nil
}

// contactMarkup sotuvchi bilan bog'lanish tugmasi
func contactMarkup(contact string) tgbotapi.InlineKeyboardMarkup {
	if len(contact) > 1 && contact[0] == '@' {
		url := "https://t.me/" + contact[1:]
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonURL("💬 Написать продавцу", url),
			),
		)
	}

	// Telefon raqami uchun URL tugma yo'q, raqamni ko'rsatamiz
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📞 "+contact, "noop"),
		),
	)
}
