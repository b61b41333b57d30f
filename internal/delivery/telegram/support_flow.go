package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleSupportCommand support rejimini yoqish
func (h *BotHandler) handleSupportCommand(ctx context.Context, message *tgbotapi.Message) {
	h.setAwaitingSupport(message.From.ID, true)
	h.sendMessage(message.Chat.ID, "💬 Опишите вашу проблему или вопрос одним сообщением.")
}

// handleSupportText support matnini murojaatga aylantirish
func (h *BotHandler) handleSupportText(ctx context.Context, message *tgbotapi.Message, username string) {
	userID := message.From.ID
	chatID := message.Chat.ID

	h.setAwaitingSupport(userID, false)

	ticket, duplicates, err := h.supportUseCase.CreateTicket(ctx, userID, username, message.Text)
	if err != nil {
		h.replyError(chatID, err)
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✅ Обращение %s создано.\nКатегория: %s\n", ticket.ID, categoryLabel(string(ticket.Category)))

	if len(duplicates) > 0 {
		b.WriteString("\n⚠️ Похоже, вы уже писали об этом:\n")
		for _, d := range duplicates {
			b.WriteString(fmtTicketLine(d.ID, string(d.Status), d.FirstMessage()) + "\n")
		}
		b.WriteString("\nМы всё равно зарегистрировали новое обращение и свяжем его с предыдущими.")
	} else {
		b.WriteString("\nМы ответим вам в этом чате.")
	}

	h.sendMessage(chatID, b.String())
}

// handleMyCommand foydalanuvchining e'lonlari va murojaatlari ro'yxati
func (h *BotHandler) handleMyCommand(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID

	listings, err := h.publishUseCase.UserListings(ctx, userID)
	if err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}
	tickets, err := h.supportUseCase.UserTickets(ctx, userID)
	if err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}

	if len(listings) == 0 && len(tickets) == 0 {
		h.sendMessage(message.Chat.ID, "У вас пока нет ни объявлений, ни обращений. /sell — подать объявление, /support — написать в поддержку.")
		return
	}

	var b strings.Builder

	if len(listings) > 0 {
		b.WriteString("📱 Ваши объявления:\n\n")
		for _, l := range listings {
			fmt.Fprintf(&b, "• %s %s — $%s (%s)\n", l.Brand, l.Model, l.PriceUSD, l.PublishedAt.Format("02.01.2006"))
		}
	}

	if len(tickets) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("📋 Ваши обращения:\n\n")
		for _, t := range tickets {
			b.WriteString(fmtTicketLine(t.ID, string(t.Status), t.FirstMessage()) + "\n")
		}
	}

	h.sendMessage(message.Chat.ID, b.String())
}

func categoryLabel(category string) string {
	switch category {
	case "payment":
		return "оплата"
	case "technical":
		return "техническая проблема"
	case "suggestion":
		return "предложение"
	case "general":
		return "общий вопрос"
	default:
		return "другое"
	}
}
