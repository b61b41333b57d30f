package telegram

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
)

// handlePremiumCommand premium hisob yaratish
func (h *BotHandler) handlePremiumCommand(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID
	chatID := message.Chat.ID

	invoice, err := h.paymentUseCase.CreatePremiumInvoice(ctx, userID)
	if err != nil {
		h.replyError(chatID, err)
		return
	}

	text := fmt.Sprintf(`⭐ Премиум-доступ

Стоимость: %.2f %s
Оплата через CryptoBot. После оплаты нажмите «Проверить оплату» — премиум активируется автоматически.`, invoice.Amount, invoice.Currency)

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("💳 Оплатить", invoice.PayURL),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Проверить оплату", fmt.Sprintf("pay_check:%d", invoice.ID)),
		),
	)
	h.sendWithMarkup(chatID, text, markup)
}

// handlePaymentCheck to'lov holatini tekshirish tugmasi
func (h *BotHandler) handlePaymentCheck(ctx context.Context, userID, chatID int64, rawID string) {
	invoiceID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.sendMessage(chatID, "❌ Некорректный счёт. Создайте новый: /premium")
		return
	}

	invoice, activation, err := h.paymentUseCase.CheckInvoice(ctx, invoiceID)
	if err != nil {
		h.replyError(chatID, err)
		return
	}

	switch invoice.Status {
	case entity.InvoiceStatusPaid:
		if activation != nil && activation.First {
			h.sendMessage(chatID, "🎉 Оплата получена! Премиум-доступ активирован.")
		} else {
			h.sendMessage(chatID, "✅ Оплата уже учтена, премиум активен.")
		}
	case entity.InvoiceStatusExpired:
		h.sendMessage(chatID, "⌛ Срок счёта истёк. Создайте новый: /premium")
	default:
		h.sendMessage(chatID, "⏳ Оплата пока не поступила. Попробуйте чуть позже.")
	}
}
