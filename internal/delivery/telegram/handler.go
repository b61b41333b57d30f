package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/telegram-market-bot/internal/content"
	"github.com/yourusername/telegram-market-bot/internal/domain/repository"
	"github.com/yourusername/telegram-market-bot/internal/usecase"
)

// BotHandler Telegram bot handler
type BotHandler struct {
	bot            *tgbotapi.BotAPI
	wizardUseCase  usecase.WizardUseCase
	supportUseCase usecase.SupportUseCase
	publishUseCase usecase.PublishUseCase
	paymentUseCase usecase.PaymentUseCase
	adminUseCase   usecase.AdminUseCase
	content        *content.Content

	// Admin login kutilayotgan userlar
	passwordMu       sync.RWMutex
	awaitingPassword map[int64]bool

	// Support matni kutilayotgan userlar
	supportMu       sync.RWMutex
	awaitingSupport map[int64]bool

	// Profanity senzura taklifi kutilayotgan userlar
	censorMu      sync.RWMutex
	pendingCensor map[int64]string
}

// NewBotHandler yangi bot handler yaratish
func NewBotHandler(
	bot *tgbotapi.BotAPI,
	wizardUseCase usecase.WizardUseCase,
	supportUseCase usecase.SupportUseCase,
	publishUseCase usecase.PublishUseCase,
	paymentUseCase usecase.PaymentUseCase,
	adminUseCase usecase.AdminUseCase,
	c *content.Content,
) *BotHandler {
	return &BotHandler{
		bot:              bot,
		wizardUseCase:    wizardUseCase,
		supportUseCase:   supportUseCase,
		publishUseCase:   publishUseCase,
		paymentUseCase:   paymentUseCase,
		adminUseCase:     adminUseCase,
		content:          c,
		awaitingPassword: make(map[int64]bool),
		awaitingSupport:  make(map[int64]bool),
		pendingCensor:    make(map[int64]string),
	}
}

// Start botni ishga tushirish
func (h *BotHandler) Start(ctx context.Context) error {
	log.Printf("Bot @%s ishga tushdi!", h.bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			log.Println("Bot to'xtatilmoqda...")
			return ctx.Err()
		case update := <-updates:
			if update.CallbackQuery != nil {
				go h.handleCallback(ctx, update.CallbackQuery)
				continue
			}

			if update.Message == nil {
				continue
			}

			go h.handleMessage(ctx, update.Message)
		}
	}
}

// handleMessage xabarni qayta ishlash
func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.Chat == nil || !message.Chat.IsPrivate() {
		return
	}

	userID := message.From.ID
	username := message.From.UserName
	if username == "" {
		username = message.From.FirstName
	}

	// Fayl yuborilgan bo'lsa (admin narx jadvali)
	if message.Document != nil {
		h.handleDocumentMessage(ctx, message)
		return
	}

	// Parol kutilayotgan bo'lsa
	if h.isAwaitingPassword(userID) {
		h.handlePasswordInput(ctx, message)
		return
	}

	if message.IsCommand() {
		h.handleCommand(ctx, message)
		return
	}

	// Rasm yuborilgan bo'lsa (wizard photos qadami)
	if len(message.Photo) > 0 {
		h.handlePhotoMessage(ctx, message)
		return
	}

	// Support matni kutilayotgan bo'lsa
	if h.isAwaitingSupport(userID) {
		h.handleSupportText(ctx, message, username)
		return
	}

	if message.Text != "" {
		h.handleWizardText(ctx, userID, message.Chat.ID, message.Text)
	}
}

// handleCommand komandalarni qayta ishlash
func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		h.handleStartCommand(ctx, message)
	case "help":
		h.sendMessage(message.Chat.ID, h.helpMessage())
	case "sell":
		h.handleSellCommand(ctx, message)
	case "cancel":
		h.handleCancelCommand(ctx, message)
	case "support":
		h.handleSupportCommand(ctx, message)
	case "my":
		h.handleMyCommand(ctx, message)
	case "premium":
		h.handlePremiumCommand(ctx, message)
	case "admin":
		h.handleAdminCommand(ctx, message)
	case "logout":
		h.handleLogoutCommand(ctx, message)
	case "stats":
		h.handleStatsCommand(ctx, message)
	case "catalog":
		h.handleCatalogCommand(ctx, message)
	case "audit":
		h.handleAuditCommand(ctx, message)
	case "log":
		h.handleLogCommand(ctx, message)
	default:
		h.sendMessage(message.Chat.ID, "Неизвестная команда. /help — список команд.")
	}
}

// handleCallback inline tugma bosilganini qayta ishlash
func (h *BotHandler) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	// Tugma "aylanayotgani"ni to'xtatish
	callback := tgbotapi.NewCallback(query.ID, "")
	if _, err := h.bot.Request(callback); err != nil {
		log.Printf("Callback javobida xatolik: %v", err)
	}

	if query.Message == nil {
		return
	}

	data := query.Data
	userID := query.From.ID
	chatID := query.Message.Chat.ID

	switch {
	case strings.HasPrefix(data, "wiz:"):
		h.handleWizardChoice(ctx, userID, chatID, query.Message.MessageID, strings.TrimPrefix(data, "wiz:"))
	case data == "wiz_back":
		h.handleWizardBack(ctx, userID, chatID, query.Message.MessageID)
	case data == "wiz_cancel":
		h.handleWizardCancel(ctx, userID, chatID)
	case data == "wiz_done":
		h.handleWizardDone(ctx, userID, chatID)
	case data == "wiz_publish":
		h.handleWizardPublish(ctx, userID, chatID)
	case data == "censor_yes":
		h.handleCensorAccept(ctx, userID, chatID)
	case data == "censor_no":
		h.handleCensorReject(userID, chatID)
	case strings.HasPrefix(data, "pay_check:"):
		h.handlePaymentCheck(ctx, userID, chatID, strings.TrimPrefix(data, "pay_check:"))
	case data == "noop":
		// Kanal ostidagi telefon-raqam tugmasi, hech narsa qilinmaydi
	default:
		log.Printf("Noma'lum callback: %q", data)
	}
}

// sendMessage oddiy matnli xabar yuborish
func (h *BotHandler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Xabar yuborishda xatolik: %v", err)
	}
}

// sendWithMarkup tugmalar bilan xabar yuborish
func (h *BotHandler) sendWithMarkup(chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("Xabar yuborishda xatolik: %v", err)
	}
}

// editOrSend eski xabarni tahrirlash; iloji bo'lmasa yangisini yuborish
func (h *BotHandler) editOrSend(chatID int64, messageID int, text string, markup *tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ReplyMarkup = markup
	if _, err := h.bot.Send(edit); err != nil {
		msg := tgbotapi.NewMessage(chatID, text)
		if markup != nil {
			msg.ReplyMarkup = *markup
		}
		if _, err := h.bot.Send(msg); err != nil {
			log.Printf("Xabar yuborishda xatolik: %v", err)
		}
	}
}

// replyError xatoni foydalanuvchiga tushunarli ko'rinishda yetkazish
func (h *BotHandler) replyError(chatID int64, err error) {
	var validation *usecase.ValidationError
	if errors.As(err, &validation) {
		h.sendMessage(chatID, validation.Reason)
		return
	}
	if errors.Is(err, repository.ErrNotFound) {
		h.sendMessage(chatID, "Активного объявления нет. Начните с /sell.")
		return
	}

	log.Printf("Ichki xatolik: %v", err)
	h.sendMessage(chatID, "❌ Произошла ошибка. Попробуйте ещё раз.")
}

func (h *BotHandler) isAwaitingPassword(userID int64) bool {
	h.passwordMu.RLock()
	defer h.passwordMu.RUnlock()
	return h.awaitingPassword[userID]
}

func (h *BotHandler) setAwaitingPassword(userID int64, waiting bool) {
	h.passwordMu.Lock()
	defer h.passwordMu.Unlock()
	if waiting {
		h.awaitingPassword[userID] = true
	} else {
		delete(h.awaitingPassword, userID)
	}
}

func (h *BotHandler) isAwaitingSupport(userID int64) bool {
	h.supportMu.RLock()
	defer h.supportMu.RUnlock()
	return h.awaitingSupport[userID]
}

func (h *BotHandler) setAwaitingSupport(userID int64, waiting bool) {
	h.supportMu.Lock()
	defer h.supportMu.Unlock()
	if waiting {
		h.awaitingSupport[userID] = true
	} else {
		delete(h.awaitingSupport, userID)
	}
}

func (h *BotHandler) setPendingCensor(userID int64, censored string) {
	h.censorMu.Lock()
	defer h.censorMu.Unlock()
	h.pendingCensor[userID] = censored
}

func (h *BotHandler) takePendingCensor(userID int64) (string, bool) {
	h.censorMu.Lock()
	defer h.censorMu.Unlock()
	censored, ok := h.pendingCensor[userID]
	delete(h.pendingCensor, userID)
	return censored, ok
}

func (h *BotHandler) welcomeMessage() string {
	return `👋 Добро пожаловать на маркетплейс подержанных телефонов!

📱 /sell — подать объявление о продаже
📋 /my — мои объявления и обращения
💬 /support — написать в поддержку
⭐ /premium — премиум-доступ
❓ /help — справка`
}

func (h *BotHandler) helpMessage() string {
	return `❓ Справка

/sell — пошаговое создание объявления. Бот спросит бренд, модель, характеристики, цену, контакт и фото (от 2 до 4), затем покажет предпросмотр.
/cancel — отменить текущее объявление.
/my — ваши объявления и обращения в поддержку.
/support — задать вопрос или сообщить о проблеме.
/premium — оформить премиум-доступ (оплата через CryptoBot).

Объявления публикуются в канале после вашего подтверждения.`
}

func (h *BotHandler) handleCancelCommand(ctx context.Context, message *tgbotapi.Message) {
	if err := h.wizardUseCase.Cancel(ctx, message.From.ID); err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}
	h.sendMessage(message.Chat.ID, "Объявление отменено. Начать заново: /sell")
}

func fmtTicketLine(id string, status, text string) string {
	if len([]rune(text)) > 40 {
		text = string([]rune(text)[:40]) + "…"
	}
	return fmt.Sprintf("• %s [%s] %s", id, status, text)
}
