package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
	"github.com/yourusername/telegram-market-bot/internal/domain/repository"
	"github.com/yourusername/telegram-market-bot/internal/usecase"
)

// handleStartCommand salomlashish; tugallanmagan e'lon bo'lsa uni davom ettirish
func (h *BotHandler) handleStartCommand(ctx context.Context, message *tgbotapi.Message) {
	h.sendMessage(message.Chat.ID, h.welcomeMessage())

	view, err := h.wizardUseCase.Resume(ctx, message.From.ID)
	if err != nil {
		// Draft yo'q — oddiy salomlashish yetarli
		return
	}

	if view.Done {
		h.sendPreview(ctx, message.From.ID, message.Chat.ID)
		return
	}
	h.sendMessage(message.Chat.ID, "У вас есть незавершённое объявление, продолжим:")
	h.sendStepView(message.Chat.ID, view)
}

// handleSellCommand yangi e'lon yaratishni boshlash
func (h *BotHandler) handleSellCommand(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID
	username := message.From.UserName
	if username == "" {
		username = message.From.FirstName
	}

	view, err := h.wizardUseCase.Start(ctx, userID, username)
	if err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}

	h.sendStepView(message.Chat.ID, view)
}

// handleWizardText wizard qadamiga matnli javob
func (h *BotHandler) handleWizardText(ctx context.Context, userID, chatID int64, text string) {
	view, err := h.wizardUseCase.Answer(ctx, userID, text)
	if err != nil {
		var profanity *usecase.ProfanityError
		if errors.As(err, &profanity) {
			h.offerCensored(userID, chatID, profanity.Censored)
			return
		}
		if errors.Is(err, repository.ErrNotFound) {
			h.sendMessage(chatID, "Сейчас нет активного объявления. /sell — подать объявление, /support — написать в поддержку.")
			return
		}
		h.replyError(chatID, err)
		return
	}

	// Hamma maydon to'lgan bo'lsa (masalan preview dan qaytib tuzatilganda)
	if view.Done {
		h.sendPreview(ctx, userID, chatID)
		return
	}

	h.sendStepView(chatID, view)
}

// handleWizardChoice wizard qadamiga tugma orqali javob. Payload
// "<step>:<indeks>" ko'rinishida: eski xabardagi tugma joriy qadamga
// mos kelmasa klaviatura joriy qadam bilan yangilanadi.
func (h *BotHandler) handleWizardChoice(ctx context.Context, userID, chatID int64, messageID int, payload string) {
	stepRaw, idxRaw, ok := strings.Cut(payload, ":")
	if !ok {
		return
	}
	index, err := strconv.Atoi(idxRaw)
	if err != nil {
		return
	}

	view, err := h.wizardUseCase.AnswerChoice(ctx, userID, entity.Step(stepRaw), index)
	if err != nil {
		if errors.Is(err, usecase.ErrStaleStep) {
			current, rerr := h.wizardUseCase.Resume(ctx, userID)
			if rerr != nil {
				h.replyError(chatID, rerr)
				return
			}
			h.editStepView(ctx, userID, chatID, messageID, current)
			return
		}
		h.replyError(chatID, err)
		return
	}

	h.editStepView(ctx, userID, chatID, messageID, view)
}

// handleWizardBack bitta qadam ortga
func (h *BotHandler) handleWizardBack(ctx context.Context, userID, chatID int64, messageID int) {
	view, err := h.wizardUseCase.Back(ctx, userID)
	if err != nil {
		h.replyError(chatID, err)
		return
	}

	h.editStepView(ctx, userID, chatID, messageID, view)
}

// handleWizardCancel e'lonni bekor qilish
func (h *BotHandler) handleWizardCancel(ctx context.Context, userID, chatID int64) {
	if err := h.wizardUseCase.Cancel(ctx, userID); err != nil {
		h.replyError(chatID, err)
		return
	}
	h.sendMessage(chatID, "Объявление отменено. Начать заново: /sell")
}

// handlePhotoMessage wizard photos qadamiga rasm
func (h *BotHandler) handlePhotoMessage(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID
	chatID := message.Chat.ID

	// Eng katta o'lchamdagi variantni olamiz
	photo := message.Photo[len(message.Photo)-1]

	view, err := h.wizardUseCase.AddPhoto(ctx, userID, photo.FileID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			h.sendMessage(chatID, "Сейчас нет активного объявления. /sell — подать объявление.")
			return
		}
		h.replyError(chatID, err)
		return
	}

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Готово ✅", "wiz_done"),
		),
	)
	h.sendWithMarkup(chatID, view.Text, markup)
}

// handleWizardDone rasm yuklashni yakunlash
func (h *BotHandler) handleWizardDone(ctx context.Context, userID, chatID int64) {
	view, err := h.wizardUseCase.FinishPhotos(ctx, userID)
	if err != nil {
		h.replyError(chatID, err)
		return
	}

	if view.Done {
		h.sendPreview(ctx, userID, chatID)
		return
	}

	h.sendStepView(chatID, view)
}

// handleWizardPublish e'lonni kanalga chiqarish
func (h *BotHandler) handleWizardPublish(ctx context.Context, userID, chatID int64) {
	listing, err := h.publishUseCase.Publish(ctx, userID)
	if err != nil {
		h.replyError(chatID, err)
		return
	}

	h.sendMessage(chatID, fmt.Sprintf("✅ Объявление опубликовано в канале!\n\n%s %s", listing.Brand, listing.Model))
}

// sendPreview tayyor e'lonni ko'rsatish
func (h *BotHandler) sendPreview(ctx context.Context, userID, chatID int64) {
	preview, err := h.publishUseCase.Preview(ctx, userID)
	if err != nil {
		h.replyError(chatID, err)
		return
	}

	text := "📋 Предпросмотр объявления:\n\n" + preview.Text
	if preview.DupWarning != "" {
		text += "\n\n" + preview.DupWarning
	}
	text += fmt.Sprintf("\n\n📷 Фото: %d шт.", len(preview.Photos))

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Опубликовать ✅", "wiz_publish"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", "wiz_back"),
			tgbotapi.NewInlineKeyboardButtonData("❌ Отменить", "wiz_cancel"),
		),
	)
	h.sendWithMarkup(chatID, text, markup)
}

// offerCensored senzuralangan variantni taklif qilish
func (h *BotHandler) offerCensored(userID, chatID int64, censored string) {
	h.setPendingCensor(userID, censored)

	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Принять ✅", "censor_yes"),
			tgbotapi.NewInlineKeyboardButtonData("Изменить ✏️", "censor_no"),
		),
	)
	text := fmt.Sprintf("В тексте найдены нежелательные слова. Предлагаем вариант:\n\n%s", censored)
	h.sendWithMarkup(chatID, text, markup)
}

// handleCensorAccept senzuralangan variantni qabul qilish
func (h *BotHandler) handleCensorAccept(ctx context.Context, userID, chatID int64) {
	censored, ok := h.takePendingCensor(userID)
	if !ok {
		h.sendMessage(chatID, "Предложение устарело. Введите текст заново.")
		return
	}

	view, err := h.wizardUseCase.Answer(ctx, userID, censored)
	if err != nil {
		h.replyError(chatID, err)
		return
	}

	if view.Done {
		h.sendPreview(ctx, userID, chatID)
		return
	}

	h.sendStepView(chatID, view)
}

// handleCensorReject taklifni rad etish, yangi matn kutiladi
func (h *BotHandler) handleCensorReject(userID, chatID int64) {
	h.takePendingCensor(userID)
	h.sendMessage(chatID, "Хорошо, введите другой текст.")
}

// sendStepView qadam ko'rinishini yangi xabar sifatida yuborish
func (h *BotHandler) sendStepView(chatID int64, view *usecase.StepView) {
	text, markup := h.renderStep(view)
	if markup == nil {
		h.sendMessage(chatID, text)
		return
	}
	h.sendWithMarkup(chatID, text, *markup)
}

// editStepView qadam ko'rinishi bilan eski xabarni yangilash
func (h *BotHandler) editStepView(ctx context.Context, userID, chatID int64, messageID int, view *usecase.StepView) {
	if view.Done {
		h.editOrSend(chatID, messageID, view.Text, nil)
		h.sendPreview(ctx, userID, chatID)
		return
	}
	text, markup := h.renderStep(view)
	h.editOrSend(chatID, messageID, text, markup)
}

// renderStep qadam matni va tugmalarini yig'ish
func (h *BotHandler) renderStep(view *usecase.StepView) (string, *tgbotapi.InlineKeyboardMarkup) {
	text := view.Text
	if view.Warn != "" {
		text = view.Warn + "\n\n" + text
	}

	var rows [][]tgbotapi.InlineKeyboardButton

	// Variantlar ikki ustunlik qilib teriladi; callback data da qadam
	// nomi va variant indeksi ketadi
	choiceData := func(i int) string {
		return fmt.Sprintf("wiz:%s:%d", view.Step, i)
	}
	for i := 0; i < len(view.Choices); i += 2 {
		row := []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(view.Choices[i], choiceData(i)),
		}
		if i+1 < len(view.Choices) {
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(view.Choices[i+1], choiceData(i+1)))
		}
		rows = append(rows, row)
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", "wiz_back"),
		tgbotapi.NewInlineKeyboardButtonData("❌ Отменить", "wiz_cancel"),
	))

	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return text, &markup
}
