package telegram

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// handleAdminCommand admin login boshlash
func (h *BotHandler) handleAdminCommand(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID

	// Allaqachon admin bo'lsa
	isAdmin, _ := h.adminUseCase.IsAdmin(ctx, userID)
	if isAdmin {
		h.sendMessage(message.Chat.ID, "Вы уже вошли как администратор.")
		return
	}

	// Parol kutish rejimini yoqish
	h.setAwaitingPassword(userID, true)
	h.sendMessage(message.Chat.ID, "🔐 Введите пароль администратора:")
}

// handlePasswordInput parol kiritilganini qayta ishlash
func (h *BotHandler) handlePasswordInput(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID
	password := message.Text

	h.setAwaitingPassword(userID, false)

	// Xabarni o'chirish (xavfsizlik uchun)
	deleteMsg := tgbotapi.NewDeleteMessage(message.Chat.ID, message.MessageID)
	if _, err := h.bot.Request(deleteMsg); err != nil {
		log.Printf("Parol xabarini o'chirishda xatolik: %v", err)
	}

	success, err := h.adminUseCase.Login(ctx, userID, password)
	if err != nil {
		log.Printf("Login error: %v", err)
		h.sendMessage(message.Chat.ID, "❌ Ошибка входа. Попробуйте позже.")
		return
	}

	if !success {
		h.sendMessage(message.Chat.ID, "❌ Неверный пароль.")
		return
	}

	welcomeMsg := `✅ Добро пожаловать в админ-панель!

🔧 Возможности:
• Загрузка таблицы рыночных цен (.xlsx)
• /stats — статистика бота
• /catalog — информация о таблице цен
• /audit — журнал действий администраторов
• /log — последние сообщения пользователей
• /logout — выход

📤 Чтобы обновить цены, отправьте Excel-файл (до 5MB) со столбцами:
- Модель / Model
- Мин. цена / Min
- Макс. цена / Max`

	h.sendMessage(message.Chat.ID, welcomeMsg)
}

// handleLogoutCommand admin logout
func (h *BotHandler) handleLogoutCommand(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID

	isAdmin, _ := h.adminUseCase.IsAdmin(ctx, userID)
	if !isAdmin {
		h.sendMessage(message.Chat.ID, "Вы не администратор.")
		return
	}

	if err := h.adminUseCase.Logout(ctx, userID); err != nil {
		h.sendMessage(message.Chat.ID, "Ошибка выхода.")
		return
	}

	h.sendMessage(message.Chat.ID, "✅ Вы вышли из админ-панели.")
}

// handleStatsCommand bot statistikasi (admin)
func (h *BotHandler) handleStatsCommand(ctx context.Context, message *tgbotapi.Message) {
	isAdmin, _ := h.adminUseCase.IsAdmin(ctx, message.From.ID)
	if !isAdmin {
		h.sendMessage(message.Chat.ID, "❌ Команда доступна только администраторам.")
		return
	}

	stats, err := h.adminUseCase.Stats(ctx)
	if err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}

	h.sendMessage(message.Chat.ID, fmt.Sprintf(`📊 Статистика

📱 Объявлений опубликовано: %d
💬 Открытых обращений: %d
⭐ Премиум-пользователей: %d`, stats.Listings, stats.OpenTickets, stats.Premium))
}

// handleCatalogCommand narx jadvali haqida ma'lumot (admin)
func (h *BotHandler) handleCatalogCommand(ctx context.Context, message *tgbotapi.Message) {
	isAdmin, _ := h.adminUseCase.IsAdmin(ctx, message.From.ID)
	if !isAdmin {
		h.sendMessage(message.Chat.ID, "❌ Команда доступна только администраторам.")
		return
	}

	catalog, err := h.adminUseCase.CatalogInfo(ctx)
	if err != nil {
		h.sendMessage(message.Chat.ID, "❌ Таблица цен ещё не загружена. Отправьте Excel-файл.")
		return
	}

	h.sendMessage(message.Chat.ID, fmt.Sprintf(`📋 Таблица цен

📄 Файл: %s
📦 Моделей: %d
🕒 Обновлено: %s`, catalog.Source, len(catalog.Entries), catalog.UpdatedAt.Format("02.01.2006 15:04")))
}

// handleLogCommand oxirgi foydalanuvchi xabarlari (admin)
func (h *BotHandler) handleLogCommand(ctx context.Context, message *tgbotapi.Message) {
	isAdmin, _ := h.adminUseCase.IsAdmin(ctx, message.From.ID)
	if !isAdmin {
		h.sendMessage(message.Chat.ID, "❌ Команда доступна только администраторам.")
		return
	}

	entries, err := h.adminUseCase.RecentMessages(ctx, 10)
	if err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}

	if len(entries) == 0 {
		h.sendMessage(message.Chat.ID, "Журнал сообщений пуст.")
		return
	}

	var sb strings.Builder
	sb.WriteString("🗒 Последние сообщения пользователей:\n")
	for _, e := range entries {
		text := e.Text
		if runes := []rune(text); len(runes) > 60 {
			text = string(runes[:60]) + "…"
		}
		sb.WriteString(fmt.Sprintf("\n%s @%s [%s]: %s", e.Timestamp.Format("02.01 15:04"), e.Username, e.Kind, text))
	}

	h.sendMessage(message.Chat.ID, sb.String())
}

// handleAuditCommand oxirgi admin harakatlari (admin)
func (h *BotHandler) handleAuditCommand(ctx context.Context, message *tgbotapi.Message) {
	actions, err := h.adminUseCase.AuditLog(ctx, message.From.ID, 10)
	if err != nil {
		h.replyError(message.Chat.ID, err)
		return
	}

	if len(actions) == 0 {
		h.sendMessage(message.Chat.ID, "Журнал действий пуст.")
		return
	}

	var sb strings.Builder
	sb.WriteString("📜 Последние действия администраторов:\n")
	for _, a := range actions {
		sb.WriteString(fmt.Sprintf("\n%s — %s", a.Timestamp.Format("02.01 15:04"), a.Action))
		if a.Details != "" {
			sb.WriteString(" (" + a.Details + ")")
		}
	}

	h.sendMessage(message.Chat.ID, sb.String())
}

// handleDocumentMessage fayl yuborilganda (narx jadvali)
func (h *BotHandler) handleDocumentMessage(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID

	isAdmin, _ := h.adminUseCase.IsAdmin(ctx, userID)
	if !isAdmin {
		h.sendMessage(message.Chat.ID, "❌ Загружать файлы могут только администраторы. /admin — вход.")
		return
	}

	doc := message.Document

	// Fayl hajmini tekshirish (5MB)
	if doc.FileSize > 5*1024*1024 {
		h.sendMessage(message.Chat.ID, "❌ Размер файла не должен превышать 5MB.")
		return
	}

	if !strings.HasSuffix(doc.FileName, ".xlsx") && !strings.HasSuffix(doc.FileName, ".xls") {
		h.sendMessage(message.Chat.ID, "❌ Принимаются только Excel-файлы (.xlsx, .xls).")
		return
	}

	h.sendMessage(message.Chat.ID, "⏳ Файл загружается и обрабатывается...")

	fileBytes, err := h.downloadFile(doc.FileID)
	if err != nil {
		log.Printf("File download error: %v", err)
		h.sendMessage(message.Chat.ID, "❌ Не удалось загрузить файл.")
		return
	}

	count, err := h.adminUseCase.UploadPrices(ctx, userID, fileBytes, doc.FileName)
	if err != nil {
		log.Printf("Upload prices error: %v", err)
		h.sendMessage(message.Chat.ID, fmt.Sprintf("❌ Ошибка обновления цен: %v", err))
		return
	}

	h.sendMessage(message.Chat.ID, fmt.Sprintf(`✅ Таблица цен обновлена!

📦 Загружено моделей: %d
📄 Файл: %s

Теперь при вводе цены бот будет сверять её с рыночной.`, count, doc.FileName))
}

// downloadFile Telegram dan faylni yuklash
func (h *BotHandler) downloadFile(fileID string) ([]byte, error) {
	file, err := h.bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, err
	}

	fileURL := file.Link(h.bot.Token)
	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return io.ReadAll(resp.Body)
}
