package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/yourusername/telegram-market-bot/internal/content"
	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
	"github.com/yourusername/telegram-market-bot/internal/domain/repository"
)

// Duplicate deb hisoblash uchun kamida shuncha umumiy muhim so'z kerak
const duplicateSharedWords = 3

// Duplicate qidirishda foydalanuvchining oxirgi nechta ochiq murojaati ko'riladi
const duplicateLookback = 5

// SupportUseCase qo'llab-quvvatlash murojaatlari bilan bog'liq business logic
type SupportUseCase interface {
	// CreateTicket yangi murojaat yaratish. Duplicate topilsa ham yangi
	// murojaat ochiladi, topilganlari alohida qaytariladi.
	CreateTicket(ctx context.Context, userID int64, username, text string) (*entity.Ticket, []entity.Ticket, error)

	// UserTickets foydalanuvchining barcha murojaatlari
	UserTickets(ctx context.Context, userID int64) ([]entity.Ticket, error)

	// Get ID bo'yicha murojaat
	Get(ctx context.Context, id string) (*entity.Ticket, error)

	// List holat bo'yicha murojaatlar (status bo'sh bo'lsa hammasi)
	List(ctx context.Context, status entity.TicketStatus) ([]entity.Ticket, error)

	// UpdateStatus murojaat holatini o'zgartirish (audit log bilan)
	UpdateStatus(ctx context.Context, id string, status entity.TicketStatus, actorID int64) (*entity.Ticket, error)

	// Reply murojaatga admin javobini qo'shish va foydalanuvchiga yetkazish
	Reply(ctx context.Context, id string, text string, actorID int64) (*entity.Ticket, error)
}

type supportUseCase struct {
	ticketRepo repository.TicketRepository
	logRepo    repository.SupportLogRepository
	notifier   repository.UserNotifier
	content    *content.Content
}

// NewSupportUseCase yangi SupportUseCase yaratish
func NewSupportUseCase(
	ticketRepo repository.TicketRepository,
	logRepo repository.SupportLogRepository,
	notifier repository.UserNotifier,
	c *content.Content,
) SupportUseCase {
	return &supportUseCase{
		ticketRepo: ticketRepo,
		logRepo:    logRepo,
		notifier:   notifier,
		content:    c,
	}
}

// CreateTicket yangi murojaat yaratish
func (u *supportUseCase) CreateTicket(ctx context.Context, userID int64, username, text string) (*entity.Ticket, []entity.Ticket, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil, &ValidationError{Reason: "Опишите проблему текстом."}
	}

	category := u.Categorize(text)

	recent, err := u.ticketRepo.OpenByUser(ctx, userID, duplicateLookback)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load open tickets: %w", err)
	}

	var duplicates []entity.Ticket
	for _, t := range recent {
		if SharedWordCount(text, t.FirstMessage()) >= duplicateSharedWords {
			duplicates = append(duplicates, t)
		}
	}

	now := time.Now()
	ticket := &entity.Ticket{
		UserID:   userID,
		Username: username,
		Category: category,
		Status:   entity.TicketStatusNew,
		Messages: []entity.TicketMessage{
			{Text: text, Sender: entity.SenderUser, Timestamp: now},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if len(duplicates) > 0 {
		ticket.DuplicateOf = duplicates[0].ID
	}

	created, err := u.ticketRepo.Create(ctx, ticket)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	if err := u.logRepo.Append(ctx, entity.SupportLogEntry{
		UserID:    userID,
		Username:  username,
		Text:      text,
		Kind:      "ticket",
		Timestamp: now,
	}); err != nil {
		// Log yozilmagani murojaat yaratilishiga to'sqinlik qilmaydi
		log.Printf("Support logga yozishda xatolik: %v", err)
	}

	return created, duplicates, nil
}

// Categorize matnni kalit so'zlar bo'yicha kategoriyalash. Kategoriyalar
// tartibi Content da belgilangan: birinchi mos kelgani g'olib.
func (u *supportUseCase) Categorize(text string) entity.TicketCategory {
	lower := strings.ToLower(text)

	for _, cat := range u.content.Categories {
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				return entity.TicketCategory(cat.Category)
			}
		}
	}

	return entity.CategoryOther
}

// UserTickets foydalanuvchining barcha murojaatlari
func (u *supportUseCase) UserTickets(ctx context.Context, userID int64) ([]entity.Ticket, error) {
	return u.ticketRepo.ByUser(ctx, userID)
}

// Get ID bo'yicha murojaat
func (u *supportUseCase) Get(ctx context.Context, id string) (*entity.Ticket, error) {
	return u.ticketRepo.Get(ctx, id)
}

// List holat bo'yicha murojaatlar
func (u *supportUseCase) List(ctx context.Context, status entity.TicketStatus) ([]entity.Ticket, error) {
	return u.ticketRepo.List(ctx, status)
}

// UpdateStatus murojaat holatini o'zgartirish. Har qanday o'tishga ruxsat
// beriladi, lekin hammasi audit logga tushadi.
func (u *supportUseCase) UpdateStatus(ctx context.Context, id string, status entity.TicketStatus, actorID int64) (*entity.Ticket, error) {
	ticket, err := u.ticketRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	from := ticket.Status
	ticket.Status = status
	ticket.UpdatedAt = time.Now()

	if err := u.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	if err := u.ticketRepo.LogStatusChange(ctx, entity.StatusChange{
		TicketID:  id,
		From:      from,
		To:        status,
		ActorID:   actorID,
		Timestamp: ticket.UpdatedAt,
	}); err != nil {
		return nil, fmt.Errorf("failed to log status change: %w", err)
	}

	return ticket, nil
}

// Reply murojaatga admin javobini qo'shish
func (u *supportUseCase) Reply(ctx context.Context, id string, text string, actorID int64) (*entity.Ticket, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, &ValidationError{Reason: "Текст ответа пустой."}
	}

	ticket, err := u.ticketRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	from := ticket.Status
	ticket.Messages = append(ticket.Messages, entity.TicketMessage{
		Text:      text,
		Sender:    entity.SenderAdmin,
		Timestamp: now,
	})
	ticket.Status = entity.TicketStatusAnswered
	ticket.UpdatedAt = now

	if err := u.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	if from != ticket.Status {
		if err := u.ticketRepo.LogStatusChange(ctx, entity.StatusChange{
			TicketID:  id,
			From:      from,
			To:        ticket.Status,
			ActorID:   actorID,
			Timestamp: now,
		}); err != nil {
			return nil, fmt.Errorf("failed to log status change: %w", err)
		}
	}

	if u.notifier != nil {
		msg := fmt.Sprintf("💬 Ответ поддержки по обращению %s:\n\n%s", ticket.ID, text)
		if err := u.notifier.Notify(ctx, ticket.UserID, msg); err != nil {
			return nil, fmt.Errorf("failed to notify user: %w", err)
		}
	}

	return ticket, nil
}
