package repository

import (
	"context"
	"time"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
)

// TicketRepository murojaatlar bilan ishlash uchun interface
type TicketRepository interface {
	// Create yangi murojaat yaratish (ID TKT%06d formatda beriladi)
	Create(ctx context.Context, ticket *entity.Ticket) (*entity.Ticket, error)

	// Get ID bo'yicha murojaatni olish (topilmasa ErrNotFound)
	Get(ctx context.Context, id string) (*entity.Ticket, error)

	// Update murojaatni to'liq almashtirish
	Update(ctx context.Context, ticket *entity.Ticket) error

	// OpenByUser foydalanuvchining ochiq murojaatlari (yangidan eskiga, limit ta)
	OpenByUser(ctx context.Context, userID int64, limit int) ([]entity.Ticket, error)

	// ByUser foydalanuvchining barcha murojaatlari (yangidan eskiga)
	ByUser(ctx context.Context, userID int64) ([]entity.Ticket, error)

	// List holat bo'yicha murojaatlar ro'yxati (status bo'sh bo'lsa hammasi)
	List(ctx context.Context, status entity.TicketStatus) ([]entity.Ticket, error)

	// LogStatusChange holat o'zgarishini audit logga yozish
	LogStatusChange(ctx context.Context, change entity.StatusChange) error

	// SweepFinished yopilgan/hal qilingan eski murojaatlarni tozalash
	SweepFinished(ctx context.Context, olderThan time.Duration) (int, error)
}
