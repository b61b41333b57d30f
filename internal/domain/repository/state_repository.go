package repository

import (
	"context"
	"time"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
)

// StateRepository e'lon yaratish holatlari bilan ishlash uchun interface
type StateRepository interface {
	// Get foydalanuvchi holatini olish (topilmasa ErrNotFound)
	Get(ctx context.Context, userID int64) (*entity.DraftState, error)

	// Put holatni saqlash (mavjud bo'lsa almashtiriladi)
	Put(ctx context.Context, state *entity.DraftState) error

	// Delete holatni o'chirish (bekor qilishda)
	Delete(ctx context.Context, userID int64) error

	// SweepIdle uzoq vaqt faol bo'lmagan holatlarni tozalash
	SweepIdle(ctx context.Context, olderThan time.Duration) (int, error)
}
