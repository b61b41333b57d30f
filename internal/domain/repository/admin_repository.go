package repository

import (
	"context"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
)

// AdminRepository admin bilan ishlash uchun interface
type AdminRepository interface {
	// CreateSession admin sessiyasini yaratish
	CreateSession(ctx context.Context, session entity.AdminSession) error

	// DeleteSession sessiyani o'chirish (logout)
	DeleteSession(ctx context.Context, userID int64) error

	// IsAdmin foydalanuvchi admin ekanligini tekshirish
	IsAdmin(ctx context.Context, userID int64) (bool, error)

	// LogAction admin harakatini loglash
	LogAction(ctx context.Context, action entity.AdminAction) error

	// Actions oxirgi limit ta admin harakati (yangidan eskiga)
	Actions(ctx context.Context, limit int) ([]entity.AdminAction, error)
}

// SupportLogRepository oxirgi xabarlarning chegaralangan keshi
type SupportLogRepository interface {
	// Append yozuvni qo'shish
	Append(ctx context.Context, entry entity.SupportLogEntry) error

	// Recent oxirgi limit ta yozuv (yangidan eskiga)
	Recent(ctx context.Context, limit int) ([]entity.SupportLogEntry, error)

	// Trim hajm capdan oshgan bo'lsa eng eskilarini o'chirish
	Trim(ctx context.Context) (int, error)
}
