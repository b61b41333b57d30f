package repository

import (
	"context"
	"time"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
)

// InvoiceRepository to'lov hisoblari bilan ishlash uchun interface
type InvoiceRepository interface {
	// Put hisobni saqlash
	Put(ctx context.Context, invoice *entity.Invoice) error

	// Get ID bo'yicha hisobni olish (topilmasa ErrNotFound)
	Get(ctx context.Context, id int64) (*entity.Invoice, error)

	// Active hali to'lanmagan hisoblar ro'yxati (polling uchun)
	Active(ctx context.Context) ([]entity.Invoice, error)

	// SweepExpired eskirgan hisoblarni tozalash
	SweepExpired(ctx context.Context, olderThan time.Duration) (int, error)
}

// UserRepository foydalanuvchi yozuvlari bilan ishlash uchun interface
type UserRepository interface {
	// Get foydalanuvchini olish (topilmasa ErrNotFound)
	Get(ctx context.Context, userID int64) (*entity.UserProfile, error)

	// Put foydalanuvchini saqlash
	Put(ctx context.Context, user *entity.UserProfile) error

	// SetPremium premium bayrog'ini o'rnatish; allaqachon premium bo'lsa
	// false qaytaradi (idempotent aktivatsiya)
	SetPremium(ctx context.Context, userID int64) (bool, error)

	// CountPremium premium foydalanuvchilar soni
	CountPremium(ctx context.Context) (int, error)
}

// ListingRepository chiqarilgan e'lonlar bilan ishlash uchun interface
type ListingRepository interface {
	// Save e'lonni saqlash (chiqarilgandan keyin o'zgarmaydi)
	Save(ctx context.Context, listing *entity.Listing) error

	// ByUser foydalanuvchining oxirgi e'lonlari (yangidan eskiga, limit ta)
	ByUser(ctx context.Context, userID int64, limit int) ([]entity.Listing, error)

	// Count jami e'lonlar soni
	Count(ctx context.Context) (int, error)
}
