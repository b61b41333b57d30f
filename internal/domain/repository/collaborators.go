package repository

import (
	"context"
	"errors"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
)

// ErrNotFound yozuv topilmaganda qaytariladigan sentinel xato
var ErrNotFound = errors.New("not found")

// PaymentProvider tashqi to'lov provayderi (CryptoBot API)
type PaymentProvider interface {
	// CreateInvoice yangi hisob yaratish
	CreateInvoice(ctx context.Context, amount float64, currency, description, payload string) (*entity.Invoice, error)

	// GetInvoiceStatus hisob holatini so'rash
	GetInvoiceStatus(ctx context.Context, invoiceID int64) (entity.InvoiceStatus, error)
}

// ChannelSender tayyor e'lonni kanalga chiqarish uchun interface
type ChannelSender interface {
	// SendListing matn + rasmlar + aloqa tugmasini kanalga yuborish
	SendListing(ctx context.Context, text string, photos []string, contact string) error
}

// UserNotifier foydalanuvchiga xabar yetkazish (admin javobi, premium aktivatsiya)
type UserNotifier interface {
	Notify(ctx context.Context, userID int64, text string) error
}

// RecentTextCache duplicate tekshirish uchun oxirgi e'lon matnlari keshi
type RecentTextCache interface {
	// Add foydalanuvchi matnini qo'shish
	Add(userID int64, text string) error

	// Get foydalanuvchining oxirgi matnlari (yangidan eskiga)
	Get(userID int64) []string
}
