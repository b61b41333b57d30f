package repository

import (
	"context"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
)

// PriceRepository bozor narxlari jadvali bilan ishlash uchun interface
type PriceRepository interface {
	// UpdateCatalog butun jadvalni almashtirish
	UpdateCatalog(ctx context.Context, catalog entity.PriceCatalog) error

	// Lookup model bo'yicha narx oralig'ini olish (topilmasa false)
	Lookup(ctx context.Context, model string) (*entity.PriceReference, bool)

	// GetCatalog jadval haqida ma'lumot (topilmasa ErrNotFound)
	GetCatalog(ctx context.Context) (*entity.PriceCatalog, error)
}

// PriceParser Excel narx jadvalini parse qilish uchun interface
type PriceParser interface {
	// ParsePricesFromBytes byte array dan parse qilish
	ParsePricesFromBytes(ctx context.Context, data []byte, filename string) ([]entity.PriceReference, error)
}
