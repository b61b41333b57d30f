package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
	"github.com/yourusername/telegram-market-bot/internal/domain/repository"
)

type memoryPriceRepository struct {
	mu      sync.RWMutex
	entries map[string]entity.PriceReference // key: normallashtirilgan model nomi
	catalog *entity.PriceCatalog
}

// NewMemoryPriceRepository in-memory narx jadvali yaratish
func NewMemoryPriceRepository() repository.PriceRepository {
	return &memoryPriceRepository{
		entries: make(map[string]entity.PriceReference),
	}
}

// UpdateCatalog butun jadvalni almashtirish
func (m *memoryPriceRepository) UpdateCatalog(ctx context.Context, catalog entity.PriceCatalog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]entity.PriceReference, len(catalog.Entries))
	for _, e := range catalog.Entries {
		m.entries[normalizeModel(e.Model)] = e
	}

	m.catalog = &catalog
	return nil
}

// Lookup model bo'yicha narx oralig'ini olish
func (m *memoryPriceRepository) Lookup(ctx context.Context, model string) (*entity.PriceReference, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, exists := m.entries[normalizeModel(model)]
	if !exists {
		return nil, false
	}

	return &entry, true
}

// GetCatalog jadval haqida ma'lumot
func (m *memoryPriceRepository) GetCatalog(ctx context.Context) (*entity.PriceCatalog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.catalog == nil {
		return nil, fmt.Errorf("price catalog: %w", repository.ErrNotFound)
	}

	return m.catalog, nil
}

// normalizeModel taqqoslash uchun model nomini soddalashtirish
func normalizeModel(model string) string {
	s := strings.ToLower(strings.TrimSpace(model))
	return strings.Join(strings.Fields(s), " ")
}
