package storage

import (
	"context"
	"sync"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
	"github.com/yourusername/telegram-market-bot/internal/domain/repository"
)

const (
	// supportLogCap shu hajmdan oshganda trim ishlaydi
	supportLogCap = 1000
	// supportLogKeep trimdan keyin qoladigan yozuvlar soni
	supportLogKeep = 800
)

type memorySupportLogRepository struct {
	mu      sync.RWMutex
	entries []entity.SupportLogEntry // eskidan yangiga
}

// NewMemorySupportLogRepository chegaralangan xabarlar keshini yaratish
func NewMemorySupportLogRepository() repository.SupportLogRepository {
	return &memorySupportLogRepository{}
}

// Append yozuvni qo'shish
func (m *memorySupportLogRepository) Append(ctx context.Context, entry entity.SupportLogEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, entry)
	return nil
}

// Recent oxirgi limit ta yozuv (yangidan eskiga)
func (m *memorySupportLogRepository) Recent(ctx context.Context, limit int) ([]entity.SupportLogEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.entries)
	if limit <= 0 || limit > n {
		limit = n
	}

	result := make([]entity.SupportLogEntry, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		result = append(result, m.entries[i])
	}

	return result, nil
}

// Trim cap dan oshgan bo'lsa eng eski yozuvlarni o'chirish
func (m *memorySupportLogRepository) Trim(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.entries) <= supportLogCap {
		return 0, nil
	}

	removed := len(m.entries) - supportLogKeep
	m.entries = append([]entity.SupportLogEntry(nil), m.entries[removed:]...)
	return removed, nil
}
