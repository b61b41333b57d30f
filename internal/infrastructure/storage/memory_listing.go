package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
	"github.com/yourusername/telegram-market-bot/internal/domain/repository"
)

type memoryListingRepository struct {
	mu       sync.RWMutex
	listings []entity.Listing
}

// NewMemoryListingRepository in-memory listing repository yaratish
func NewMemoryListingRepository() repository.ListingRepository {
	return &memoryListingRepository{}
}

// Save e'lonni saqlash
func (m *memoryListingRepository) Save(ctx context.Context, listing *entity.Listing) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listings = append(m.listings, *listing)
	return nil
}

// ByUser foydalanuvchining oxirgi e'lonlari (yangidan eskiga)
func (m *memoryListingRepository) ByUser(ctx context.Context, userID int64, limit int) ([]entity.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []entity.Listing
	for _, l := range m.listings {
		if l.UserID == userID {
			result = append(result, l)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].PublishedAt.After(result[j].PublishedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	return result, nil
}

// Count jami e'lonlar soni
func (m *memoryListingRepository) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.listings), nil
}
