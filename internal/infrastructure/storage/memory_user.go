package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yourusername/telegram-market-bot/internal/domain/entity"
	"github.com/yourusername/telegram-market-bot/internal/domain/repository"
)

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[int64]*entity.UserProfile
}

// NewMemoryUserRepository in-memory user repository yaratish
func NewMemoryUserRepository() repository.UserRepository {
	return &memoryUserRepository{
		users: make(map[int64]*entity.UserProfile),
	}
}

// Get foydalanuvchini olish
func (m *memoryUserRepository) Get(ctx context.Context, userID int64) (*entity.UserProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, exists := m.users[userID]
	if !exists {
		return nil, fmt.Errorf("user %d: %w", userID, repository.ErrNotFound)
	}

	copied := *user
	return &copied, nil
}

// Put foydalanuvchini saqlash
func (m *memoryUserRepository) Put(ctx context.Context, user *entity.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *user
	m.users[user.UserID] = &copied
	return nil
}

// SetPremium premium bayrog'ini o'rnatish (idempotent)
func (m *memoryUserRepository) SetPremium(ctx context.Context, userID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, exists := m.users[userID]
	if !exists {
		user = &entity.UserProfile{UserID: userID, CreatedAt: time.Now()}
		m.users[userID] = user
	}

	if user.Premium {
		return false, nil
	}

	user.Premium = true
	user.PremiumSince = time.Now()
	return true, nil
}

// CountPremium premium foydalanuvchilar soni
func (m *memoryUserRepository) CountPremium(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, user := range m.users {
		if user.Premium {
			count++
		}
	}

	return count, nil
}
